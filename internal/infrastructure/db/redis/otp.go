package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

const defaultOTPTTL = 10 * time.Minute

// OTPStore holds password-reset codes in Redis.
// Key format: otp:<email> for the code, otp:<email>:verified for the flag.
// Both keys share the same TTL, so a verified-but-unused reset expires too.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore creates an OTPStore wrapping the given Redis client.
func NewOTPStore(client *redis.Client, ttl time.Duration) *OTPStore {
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	return &OTPStore{client: client, ttl: ttl}
}

// Save stores the code, replacing any previous one and dropping a stale
// verified flag from an earlier reset attempt.
func (s *OTPStore) Save(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, s.codeKey(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("otp save: %w", err)
	}
	return s.client.Del(ctx, s.verifiedKey(email)).Err()
}

// Code returns the stored code, or domain.ErrOTPExpired when none exists.
func (s *OTPStore) Code(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.codeKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrOTPExpired
		}
		return "", fmt.Errorf("otp get: %w", err)
	}
	return code, nil
}

func (s *OTPStore) MarkVerified(ctx context.Context, email string) error {
	return s.client.Set(ctx, s.verifiedKey(email), "1", s.ttl).Err()
}

func (s *OTPStore) Verified(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, s.verifiedKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("otp verified check: %w", err)
	}
	return n > 0, nil
}

// Invalidate removes both keys once a reset completes.
func (s *OTPStore) Invalidate(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.codeKey(email), s.verifiedKey(email)).Err()
}

func (s *OTPStore) codeKey(email string) string {
	return "otp:" + email
}

func (s *OTPStore) verifiedKey(email string) string {
	return "otp:" + email + ":verified"
}
