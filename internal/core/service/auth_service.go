package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// AuthService implements signup, login, profile reads, and the OTP-based
// password-reset flow.
type AuthService struct {
	users      ports.UserRepository
	vets       ports.VetRepository
	otp        ports.OTPStore
	dispatcher ports.OTPDispatcher
	jwtSecret  string
	tokenTTL   time.Duration
	otpRand    io.Reader
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	vets ports.VetRepository,
	otp ports.OTPStore,
	dispatcher ports.OTPDispatcher,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		vets:       vets,
		otp:        otp,
		dispatcher: dispatcher,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		otpRand:    rand.Reader,
		logger:     logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Address == "" {
		return nil, fmt.Errorf("%w: name, email, password and address are required", domain.ErrValidation)
	}
	if input.Role != domain.RoleUser && input.Role != domain.RoleVet {
		return nil, fmt.Errorf("%w: type must be user or vet", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address:      input.Address,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("account created")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// A missing account and a wrong password look identical to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	vetID := ""
	if user.Role == domain.RoleVet {
		vet, err := s.vets.FindByUserID(ctx, user.ID)
		if err == nil {
			vetID = vet.ID
		} else if !errors.Is(err, domain.ErrVetNotFound) {
			return nil, err
		}
	}

	token, err := s.generateToken(user, vetID)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: token, User: user, VetID: vetID}, nil
}

func (s *AuthService) Profile(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}

	code, err := generateOTP(s.otpRand)
	if err != nil {
		return err
	}
	if err := s.otp.Save(ctx, email, code); err != nil {
		return err
	}

	s.dispatcher.Enqueue(ports.OTPMessage{Email: email, Code: code})
	s.logger.Info().Str("email", email).Msg("password reset code dispatched")
	return nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return fmt.Errorf("%w: email and otp are required", domain.ErrValidation)
	}

	stored, err := s.otp.Code(ctx, email)
	if err != nil {
		return err
	}
	if stored != code {
		return domain.ErrOTPInvalid
	}

	return s.otp.MarkVerified(ctx, email)
}

func (s *AuthService) SetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return fmt.Errorf("%w: email and new password are required", domain.ErrValidation)
	}

	verified, err := s.otp.Verified(ctx, email)
	if err != nil {
		return err
	}
	if !verified {
		return domain.ErrOTPNotVerified
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, email, string(hash)); err != nil {
		return err
	}

	if err := s.otp.Invalidate(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to invalidate otp after reset")
	}

	s.logger.Info().Str("email", email).Msg("password reset completed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User, vetID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	if vetID != "" {
		claims["vet_id"] = vetID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// generateOTP returns a 6-digit reset code drawn from r. A code that is not
// random is worse than no code, so a read failure aborts the reset.
func generateOTP(r io.Reader) (string, error) {
	n, err := rand.Int(r, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
