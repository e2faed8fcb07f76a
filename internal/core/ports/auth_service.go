package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// SignupInput carries everything needed to open an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string // domain.RoleUser or domain.RoleVet
}

// LoginResult is returned on successful authentication. VetID is empty for
// accounts without a vet profile.
type LoginResult struct {
	Token string
	User  *domain.User
	VetID string
}

// AuthService covers account lifecycle: signup, login, profile reads, and the
// OTP-based password-reset flow.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context, id string) (*domain.User, error)

	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	SetPassword(ctx context.Context, email, newPassword string) error
}

// OTPStore holds short-lived password-reset codes keyed by email.
type OTPStore interface {
	// Save stores the code with the configured TTL, replacing any prior code.
	Save(ctx context.Context, email, code string) error
	// Code returns the stored code, or domain.ErrOTPExpired when absent.
	Code(ctx context.Context, email string) (string, error)
	MarkVerified(ctx context.Context, email string) error
	Verified(ctx context.Context, email string) (bool, error)
	// Invalidate removes the code and the verified flag after a reset completes.
	Invalidate(ctx context.Context, email string) error
}

// OTPMessage is the payload handed to the notification dispatcher.
type OTPMessage struct {
	Email string
	Code  string
}

// OTPSender delivers a reset code to the account holder. Delivery transport
// (mail, SMS) is an external collaborator; implementations live in
// infrastructure.
type OTPSender interface {
	Send(ctx context.Context, msg OTPMessage) error
}

// OTPDispatcher hands a reset code off for asynchronous delivery so the HTTP
// request never blocks on the sender.
type OTPDispatcher interface {
	Enqueue(msg OTPMessage)
}
