package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/akarimov/imagefeed/internal/email"
	"github.com/akarimov/imagefeed/internal/password"
	"github.com/akarimov/imagefeed/internal/repository"
	"github.com/akarimov/imagefeed/internal/token"
)

// emailShape is deliberately lenient: one @ with something on both sides and
// a dot in the domain. Stricter RFC parsing rejects addresses real providers
// accept.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthUsecase struct {
	users  repository.UserRepository
	codec  *token.Codec
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, codec *token.Codec, sender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		codec:  codec,
		email:  sender,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Login checks the credentials against the stored bcrypt hash and mints a
// token on success. Unknown user and wrong password surface as distinct
// errors; the handler maps them to distinct 401 messages.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, pass string) (string, *domain.User, error) {
	if !emailShape.MatchString(emailAddr) {
		return "", nil, domain.ErrEmailInvalid
	}
	if pass == "" {
		return "", nil, domain.ErrPasswordRequired
	}

	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !password.Matches(pass, user.PasswordHash) {
		return "", nil, domain.ErrPasswordMismatch
	}

	tok, err := u.codec.Mint(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("mint token: %w", err)
	}
	return tok, user, nil
}

// Register creates a new user and mints a token for it. The welcome email is
// best-effort; a send failure never fails the registration.
func (u *AuthUsecase) Register(ctx context.Context, emailAddr, pass string) (string, *domain.User, error) {
	if !emailShape.MatchString(emailAddr) {
		return "", nil, domain.ErrEmailInvalid
	}
	if pass == "" {
		return "", nil, domain.ErrPasswordRequired
	}

	_, err := u.users.FindByEmail(ctx, emailAddr)
	if err == nil {
		return "", nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Email: emailAddr, PasswordHash: hash}
	if err := u.users.Create(ctx, user); err != nil {
		// A concurrent registration can still lose the race after the
		// existence check above; the unique constraint is authoritative.
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return "", nil, domain.ErrUserAlreadyExists
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	tok, err := u.codec.Mint(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("mint token: %w", err)
	}

	if err := u.email.Send(ctx, user.Email, "Welcome to Imagefeed",
		"<p>Your account is ready. Sign in and post your first picture.</p>"); err != nil {
		u.logger.ErrorContext(ctx, "welcome email", "error", err)
	}

	return tok, user, nil
}
