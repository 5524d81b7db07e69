package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopstack/storefront-api/internal/metrics"
	"github.com/shopstack/storefront-api/internal/auth"
	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// bcryptCost matches the cost factor the accounts were created with.
const bcryptCost = 10

// AccountService implements registration, login, and identity lookup
// on top of a user store and the credential codec.
type AccountService struct {
	repo   ports.UserRepository
	codec  *auth.Codec
	logger zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, codec *auth.Codec, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, codec: codec, logger: logger}
}

// Register creates a new account. The email is lowercased before the
// uniqueness check so that differently cased variants collide. No
// credential is issued: registration does not log the user in.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrMissingFields
	}
	email = strings.ToLower(email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// The store's unique index is the backstop for the race
		// between the existence check and the insert.
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return nil, domain.ErrEmailTaken
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created.Public(), nil
}

// Login verifies credentials and issues a session token. An unknown
// email and a wrong password produce the same error so callers cannot
// enumerate accounts.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Name)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", user.Email).Msg("login successful")
	return token, user.Public(), nil
}

// CurrentUser loads the account behind a verified credential. The
// store read excludes the password hash.
func (s *AccountService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
