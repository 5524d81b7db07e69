package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopstack/storefront-api/internal/auth"
	"github.com/shopstack/storefront-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copy := cloneUser(u)
			copy.PasswordHash = ""
			return copy, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAccountService(repo *stubUserRepo) *AccountService {
	codec := auth.NewCodec("test-secret", time.Hour)
	return NewAccountService(repo, codec, zerolog.Nop())
}

func TestAccountService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAccountService(repo)

	user, err := svc.Register(context.Background(), "Alice", "Alice@X.com", "pw123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if user.Email != "alice@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash != "" {
		t.Fatalf("public user must not expose the hash")
	}

	stored := repo.users["alice@x.com"]
	if stored.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAccountService_Register_Validation(t *testing.T) {
	svc := newTestAccountService(newStubUserRepo())

	cases := [][3]string{
		{"", "a@x.com", "pw"},
		{"Alice", "", "pw"},
		{"Alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc[0], tc[1], tc[2]); err != domain.ErrMissingFields {
			t.Fatalf("expected ErrMissingFields for %v, got %v", tc, err)
		}
	}
}

func TestAccountService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestAccountService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Alice", "A@x.com", "pw123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Alicia", "a@x.com", "pw654321"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_RegisterThenLogin_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAccountService(repo)

	created, err := svc.Register(context.Background(), "Alice", "alice@x.com", "pw123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@x.com", "pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.PasswordHash != "" {
		t.Fatalf("login response must not expose the hash")
	}

	ident, err := auth.NewCodec("test-secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if ident.UserID != created.ID {
		t.Fatalf("token subject %q does not match account id %q", ident.UserID, created.ID)
	}
	if ident.Name != "Alice" {
		t.Fatalf("unexpected name in token: %q", ident.Name)
	}
}

func TestAccountService_Login_EnumerationSafety(t *testing.T) {
	svc := newTestAccountService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Alice", "alice@x.com", "pw123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "alice@x.com", "wrong")
	_, _, noAccount := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noAccount != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noAccount)
	}
	if wrongPass != noAccount {
		t.Fatalf("error classes must match: %v vs %v", wrongPass, noAccount)
	}
}

func TestAccountService_Login_Validation(t *testing.T) {
	svc := newTestAccountService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pw"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAccountService_CurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAccountService(repo)

	created, err := svc.Register(context.Background(), "Alice", "alice@x.com", "pw123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if user.Email != "alice@x.com" || user.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "gone"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
