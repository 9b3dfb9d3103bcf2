package accounts_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"streamvault/internal/database"
	"streamvault/services/accounts"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(database.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newService(t *testing.T) (*accounts.Service, *database.DB) {
	t.Helper()
	db := newTestDB(t)
	return accounts.NewService(db.Users, db.Sessions, 0), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected assigned user id")
	}

	// The stored hash must not be the plaintext.
	user, err := db.Users.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to fetch user: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("email = %q, want %q", user.Email, "a@x.com")
	}
	if user.PasswordHash == "pw1" || user.PasswordHash == "" {
		t.Fatalf("password stored in plaintext or empty")
	}

	result, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected session token")
	}
	if result.UserID != id {
		t.Fatalf("login user id = %d, want %d", result.UserID, id)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("first register returned error: %v", err)
	}

	if _, err := svc.Register(ctx, "alice", "other@x.com", "pw2"); !errors.Is(err, accounts.ErrDuplicateUser) {
		t.Fatalf("duplicate username err = %v, want ErrDuplicateUser", err)
	}
	if _, err := svc.Register(ctx, "bob", "a@x.com", "pw2"); !errors.Is(err, accounts.ErrDuplicateUser) {
		t.Fatalf("duplicate email err = %v, want ErrDuplicateUser", err)
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"missing username", "", "a@x.com", "pw"},
		{"missing email", "alice", "", "pw"},
		{"missing password", "alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.username, tc.email, tc.password); !errors.Is(err, accounts.ErrMissingFields) {
				t.Fatalf("err = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if _, err := svc.Login(ctx, "nobody", "pw1"); !errors.Is(err, accounts.ErrUserNotFound) {
		t.Fatalf("unknown user err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, accounts.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	result, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}

	user, err := svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("authenticated username = %q, want %q", user.Username, "alice")
	}

	if _, err := svc.Authenticate(ctx, "bogus-token"); !errors.Is(err, accounts.ErrInvalidSession) {
		t.Fatalf("bogus token err = %v, want ErrInvalidSession", err)
	}

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if _, err := svc.Authenticate(ctx, result.Token); !errors.Is(err, accounts.ErrInvalidSession) {
		t.Fatalf("post-logout err = %v, want ErrInvalidSession", err)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db.Users, db.Sessions, time.Nanosecond)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	result, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}

	time.Sleep(time.Millisecond)

	if _, err := svc.Authenticate(ctx, result.Token); !errors.Is(err, accounts.ErrInvalidSession) {
		t.Fatalf("expired session err = %v, want ErrInvalidSession", err)
	}
}
