package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"taskboard/internal/repository/sqlite"
)

func newTestServices(t *testing.T) (UserService, TaskService) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	if err := userRepo.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	taskRepo := sqlite.NewTaskRepository(db)
	if err := taskRepo.Init(ctx); err != nil {
		t.Fatalf("init tasks: %v", err)
	}

	return NewUserService(userRepo), NewTaskService(taskRepo)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	user, err := users.Register(ctx, "a@example.com", "password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected non-zero id")
	}
	if user.PasswordHash != "" {
		t.Fatal("registered user must not expose the password hash")
	}

	got, err := users.Authenticate(ctx, "a@example.com", "password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("ID = %d, want %d", got.ID, user.ID)
	}
	if got.PasswordHash != "" {
		t.Fatal("authenticated user must not expose the password hash")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"no email", "", "password1"},
		{"no password", "a@example.com", ""},
		{"neither", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := users.Register(ctx, tc.email, tc.password); !errors.Is(err, ErrMissingCredentials) {
				t.Fatalf("err = %v, want ErrMissingCredentials", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := users.Register(ctx, "a@example.com", "password1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := users.Register(ctx, "a@example.com", "other-password"); !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("err = %v, want ErrUserAlreadyExists", err)
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := users.Register(ctx, "a@example.com", "password1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// wrong password and unknown email fail identically
	if _, err := users.Authenticate(ctx, "a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := users.Authenticate(ctx, "missing@example.com", "password1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}
