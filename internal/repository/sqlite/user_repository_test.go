package sqlite

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func TestUserCreateAndGet(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	id, err := users.Create(ctx, &domain.User{
		Email:        "a@example.com",
		PasswordHash: "hash-a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	byEmail, err := users.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.ID != id {
		t.Fatalf("ID = %d, want %d", byEmail.ID, id)
	}
	if byEmail.PasswordHash != "hash-a" {
		t.Fatalf("PasswordHash = %q, want %q", byEmail.PasswordHash, "hash-a")
	}

	byID, err := users.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.Email != "a@example.com" {
		t.Fatalf("Email = %q, want %q", byID.Email, "a@example.com")
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, &domain.User{Email: "a@example.com", PasswordHash: "h1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := users.Create(ctx, &domain.User{Email: "a@example.com", PasswordHash: "h2"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserNotFound(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	if _, err := users.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByEmail err = %v, want ErrNotFound", err)
	}
	if _, err := users.GetByID(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByID err = %v, want ErrNotFound", err)
	}
}
