package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRepos(t *testing.T) (repository.UserRepository, repository.TaskRepository) {
	t.Helper()

	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	tasks := NewTaskRepository(db)
	if err := tasks.Init(ctx); err != nil {
		t.Fatalf("init tasks: %v", err)
	}
	return users, tasks
}

func createTestUser(t *testing.T, users repository.UserRepository, email string) int64 {
	t.Helper()

	id, err := users.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return id
}
