package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
	"github.com/ecommerce/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Each connection to file::memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := entity.NewUser("BarakObama", "$2a$04$hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByUsername(ctx, "BarakObama")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != user.ID || found.PasswordHash != user.PasswordHash {
		t.Errorf("expected %+v, got %+v", user, found)
	}

	exists, err := repo.ExistsByUsername(ctx, "BarakObama")
	if err != nil || !exists {
		t.Errorf("expected user to exist, got exists=%v err=%v", exists, err)
	}
}

func TestUserRepository_FindUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByUsername(context.Background(), "nobody")
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	exists, err := repo.ExistsByUsername(context.Background(), "nobody")
	if err != nil || exists {
		t.Errorf("expected no user, got exists=%v err=%v", exists, err)
	}
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, entity.NewUser("alice", "hash")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "ALICE"); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for different case, got %v", err)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, entity.NewUser("alice", "hash")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, entity.NewUser("alice", "other"))
	if !errors.Is(err, domainerror.ErrUsernameAlreadyExists) {
		t.Errorf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}
