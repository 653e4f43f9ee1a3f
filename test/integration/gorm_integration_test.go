package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"smartnotes-be/internal/entity"
	"smartnotes-be/internal/repository/specification"
	"smartnotes-be/internal/repository/unitofwork"
	"smartnotes-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check Transactional Note Create", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Email:        "test-integration@example.com",
			PasswordHash: "not-a-real-hash",
		}

		err := uow.Begin(ctx)
		require.NoError(t, err)
		defer uow.Rollback()

		existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: user.Email})
		require.NoError(t, err)
		if existing == nil {
			require.NoError(t, uow.UserRepository().Create(ctx, user))
		} else {
			user = existing
		}

		note := &entity.Note{
			Title:  "Integration note",
			UserId: user.Id,
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))
		assert.NotZero(t, note.Id)

		// Rolled back by the deferred call; nothing persists
		t.Log("Successfully created Note inside a transaction")
	})
}
