package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/deniz/classbooker/internal/app/migrations"
	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

// setupTestPool starts a throwaway PostgreSQL container and applies the real
// migrations so repository tests run against the production schema.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(3 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	var pool *pgxpool.Pool
	for range 10 {
		pool, err = pgxpool.New(ctx, connStr)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to connect after retries")
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	return pool
}

func TestAdjustSeats_SecondDecrementAtZeroFails(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewClassRepository(pool)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Class{
		Name:            "Watercolor Basics",
		InstructorEmail: "painter@classbooker.app",
		Price:           20,
		TotalSeats:      1,
		AvailableSeats:  1,
		Status:          models.ClassApproved,
	})
	require.NoError(t, err)

	// First settlement takes the last seat.
	require.NoError(t, repo.AdjustSeats(ctx, id, -1, +1))

	// A replayed settlement must not drive available_seats below zero.
	err = repo.AdjustSeats(ctx, id, -1, +1)
	assert.ErrorIs(t, err, apperrors.ErrNoSeatsLeft)

	class, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, class.AvailableSeats)
	assert.Equal(t, 1, class.EnrolledStudents)

	// Freeing the seat again is still possible.
	require.NoError(t, repo.AdjustSeats(ctx, id, +1, -1))

	class, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, class.AvailableSeats)
	assert.Equal(t, 0, class.EnrolledStudents)

	err = repo.AdjustSeats(ctx, 99999, -1, +1)
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}
