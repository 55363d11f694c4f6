package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kenams/sport-challenge-roulette/internal/database"
	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/eventlog"
)

func TestRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var container *pgcontainer.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		container, err = pgcontainer.Run(ctx,
			"postgres:15-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if container == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewDefaultPool(connStr)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, applyMigrations(ctx, pool, "../../../migrations"))

	players := NewPlayerRepository(pool)
	duels := NewDuelRepository(pool)

	t.Run("GetEligiblePlayers filters on level and fair play", func(t *testing.T) {
		insertTestPlayer(ctx, t, pool, "eligible_one", 2, 80, 100)
		insertTestPlayer(ctx, t, pool, "eligible_two", 5, 40, 50)
		insertTestPlayer(ctx, t, pool, "too_low_level", 1, 90, 10)
		insertTestPlayer(ctx, t, pool, "bad_sport", 4, 39, 10)

		got, err := players.GetEligiblePlayers(ctx, 2, 40)
		require.NoError(t, err)

		names := make([]string, 0, len(got))
		for _, p := range got {
			names = append(names, p.Username)
		}
		assert.Contains(t, names, "eligible_one")
		assert.Contains(t, names, "eligible_two")
		assert.NotContains(t, names, "too_low_level")
		assert.NotContains(t, names, "bad_sport")
	})

	t.Run("InsertDuels then count and list", func(t *testing.T) {
		a := insertTestPlayer(ctx, t, pool, "duelist_a", 3, 90, 100)
		b := insertTestPlayer(ctx, t, pool, "duelist_b", 3, 90, 100)

		const weekID = "2024-06-03"
		d := testDuel(weekID, a, b, time.Now().Add(96*time.Hour))
		require.NoError(t, duels.InsertDuels(ctx, []domain.Duel{d}))

		count, err := duels.CountDuelsForWeek(ctx, weekID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		listed, err := duels.ListDuelsForWeek(ctx, weekID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, d.ID, listed[0].ID)
		assert.Equal(t, domain.DuelStatusPending, listed[0].Status)
		assert.False(t, listed[0].PenaltyApplied)
	})

	t.Run("Unique index rejects second duel for same player and week", func(t *testing.T) {
		a := insertTestPlayer(ctx, t, pool, "unique_a", 3, 90, 100)
		b := insertTestPlayer(ctx, t, pool, "unique_b", 3, 90, 100)
		c := insertTestPlayer(ctx, t, pool, "unique_c", 3, 90, 100)

		const weekID = "2024-06-10"
		require.NoError(t, duels.InsertDuels(ctx, []domain.Duel{testDuel(weekID, a, b, time.Now().Add(time.Hour))}))

		err := duels.InsertDuels(ctx, []domain.Duel{testDuel(weekID, a, c, time.Now().Add(time.Hour))})
		require.Error(t, err)

		// The failed batch must not leave partial rows behind
		count, err := duels.CountDuelsForWeek(ctx, weekID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Penalty transaction applies sanction exactly once", func(t *testing.T) {
		a := insertTestPlayer(ctx, t, pool, "penalty_a", 3, 45, 100)
		b := insertTestPlayer(ctx, t, pool, "penalty_b", 3, 5, 10)

		const weekID = "2024-05-27"
		d := testDuel(weekID, a, b, time.Now().Add(-time.Hour))
		require.NoError(t, duels.InsertDuels(ctx, []domain.Duel{d}))

		overdue, err := duels.FindOverdueUnpenalized(ctx, time.Now())
		require.NoError(t, err)
		require.Len(t, overdue, 1)
		assert.Equal(t, d.ID, overdue[0].ID)

		tx, err := duels.BeginPenaltyTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		require.NoError(t, tx.MarkPenalized(ctx, d.ID))

		for _, id := range []uuid.UUID{a, b} {
			p, err := tx.GetPlayer(ctx, id)
			require.NoError(t, err)
			newScore := max(p.FairPlayScore-domain.PenaltyFairPlay, 0)
			newPoints := max(p.Points-domain.PenaltyPoints, 0)
			require.NoError(t, tx.UpdatePlayerPenalty(ctx, id, newScore, newPoints))
		}
		require.NoError(t, tx.Commit(ctx))

		pa, err := players.GetPlayer(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, 35, pa.FairPlayScore)
		assert.Equal(t, 80, pa.Points)

		pb, err := players.GetPlayer(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, 0, pb.FairPlayScore)
		assert.Equal(t, 0, pb.Points)

		// The duel left the sweep's view and a second claim loses
		overdue, err = duels.FindOverdueUnpenalized(ctx, time.Now())
		require.NoError(t, err)
		assert.Empty(t, overdue)

		err = duels.MarkPenalized(ctx, d.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyPenalized)
	})

	t.Run("Activity log round trip and cleanup", func(t *testing.T) {
		logRepo := NewEventLogRepository(pool)

		userID := uuid.NewString()
		require.NoError(t, logRepo.LogEvent(ctx, "roulette.duel_drawn", &userID, map[string]interface{}{
			"sport": "plank",
		}))

		eventType := "roulette.duel_drawn"
		entries, err := logRepo.GetEvents(ctx, eventlog.Filter{
			UserID:    &userID,
			EventType: &eventType,
			Limit:     10,
		})
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Equal(t, "plank", entries[0].Payload["sport"])

		deleted, err := logRepo.CleanupOldEvents(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deleted, int64(1))
	})
}

func insertTestPlayer(ctx context.Context, t *testing.T, pool *pgxpool.Pool, username string, level, fairPlay, points int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO players (username, level, fair_play_score, points)
		VALUES ($1, $2, $3, $4)
		RETURNING player_id
	`, username, level, fairPlay, points).Scan(&id)
	require.NoError(t, err)
	return id
}

func testDuel(weekID string, a, b uuid.UUID, deadline time.Time) domain.Duel {
	return domain.Duel{
		ID:        uuid.New(),
		WeekID:    weekID,
		PlayerA:   a,
		PlayerB:   b,
		Sport:     domain.SportBurpees,
		Status:    domain.DuelStatusPending,
		Deadline:  deadline,
		CreatedAt: time.Now(),
	}
}

// applyMigrations runs all migration files in order, stripping goose markers
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := strings.Replace(string(content), "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}

		if _, err := pool.Exec(ctx, strings.TrimSpace(contentStr)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}
