//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, strings.Split(email, "@")[0], email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestUnit(t *testing.T, db DBLike, label string) uuid.UUID {
	t.Helper()

	var unitID uuid.UUID
	err := db.QueryRow(context.Background(), "INSERT INTO units (label) VALUES ($1) RETURNING id", label).Scan(&unitID)
	require.NoError(t, err)

	return unitID
}

// inserts an active hourly space priced at 50000 per unit
func CreateTestSpace(t *testing.T, db DBLike, name string, approvalRequired bool) uuid.UUID {
	t.Helper()

	var spaceID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO common_spaces (name, category, capacity, time_unit, price_per_unit, active, approval_required)
		VALUES ($1, 'social_hall', 40, 'hour', 50000, true, $2)
		RETURNING id`, name, approvalRequired).Scan(&spaceID)
	require.NoError(t, err)

	return spaceID
}

// inserts a booking row directly, bypassing the past-start and conflict checks
func CreateTestBooking(t *testing.T, db DBLike, spaceID, userID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	var bookingID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (space_id, user_id, start_at, end_at, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $2)
		RETURNING id`, spaceID, userID, start, end, status).Scan(&bookingID)
	require.NoError(t, err)

	return bookingID
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)

	return status
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO units (label) VALUES ('101'), ('102');
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
