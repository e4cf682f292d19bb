package testing

import (
	"context"
	"net"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetPostgresPool opens a pool against the postgres used by integration
// tests. POSTGRES_HOST, POSTGRES_PORT, POSTGRES_DB, POSTGRES_USER and
// POSTGRES_PASS override the local defaults.
func GetPostgresPool(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	connURL := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(envOr("POSTGRES_USER", "postgres"), os.Getenv("POSTGRES_PASS")),
		Host:   net.JoinHostPort(envOr("POSTGRES_HOST", "localhost"), envOr("POSTGRES_PORT", "5432")),
		Path:   envOr("POSTGRES_DB", "workoutplanner_test"),
	}
	t.Logf("using postgres at: [%s]", connURL.Host)

	pool, err := pgxpool.New(ctx, connURL.String())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))

	return ctx, pool
}
