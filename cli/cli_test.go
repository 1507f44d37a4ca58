package cli

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reportdeck/admin"
	"github.com/lixenwraith/reportdeck/config"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewCLI()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvDB, "")
	return filepath.Join(t.TempDir(), "cli.db")
}

func TestSeedAndAccounts(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	out, err := run(t, ctx, "seed", "--db", db, "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 40 entries over 2 days")
	assert.Contains(t, out, "created admin@example.com (admin)")

	// Sample accounts are not duplicated on a second run
	out, err = run(t, ctx, "seed", "--db", db, "--days", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "created")

	out, err = run(t, ctx, "accounts", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "EMAIL"))
	assert.Contains(t, out, "viewer@example.com")
}

func TestAccountsShortAvatarID(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	_, err := run(t, ctx, "seed", "--db", db, "--days", "1")
	require.NoError(t, err)

	// Rows written by another tool may carry ids shorter than a uuid prefix
	raw, err := sql.Open("sqlite3", db)
	require.NoError(t, err)
	_, err = raw.ExecContext(ctx, `UPDATE accounts SET avatar_id = 'ab1' WHERE email = 'viewer@example.com'`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	out, err := run(t, ctx, "accounts", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "ab1")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "", shortID(""))
	assert.Equal(t, "ab1", shortID("ab1"))
	assert.Equal(t, "0123abcd", shortID("0123abcd-ffff-4000-8000-000000000000"))
}

func TestSeedRejectsNonPositiveDays(t *testing.T) {
	_, err := run(t, context.Background(), "seed", "--db", testDB(t), "--days", "0")
	assert.Error(t, err)
}

func TestRepairAndVerifyRole(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	_, err := run(t, ctx, "seed", "--db", db, "--days", "1")
	require.NoError(t, err)

	_, err = run(t, ctx, "verify-role", "--db", db, "viewer@example.com", "admin")
	assert.ErrorIs(t, err, admin.ErrRoleMismatch)

	out, err := run(t, ctx, "repair-role", "--db", db, "--dry-run", "viewer@example.com", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "viewer (want admin)")

	out, err = run(t, ctx, "repair-role", "--db", db, "viewer@example.com", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "viewer -> admin")

	out, err = run(t, ctx, "verify-role", "--db", db, "viewer@example.com", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "viewer@example.com: ok")

	_, err = run(t, ctx, "repair-role", "--db", db, "viewer@example.com")
	assert.Error(t, err, "missing role argument")
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	_, err := run(t, ctx, "seed", "--db", db, "--days", "1")
	require.NoError(t, err)

	img := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(img, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))

	out, err := run(t, ctx, "upload-avatar", "--db", db, "editor@example.com", img)
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	assert.Len(t, id, 36)

	out, err = run(t, ctx, "accounts", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, id[:8])

	_, err = run(t, ctx, "upload-avatar", "--db", db, "editor@example.com", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestServeStopsOnCancel(t *testing.T) {
	db := testDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := run(t, ctx, "serve", "--db", db, "--listen", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestDashboardRejectsUnknownPeriod(t *testing.T) {
	_, err := run(t, context.Background(), "dashboard", "--db", testDB(t), "--period", "14d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown period "14d"`)
}

func TestBadConfigPath(t *testing.T) {
	_, err := run(t, context.Background(), "accounts", "--db", testDB(t), "--config", "/nonexistent/reportdeck.yaml")
	assert.Error(t, err)
}
