package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	id, err := s.CreateAccount(ctx, "ana@example.com", "Ana", "viewer")
	require.NoError(t, err)
	_, err = s.CreateAccount(ctx, "bruno@example.com", "Bruno", "admin")
	require.NoError(t, err)

	_, err = s.CreateAccount(ctx, "ana@example.com", "Ana 2", "viewer")
	assert.Error(t, err, "duplicate email")

	a, err := s.AccountByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "viewer", a.Role)
	assert.False(t, a.CreatedAt.IsZero())

	require.NoError(t, s.SetRole(ctx, "ana@example.com", "editor"))
	a, err = s.AccountByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "editor", a.Role)

	all, err := s.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ana@example.com", all[0].Email)
	assert.Equal(t, "bruno@example.com", all[1].Email)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	_, err := s.AccountByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.SetRole(ctx, "ghost@example.com", "admin"), ErrNotFound)

	_, err = s.Avatar(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvatars(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	accountID, err := s.CreateAccount(ctx, "ana@example.com", "Ana", "viewer")
	require.NoError(t, err)

	data := []byte("\x89PNG\r\n\x1a\nfake")
	id, err := s.SaveAvatar(ctx, accountID, "image/png", data)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	av, err := s.Avatar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, accountID, av.AccountID)
	assert.Equal(t, "image/png", av.ContentType)
	assert.Equal(t, data, av.Data)

	a, err := s.AccountByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, a.AvatarID)
}

func TestSaveAvatarUnknownAccount(t *testing.T) {
	s := openTest(t)
	_, err := s.SaveAvatar(context.Background(), 42, "image/png", []byte("x"))
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	day := func(d int) time.Time { return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, s.AddEntry(ctx, Entry{Day: day(1), Region: "Sul", Category: "Vendas", Amount: 10}))
	require.NoError(t, s.AddEntry(ctx, Entry{Day: day(5), Region: "Norte", Category: "Vendas", Amount: 20}))
	require.NoError(t, s.AddEntry(ctx, Entry{Day: day(9), Region: "Sul", Category: "Serviços", Amount: 30}))

	got, err := s.Entries(ctx, day(5))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Norte", got[0].Region)
	assert.True(t, got[0].Day.Equal(day(5)))
	assert.InDelta(t, 30, got[1].Amount, 1e-9)

	regions, err := s.Regions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sul", "Norte"}, regions)

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vendas", "Serviços"}, categories)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	n, err := s.Seed(ctx, now, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3*5*4, n)

	got, err := s.Entries(ctx, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Len(t, got, 2*5*4)

	regions, err := s.Regions(ctx)
	require.NoError(t, err)
	assert.Len(t, regions, 5)
}
