package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/H1dayet/StoreMonitoring/config"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{DataDir: dir},
		Auth:    config.AuthConfig{SeedAdminPassword: "admin123"},
	}
}

// newTestRepo starts a repository over a fresh temp dir. Collections
// named in empty are pre-seeded with an empty JSON array so the
// default seeds do not apply.
func newTestRepo(t *testing.T, empty ...string) (*JSONFile, string) {
	t.Helper()

	dir := t.TempDir()
	for _, file := range empty {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte("[]"), 0o644))
	}

	repo := New(zap.NewNop().Sugar(), testConfig(dir))
	require.NoError(t, repo.OnStart(context.Background()))
	return repo, dir
}

func reopen(t *testing.T, dir string) *JSONFile {
	t.Helper()

	repo := New(zap.NewNop().Sugar(), testConfig(dir))
	require.NoError(t, repo.OnStart(context.Background()))
	return repo
}

func TestOnStartUnreadableFileFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storesFile), []byte("{not json"), 0o644))

	repo := New(zap.NewNop().Sugar(), testConfig(dir))
	require.NoError(t, repo.OnStart(context.Background()))

	stores, err := repo.ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
}
