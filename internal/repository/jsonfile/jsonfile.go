// Package jsonfile implements the repository against flat JSON files.
// Each collection is held in memory as the source of truth, guarded by
// its own mutex, and mirrored to disk as a whole on every mutation.
// Read failures at startup degrade to seeded defaults; write failures
// are logged and never surface to the caller.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/H1dayet/StoreMonitoring/config"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

const (
	issuesFile = "issues.json"
	usersFile  = "users.json"
	storesFile = "stores.json"
)

// JSONFile wraps the three in-memory collections and their backing files.
type JSONFile struct {
	log               *zap.SugaredLogger
	dataDir           string
	seedAdminPassword string

	issuesMu sync.Mutex
	issues   []entities.Issue

	usersMu sync.Mutex
	users   []entities.User

	storesMu   sync.Mutex
	stores     []entities.Store
	storeIndex map[string]entities.Store
}

// New creates a flat-file repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *JSONFile {
	return &JSONFile{
		log:               log.Named("repo.jsonfile"),
		dataDir:           cfg.Storage.DataDir,
		seedAdminPassword: cfg.Auth.SeedAdminPassword,
		storeIndex:        map[string]entities.Store{},
	}
}

// OnStart rehydrates every collection from disk, seeding defaults where
// no file exists or reading fails.
func (j *JSONFile) OnStart(_ context.Context) error {
	if err := os.MkdirAll(j.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	j.loadIssues()
	j.loadUsers()
	j.loadStores()

	j.log.Infow("jsonfile ready",
		"data_dir", j.dataDir,
		"issues", len(j.issues),
		"users", len(j.users),
		"stores", len(j.stores),
	)
	return nil
}

// OnStop is a no-op; every mutation already persisted synchronously.
func (j *JSONFile) OnStop(_ context.Context) error {
	return nil
}

func (j *JSONFile) path(file string) string {
	return filepath.Join(j.dataDir, file)
}

// load reads a collection file into v. It returns false when the file
// does not exist; decode and read errors are logged, not fatal.
func (j *JSONFile) load(file string, v any) bool {
	raw, err := os.ReadFile(j.path(file))
	if err != nil {
		if !os.IsNotExist(err) {
			j.log.Errorw("failed to read collection", "file", file, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		j.log.Errorw("failed to decode collection", "file", file, "error", err)
		return false
	}
	return true
}

// persist mirrors a collection to its file. The in-memory state stays
// authoritative even when the write fails.
func (j *JSONFile) persist(file string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		j.log.Errorw("failed to encode collection", "file", file, "error", err)
		return
	}
	if err := atomic.WriteFile(j.path(file), bytes.NewReader(data)); err != nil {
		j.log.Errorw("failed to write collection", "file", file, "error", err)
	}
}
