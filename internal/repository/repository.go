// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/H1dayet/StoreMonitoring/config"
	"github.com/H1dayet/StoreMonitoring/internal/repository/jsonfile"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	IssueInterface
	StoreInterface
	UserInterface
}

// New constructs repository backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "jsonfile":
		return jsonfile.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
