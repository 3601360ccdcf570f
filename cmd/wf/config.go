package main

import (
	"fmt"
	"io/fs"
	"os"

	"work-forge/internal/config"
	"work-forge/internal/logging"
	"work-forge/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// getEnvironment determines the current environment from WF_ENV,
// defaulting to production.
func getEnvironment() Environment {
	switch os.Getenv("WF_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		logging.Debugln("using development database ./wf.db")
		return sqlite.New("wf.db")
	case Testing:
		logging.Debugln("using in-memory database")
		return sqlite.New(":memory:")
	default:
		return rf.createProductionRepository()
	}
}

// createProductionRepository opens the configured database file, creating
// its directory first.
func (rf *RepositoryFactory) createProductionRepository() (sqlite.Repository, error) {
	perms := fs.FileMode(rf.cfg.Database.DirPermissions)
	if err := os.MkdirAll(rf.cfg.Database.Dir, perms); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbPath := rf.cfg.GetDatabasePath()
	logging.Debugf("using database %s\n", dbPath)

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
