package cli

import (
	"strings"

	"work-forge/internal/api"
	"work-forge/internal/config"
	"work-forge/internal/domain"
	"work-forge/internal/errors"
)

// App wires the ledger API and configuration into the command handlers.
// The acting user is resolved once from flags or environment before any
// command runs.
type App struct {
	ledger api.Ledger
	config *config.Config
	actor  domain.Actor
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(ledger api.Ledger, cfg *config.Config) *App {
	return &App{
		ledger: ledger,
		config: cfg,
	}
}

// SetActor records who is performing the commands of this invocation
func (a *App) SetActor(id string, role string) {
	a.actor = domain.Actor{
		ID:   id,
		Role: parseRole(role),
	}
}

// RequireActor returns the acting user or an error when no identity was
// provided. Mutating commands refuse to run anonymously.
func (a *App) RequireActor() (domain.Actor, error) {
	if a.actor.ID == "" {
		return domain.Actor{}, errors.NewInvalidInputError("actor", "",
			"actor id required; set --actor or WF_ACTOR")
	}
	return a.actor, nil
}

// parseRole normalizes a role string, defaulting to member for unknown
// or empty values.
func parseRole(role string) domain.Role {
	switch domain.Role(strings.ToLower(strings.TrimSpace(role))) {
	case domain.RoleAdmin:
		return domain.RoleAdmin
	case domain.RoleHR:
		return domain.RoleHR
	case domain.RoleManager:
		return domain.RoleManager
	case domain.RoleClient:
		return domain.RoleClient
	default:
		return domain.RoleMember
	}
}

// parseKeyValueArgs splits trailing "key=value" arguments into a map.
// Arguments without an equals sign are rejected.
func parseKeyValueArgs(args []string) (map[string]string, error) {
	result := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, errors.NewInvalidInputError("filter", arg, "expected key=value")
		}
		result[key] = value
	}
	return result, nil
}
