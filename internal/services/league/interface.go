package league

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ladder/internal/services/league Service

import (
	"context"

	"github.com/KirkDiggler/ladder/internal/models"
)

// Service defines the command interface of a league session
type Service interface {
	// Execute parses and runs a single command line
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error)

	// Snapshot returns the current state of the league
	Snapshot(ctx context.Context) *models.League
}
