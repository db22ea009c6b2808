package league

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ladder/internal/repositories/league Repository

import (
	"context"
)

// Repository defines the interface for league persistence
type Repository interface {
	// SaveLeague writes the league rows to the given path, replacing what was there
	SaveLeague(ctx context.Context, input *SaveLeagueInput) error

	// LoadLeague reads the league rows stored at the given path
	LoadLeague(ctx context.Context, input *LoadLeagueInput) (*LoadLeagueOutput, error)
}

// Lister is implemented by repositories that can enumerate saved leagues
type Lister interface {
	// ListLeagues returns every saved path
	ListLeagues(ctx context.Context, input *ListLeaguesInput) (*ListLeaguesOutput, error)
}
