package discord

import (
	"context"

	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
)

// nopRepository stores nothing
type nopRepository struct{}

func (nopRepository) SaveLeague(ctx context.Context, input *leagueRepo.SaveLeagueInput) error {
	return nil
}

func (nopRepository) LoadLeague(ctx context.Context, input *leagueRepo.LoadLeagueInput) (*leagueRepo.LoadLeagueOutput, error) {
	return nil, leagueRepo.ErrLeagueNotFound
}
