package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
)

// ladder list
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved leagues (redis store only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := newRepository(cmd)
			if err != nil {
				return err
			}

			lister, ok := repo.(leagueRepo.Lister)
			if !ok {
				return fmt.Errorf("the %s store cannot list leagues", storeFile)
			}

			ctx, cancel := withTimeout()
			defer cancel()

			output, err := lister.ListLeagues(ctx, &leagueRepo.ListLeaguesInput{})
			if err != nil {
				return err
			}

			for _, path := range output.Paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
