package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ladder/internal/handlers/console"
	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
	"github.com/KirkDiggler/ladder/internal/services/league"
)

// ladder exec
func Exec() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run a single league command",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`exec runs one league command and prints its result.

			With --state the league is loaded from the given path first
			(an empty league is used if nothing is saved there yet) and
			saved back afterwards, so successive calls build up a league:

			  ladder exec --state league.json add player Alice
			  ladder exec --state league.json add player Bob
			  ladder exec --state league.json record win Bob Alice`),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _ := cmd.Flags().GetString("state")
			return runExec(cmd, state, strings.Join(args, " "))
		},
	}

	cmd.Flags().String("state", "", "Load the league from and save it back to this path")

	return cmd
}

func runExec(cmd *cobra.Command, state, line string) error {
	factory, err := newSessionFactory(cmd)
	if err != nil {
		return err
	}

	session, err := factory()
	if err != nil {
		return err
	}

	c, err := console.New(&console.Config{
		Session: session,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	if state != "" {
		if strings.ContainsFunc(state, unicode.IsSpace) {
			return fmt.Errorf("state path %q cannot contain whitespace", state)
		}

		output, err := session.Execute(ctx, &league.ExecuteInput{Line: "load " + state})
		switch {
		case errors.Is(err, leagueRepo.ErrLeagueNotFound):
			logrus.WithField("state", state).Debug("no saved league, starting empty")
		case err != nil:
			return err
		case output.Err != nil:
			return fmt.Errorf("load %s: %w", state, output.Err)
		}
	}

	if err := c.Handle(ctx, line); err != nil {
		return err
	}

	if state != "" {
		return c.Handle(ctx, "save "+state)
	}

	return nil
}
