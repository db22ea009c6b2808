package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KirkDiggler/ladder/internal/handlers/console"
)

// ladder play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run league commands interactively",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play reads league commands from standard input, one per
			line, and prints the result of each. Type help for the list
			of commands and exit or quit to leave.`),
		RunE: runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	factory, err := newSessionFactory(cmd)
	if err != nil {
		return err
	}

	session, err := factory()
	if err != nil {
		return err
	}

	prompt := ""
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		prompt = "> "
	}

	c, err := console.New(&console.Config{
		Session: session,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Prompt:  prompt,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return c.Run(ctx)
}
