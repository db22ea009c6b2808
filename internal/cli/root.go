package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Persistent flag names
const (
	flagTrace     = "trace"
	flagStore     = "store"
	flagDataDir   = "data-dir"
	flagRedisAddr = "redis-addr"
)

// Root builds the ladder command tree
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "ladder",
		Short: "Pyramid league ladder",
		Long: heredoc.Doc(`ladder keeps a pyramid ranking of players. The champion
			sits alone on the top row and every row below holds one more
			player than the row above it.

			A win can only be recorded against a player exactly one row
			above the winner, and the two players swap places.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag(flagTrace).Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		// with no subcommand, start the interactive console
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args)
		},
	}

	// global flags
	root.PersistentFlags().BoolP(flagTrace, "t", false, "Show Trace Information")
	root.PersistentFlags().String(flagStore, getEnv("LADDER_STORE", storeFile), "Where load and save keep leagues: file or redis")
	root.PersistentFlags().String(flagDataDir, getEnv("LADDER_DATA_DIR", ""), "Directory relative league files are resolved against")
	root.PersistentFlags().String(flagRedisAddr, getEnv("REDIS_ADDR", "localhost:6379"), "Redis address for the redis store")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Exec())
	root.AddCommand(Bot())
	root.AddCommand(List())

	return root
}
