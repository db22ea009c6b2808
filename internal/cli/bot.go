package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ladder/internal/dice"
	"github.com/KirkDiggler/ladder/internal/handlers/discord"
	"github.com/KirkDiggler/ladder/internal/services/messaging"
)

// ladder bot
func Bot() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the ladder as a Discord bot",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`bot connects to Discord and registers the /ladder slash
			command. Every channel gets its own league; use /ladder save
			and /ladder load to keep one across restarts.

			League files live under --data-dir, which defaults to
			ladder under the XDG data directory for the bot.

			The bot is configured through the environment:
			DISCORD_TOKEN (required), APPLICATION_ID and GUILD_ID.`),
		RunE: runBot,
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	// Get Discord token from environment
	token := getEnv("DISCORD_TOKEN", "")
	if token == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}

	if err := ensureDataDir(cmd); err != nil {
		return err
	}

	factory, err := newSessionFactory(cmd)
	if err != nil {
		return err
	}

	sessions, err := discord.NewSessionStore(factory)
	if err != nil {
		return err
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: dice.New(&dice.Config{}),
	})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Token:            token,
		ApplicationID:    getEnv("APPLICATION_ID", ""),
		GuildID:          getEnv("GUILD_ID", ""),
		Sessions:         sessions,
		MessagingService: messagingSvc,
	})
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " connecting to Discord"
	s.Start()
	err = bot.Start()
	s.Stop()
	if err != nil {
		return err
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logrus.WithError(err).Error("error stopping bot")
	}

	logrus.WithField("channels", sessions.Len()).Info("bot has been shut down")
	return nil
}
