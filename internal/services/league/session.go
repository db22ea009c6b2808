package league

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/ladder/internal/common/clock"
	"github.com/KirkDiggler/ladder/internal/common/uuid"
	"github.com/KirkDiggler/ladder/internal/ladder"
	"github.com/KirkDiggler/ladder/internal/models"
	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
)

var helpText = heredoc.Doc(`
	add player <name>             add a player to the first free slot
	record win <winner> <loser>   winner must be one row below loser
	print                         show the pyramid
	winner                        show the champion
	load <path>                   replace the league with a saved one
	save <path>                   save the league`)

// Session owns a single league and runs commands against it
type Session struct {
	id         string
	league     *ladder.League
	repository leagueRepo.Repository
	clock      clock.Clock
	createdAt  time.Time
	updatedAt  time.Time
	log        *logrus.Entry
}

// NewSession creates a league session
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	l, err := ladder.FromRows(cfg.Rows)
	if err != nil {
		return nil, err
	}

	id := ids.NewUUID()
	now := clk.Now()

	return &Session{
		id:         id,
		league:     l,
		repository: cfg.Repository,
		clock:      clk,
		createdAt:  now,
		updatedAt:  now,
		log:        logrus.WithField("session", id),
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// League returns the league owned by the session
func (s *Session) League() *ladder.League {
	return s.league
}

// Execute runs a command line. League and parse errors become the reply;
// only persistence failures are returned as errors.
func (s *Session) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	cmd, err := ParseCommand(input.Line)
	if err != nil {
		s.log.WithField("line", input.Line).Debug("unknown command")
		return replyWithError(nil, err)
	}

	log := s.log.WithField("command", cmd.Type)
	log.Trace("executing command")

	output := &ExecuteOutput{Command: cmd}

	switch cmd.Type {
	case CommandAddPlayer:
		if err := s.league.AddPlayer(cmd.Player); err != nil {
			log.WithError(err).Debug("player rejected")
			return replyWithError(cmd, err)
		}
		s.touch()
		log.WithFields(logrus.Fields{
			"player":  cmd.Player,
			"players": s.league.Len(),
		}).Debug("player added")

	case CommandRecordWin:
		if err := s.league.RecordWin(cmd.Winner, cmd.Loser); err != nil {
			log.WithError(err).Debug("match rejected")
			return replyWithError(cmd, err)
		}
		s.touch()
		log.WithFields(logrus.Fields{
			"winner": cmd.Winner,
			"loser":  cmd.Loser,
		}).Debug("match recorded")

	case CommandPrint:
		output.Reply = s.league.Render()
		output.HasReply = true

	case CommandWinner:
		output.Reply, output.HasReply = s.league.Winner()

	case CommandLoad:
		loaded, err := s.repository.LoadLeague(ctx, &leagueRepo.LoadLeagueInput{
			Path: cmd.Path,
		})
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cmd.Path, err)
		}

		l, err := ladder.FromRows(loaded.Rows)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cmd.Path, err)
		}

		s.league = l
		s.touch()
		log.WithFields(logrus.Fields{
			"path":    cmd.Path,
			"players": l.Len(),
		}).Info("league loaded")

	case CommandSave:
		err := s.repository.SaveLeague(ctx, &leagueRepo.SaveLeagueInput{
			Path: cmd.Path,
			Rows: s.league.Rows(),
		})
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", cmd.Path, err)
		}
		log.WithField("path", cmd.Path).Info("league saved")

	case CommandHelp:
		output.Reply = helpText
		output.HasReply = true
	}

	return output, nil
}

// Snapshot returns a copy of the current league state
func (s *Session) Snapshot(ctx context.Context) *models.League {
	champion, _ := s.league.Winner()

	return &models.League{
		SessionID: s.id,
		Rows:      s.league.Rows(),
		Players:   s.league.Players(),
		Champion:  champion,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}

func (s *Session) touch() {
	s.updatedAt = s.clock.Now()
}

// replyWithError converts user facing errors into a reply
func replyWithError(cmd *Command, err error) (*ExecuteOutput, error) {
	if !IsUserError(err) {
		return nil, err
	}

	return &ExecuteOutput{
		Command:  cmd,
		Reply:    err.Error(),
		HasReply: true,
		Err:      err,
	}, nil
}

// IsUserError reports whether err is caused by the command itself rather
// than by the environment
func IsUserError(err error) bool {
	var (
		invalidName *ladder.InvalidNameError
		duplicate   *ladder.DuplicatePlayerError
		notFound    *ladder.PlayerNotFoundError
		invalid     *ladder.InvalidMatchError
		unknown     *UnknownCommandError
	)

	return errors.As(err, &invalidName) ||
		errors.As(err, &duplicate) ||
		errors.As(err, &notFound) ||
		errors.As(err, &invalid) ||
		errors.As(err, &unknown)
}
