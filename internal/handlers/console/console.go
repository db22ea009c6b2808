package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/ladder/internal/services/league"
)

// NullReply is printed when a command has no value to report, such as
// winner on a league without a champion
const NullReply = "null"

// Console runs league commands read line by line
type Console struct {
	session league.Service
	in      io.Reader
	out     io.Writer
	prompt  string
}

// Config holds the configuration for the console
type Config struct {
	// Session executes the commands
	Session league.Service

	// In and Out default to nothing, both are required
	In  io.Reader
	Out io.Writer

	// Prompt is printed before each line, empty for none
	Prompt string
}

// New creates a new console handler
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	return &Console{
		session: cfg.Session,
		in:      cfg.In,
		out:     cfg.Out,
		prompt:  cfg.Prompt,
	}, nil
}

// Run reads commands until EOF, exit or quit, or until ctx is done. Lines
// are read on a separate goroutine so cancelling ctx ends Run even while a
// read is blocked; that goroutine exits once the reader returns.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printPrompt()

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}

		// errors are printed and the loop continues
		_ = c.Handle(ctx, line)
	}
}

// Handle executes one line and prints the outcome. Storage failures are
// printed and returned.
func (c *Console) Handle(ctx context.Context, line string) error {
	output, err := c.session.Execute(ctx, &league.ExecuteInput{Line: line})
	if err != nil {
		logrus.WithError(err).WithField("line", line).Debug("command failed")
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return err
	}

	if output.HasReply {
		fmt.Fprintln(c.out, output.Reply)
		return nil
	}

	if output.Command != nil && output.Command.Type == league.CommandWinner {
		fmt.Fprintln(c.out, NullReply)
	}

	return nil
}

func (c *Console) printPrompt() {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
}
