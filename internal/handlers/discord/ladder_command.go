package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/ladder/internal/services/league"
	"github.com/KirkDiggler/ladder/internal/services/messaging"
)

// LadderCommand handles the /ladder command
type LadderCommand struct {
	BaseCommand
	sessions  *SessionStore
	messaging messaging.Service
}

// LadderCommandConfig holds the dependencies of the ladder command
type LadderCommandConfig struct {
	Sessions         *SessionStore
	MessagingService messaging.Service
}

func stringOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// NewLadderCommand creates a new ladder command handler
func NewLadderCommand(cfg *LadderCommandConfig) (*LadderCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &LadderCommand{
		BaseCommand: BaseCommand{
			Name:        "ladder",
			Description: "Pyramid ladder commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a player to the pyramid",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("name", "Player name, letters and digits only"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "record",
					Description: "Record a win, the winner must be one row below the loser",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("winner", "Player who won"),
						stringOption("loser", "Player who lost"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "print",
					Description: "Show the pyramid",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "winner",
					Description: "Show the champion",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "load",
					Description: "Replace this channel's league with a saved one",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("path", "Saved league name"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "save",
					Description: "Save this channel's league",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("path", "Saved league name"),
					},
				},
			},
		},
		sessions:  cfg.Sessions,
		messaging: cfg.MessagingService,
	}, nil
}

// Handle processes a Discord interaction for the ladder command
func (c *LadderCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	line, err := commandLine(data)
	if err != nil {
		return RespondWithError(s, i, "Error", err.Error())
	}

	resp, err := c.Run(context.Background(), i.ChannelID, line)
	if err != nil {
		logrus.WithError(err).WithField("channel", i.ChannelID).Error("ladder command failed")
		return RespondWithError(s, i, "Error", err.Error())
	}

	return respond(s, i, resp)
}

// HandleRefresh re-renders the pyramid in place
func (c *LadderCommand) HandleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	resp, err := c.Run(context.Background(), i.ChannelID, "print")
	if err != nil {
		return RespondWithError(s, i, "Error", err.Error())
	}

	return UpdateMessage(s, i, resp.Content, refreshButtons())
}

// commandLine turns the slash command options into a command line
func commandLine(data discordgo.ApplicationCommandInteractionData) (string, error) {
	if len(data.Options) == 0 {
		return "", errors.New("missing subcommand")
	}

	sub := data.Options[0]
	values := make(map[string]string, len(sub.Options))
	for _, opt := range sub.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = opt.StringValue()
		}
	}

	switch sub.Name {
	case "add":
		return fmt.Sprintf("add player %s", values["name"]), nil
	case "record":
		return fmt.Sprintf("record win %s %s", values["winner"], values["loser"]), nil
	case "print", "winner":
		return sub.Name, nil
	case "load", "save":
		return fmt.Sprintf("%s %s", sub.Name, values["path"]), nil
	default:
		return "", fmt.Errorf("unknown subcommand: %s", sub.Name)
	}
}

// Run executes a command line on the channel's league and builds the reply
func (c *LadderCommand) Run(ctx context.Context, channelID, line string) (*Response, error) {
	if err := checkLeagueName(line); err != nil {
		logrus.WithField("channel", channelID).WithError(err).Warn("league name rejected")
		return c.errorResponse(ctx, err)
	}

	var resp *Response

	err := c.sessions.With(channelID, func(svc league.Service) error {
		output, err := svc.Execute(ctx, &league.ExecuteInput{Line: line})
		if err != nil {
			logrus.WithError(err).WithField("channel", channelID).Warn("league storage failed")
			resp, err = c.errorResponse(ctx, err)
			return err
		}

		if output.Err != nil {
			resp, err = c.errorResponse(ctx, output.Err)
			return err
		}

		resp, err = c.successResponse(ctx, svc, output)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// checkLeagueName rejects load and save targets that are not plain names,
// channel users must not reach arbitrary files on the host
func checkLeagueName(line string) error {
	cmd, err := league.ParseCommand(line)
	if err != nil {
		return nil
	}

	if cmd.Type != league.CommandLoad && cmd.Type != league.CommandSave {
		return nil
	}

	if !ValidLeagueName(cmd.Path) {
		return &InvalidLeagueNameError{Name: cmd.Path}
	}

	return nil
}

func (c *LadderCommand) errorResponse(ctx context.Context, cause error) (*Response, error) {
	msg, err := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: classifyError(cause),
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Title:   msg.Title,
		Content: cause.Error(),
		Color:   colorError,
		Error:   true,
	}, nil
}

func (c *LadderCommand) successResponse(ctx context.Context, svc league.Service, output *league.ExecuteOutput) (*Response, error) {
	cmd := output.Command

	switch cmd.Type {
	case league.CommandAddPlayer:
		snapshot := svc.Snapshot(ctx)
		for _, player := range snapshot.Players {
			if player.Name != cmd.Player {
				continue
			}

			msg, err := c.messaging.GetPlayerAddedMessage(ctx, &messaging.GetPlayerAddedMessageInput{
				PlayerName: player.Name,
				Position:   player.Position,
			})
			if err != nil {
				return nil, err
			}
			return &Response{Title: "Player Added", Content: msg.Message, Color: colorSuccess}, nil
		}
		return nil, fmt.Errorf("player %s missing after add", cmd.Player)

	case league.CommandRecordWin:
		snapshot := svc.Snapshot(ctx)
		msg, err := c.messaging.GetMatchResultMessage(ctx, &messaging.GetMatchResultMessageInput{
			Winner:      cmd.Winner,
			Loser:       cmd.Loser,
			NewChampion: snapshot.Champion == cmd.Winner,
		})
		if err != nil {
			return nil, err
		}

		color := colorSuccess
		if msg.Tone == messaging.ToneCelebration {
			color = colorChamp
		}
		return &Response{Title: "Match Recorded", Content: msg.Message, Color: color}, nil

	case league.CommandPrint:
		return pyramidResponse(output.Reply), nil

	case league.CommandWinner:
		if !output.HasReply {
			return &Response{Content: "No champion yet"}, nil
		}
		return &Response{Title: "Champion", Content: championText(output.Reply), Color: colorChamp}, nil

	case league.CommandLoad:
		return &Response{Content: fmt.Sprintf("Loaded league `%s`", cmd.Path)}, nil

	case league.CommandSave:
		return &Response{Content: fmt.Sprintf("Saved league `%s`", cmd.Path)}, nil

	default:
		return &Response{Content: codeBlock(output.Reply)}, nil
	}
}
