package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/ladder/internal/ladder"
	"github.com/KirkDiggler/ladder/internal/services/league"
	"github.com/KirkDiggler/ladder/internal/services/messaging"
)

// Response is what the bot sends back for a ladder command
type Response struct {
	Title   string
	Content string
	Color   int

	// Error responses are only shown to the caller
	Error bool

	// Pyramid responses carry a refresh button
	Pyramid bool
}

// codeBlock keeps the pyramid monospaced
func codeBlock(text string) string {
	return "```\n" + text + "\n```"
}

func pyramidResponse(rendered string) *Response {
	if rendered == ladder.NoPlayersMessage {
		return &Response{Content: rendered, Pyramid: true}
	}
	return &Response{Content: codeBlock(rendered), Pyramid: true}
}

// classifyError maps a rejected command to a message category
func classifyError(err error) messaging.ErrorType {
	var (
		invalidName *ladder.InvalidNameError
		duplicate   *ladder.DuplicatePlayerError
		notFound    *ladder.PlayerNotFoundError
		invalid     *ladder.InvalidMatchError
		unknown     *league.UnknownCommandError
		leagueName  *InvalidLeagueNameError
	)

	switch {
	case errors.As(err, &invalidName):
		return messaging.ErrorTypeInvalidName
	case errors.As(err, &duplicate):
		return messaging.ErrorTypeDuplicate
	case errors.As(err, &notFound):
		return messaging.ErrorTypeNotFound
	case errors.As(err, &invalid):
		return messaging.ErrorTypeInvalidMatch
	case errors.As(err, &unknown):
		return messaging.ErrorTypeUnknownCommand
	case errors.As(err, &leagueName):
		return messaging.ErrorTypeInvalidLeagueName
	default:
		return messaging.ErrorTypeStorage
	}
}

func refreshButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Refresh",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonRefreshPyramid,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🔄",
			},
		},
	}
}

// respond sends a Response as an interaction reply
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, resp *Response) error {
	switch {
	case resp.Error:
		return RespondWithError(s, i, resp.Title, resp.Content)
	case resp.Pyramid:
		return RespondWithButtons(s, i, resp.Content, refreshButtons())
	case resp.Title != "":
		return RespondWithEmbed(s, i, resp.Title, resp.Content, resp.Color)
	default:
		return RespondWithMessage(s, i, resp.Content)
	}
}

func championText(name string) string {
	return fmt.Sprintf("👑 **%s** holds the top of the pyramid", name)
}
