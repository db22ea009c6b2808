package messaging

import (
	"github.com/KirkDiggler/ladder/internal/dice"
	"github.com/KirkDiggler/ladder/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType categorises rejected commands
type ErrorType string

const (
	ErrorTypeInvalidName    ErrorType = "invalid_name"
	ErrorTypeDuplicate      ErrorType = "duplicate_player"
	ErrorTypeNotFound       ErrorType = "player_not_found"
	ErrorTypeInvalidMatch   ErrorType = "invalid_match"
	ErrorTypeUnknownCommand ErrorType = "unknown_command"
	ErrorTypeStorage        ErrorType = "storage"

	ErrorTypeInvalidLeagueName ErrorType = "invalid_league_name"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Roller picks among message variants, a seeded roller is used when nil
	Roller dice.Roller
}

// GetPlayerAddedMessageInput contains parameters for a player added message
type GetPlayerAddedMessageInput struct {
	PlayerName string

	// Position is where the player was placed
	Position models.Position
}

// GetPlayerAddedMessageOutput contains the generated message
type GetPlayerAddedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetMatchResultMessageInput contains parameters for a match result message
type GetMatchResultMessageInput struct {
	Winner string
	Loser  string

	// NewChampion is set when the winner took row 0
	NewChampion bool
}

// GetMatchResultMessageOutput contains the generated message
type GetMatchResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the error title
type GetErrorMessageOutput struct {
	Title string
}
