package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ladder/internal/dice"
)

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	roller := config.Roller
	if roller == nil {
		roller = dice.New(&dice.Config{})
	}

	return &service{
		roller: roller,
	}, nil
}

// GetPlayerAddedMessage returns a message for when a player joins the pyramid
func (s *service) GetPlayerAddedMessage(ctx context.Context, input *GetPlayerAddedMessageInput) (*GetPlayerAddedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Position.Row == 0 {
		return &GetPlayerAddedMessageOutput{
			Message: fmt.Sprintf("%s is the first to arrive and takes the top of the pyramid!", input.PlayerName),
			Tone:    ToneCelebration,
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s joins the pyramid on row %d. Start climbing!", input.PlayerName, input.Position.Row+1),
		fmt.Sprintf("A new challenger appears! %s takes a spot on row %d.", input.PlayerName, input.Position.Row+1),
		fmt.Sprintf("Welcome %s! Row %d is your home, for now.", input.PlayerName, input.Position.Row+1),
	}

	return &GetPlayerAddedMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneFunny,
	}, nil
}

// GetMatchResultMessage returns a message announcing a recorded win
func (s *service) GetMatchResultMessage(ctx context.Context, input *GetMatchResultMessageInput) (*GetMatchResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.NewChampion {
		messages := []string{
			fmt.Sprintf("👑 %s dethrones %s and is the new champion!", input.Winner, input.Loser),
			fmt.Sprintf("👑 All hail %s! %s has been knocked off the top.", input.Winner, input.Loser),
		}

		return &GetMatchResultMessageOutput{
			Message: s.pick(messages),
			Tone:    ToneCelebration,
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s beats %s and moves up a row.", input.Winner, input.Loser),
		fmt.Sprintf("%s climbs past %s!", input.Winner, input.Loser),
		fmt.Sprintf("%s swaps places with %s. One step closer to the top.", input.Winner, input.Loser),
	}

	return &GetMatchResultMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneNeutral,
	}, nil
}

// GetErrorMessage returns a title for a rejected command
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	switch input.ErrorType {
	case ErrorTypeInvalidName:
		title = "Invalid Name"
	case ErrorTypeDuplicate:
		title = "Already Playing"
	case ErrorTypeNotFound:
		title = "Unknown Player"
	case ErrorTypeInvalidMatch:
		title = "Invalid Match"
	case ErrorTypeUnknownCommand:
		title = "Unknown Command"
	case ErrorTypeStorage:
		title = "Storage Error"
	case ErrorTypeInvalidLeagueName:
		title = "Invalid League Name"
	default:
		title = "Error"
	}

	return &GetErrorMessageOutput{
		Title: title,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.roller.Roll(len(messages))-1]
}
