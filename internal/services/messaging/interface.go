package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ladder/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPlayerAddedMessage returns a message for when a player joins the pyramid
	GetPlayerAddedMessage(ctx context.Context, input *GetPlayerAddedMessageInput) (*GetPlayerAddedMessageOutput, error)

	// GetMatchResultMessage returns a message announcing a recorded win
	GetMatchResultMessage(ctx context.Context, input *GetMatchResultMessageInput) (*GetMatchResultMessageOutput, error)

	// GetErrorMessage returns a title for a rejected command
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
