package messaging

import (
	"context"
	"testing"

	diceMocks "github.com/KirkDiggler/ladder/internal/dice/mocks"
	"github.com/KirkDiggler/ladder/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	service, err := NewService(&ServiceConfig{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.service = service
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestPlayerAddedToTop() {
	output, err := s.service.GetPlayerAddedMessage(s.ctx, &GetPlayerAddedMessageInput{
		PlayerName: "Player1",
		Position:   models.Position{Row: 0, Slot: 0},
	})
	s.Require().NoError(err)
	s.Equal(ToneCelebration, output.Tone)
	s.Contains(output.Message, "Player1")
}

func (s *MessagingServiceTestSuite) TestPlayerAddedBelow() {
	s.mockRoller.EXPECT().Roll(3).Return(1)

	output, err := s.service.GetPlayerAddedMessage(s.ctx, &GetPlayerAddedMessageInput{
		PlayerName: "Player4",
		Position:   models.Position{Row: 2, Slot: 0},
	})
	s.Require().NoError(err)
	s.Equal("Player4 joins the pyramid on row 3. Start climbing!", output.Message)
}

func (s *MessagingServiceTestSuite) TestMatchResult() {
	s.mockRoller.EXPECT().Roll(3).Return(2)

	output, err := s.service.GetMatchResultMessage(s.ctx, &GetMatchResultMessageInput{
		Winner: "Player4",
		Loser:  "Player2",
	})
	s.Require().NoError(err)
	s.Equal("Player4 climbs past Player2!", output.Message)
	s.Equal(ToneNeutral, output.Tone)
}

func (s *MessagingServiceTestSuite) TestNewChampion() {
	s.mockRoller.EXPECT().Roll(2).Return(1)

	output, err := s.service.GetMatchResultMessage(s.ctx, &GetMatchResultMessageInput{
		Winner:      "Player2",
		Loser:       "Player1",
		NewChampion: true,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Player2 dethrones Player1")
	s.Equal(ToneCelebration, output.Tone)
}

func (s *MessagingServiceTestSuite) TestErrorTitles() {
	testCases := map[ErrorType]string{
		ErrorTypeInvalidName:       "Invalid Name",
		ErrorTypeInvalidMatch:      "Invalid Match",
		ErrorTypeUnknownCommand:    "Unknown Command",
		ErrorTypeStorage:           "Storage Error",
		ErrorTypeInvalidLeagueName: "Invalid League Name",
		ErrorType("other"):         "Error",
	}

	for errorType, title := range testCases {
		output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: errorType})
		s.Require().NoError(err)
		s.Equal(title, output.Title)
	}
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetMatchResultMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestNilConfig() {
	_, err := NewService(nil)
	s.Error(err)
}
