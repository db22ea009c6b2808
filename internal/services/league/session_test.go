package league

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/ladder/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/ladder/internal/common/uuid/mocks"
	"github.com/KirkDiggler/ladder/internal/models"
	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
	repoMocks "github.com/KirkDiggler/ladder/internal/repositories/league/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockRepository
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	session   *Session
	ctx       context.Context

	testTime      time.Time
	testSessionID string
}

func (s *SessionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	session, err := NewSession(&Config{
		Repository:    s.mockRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

// send runs a line and returns the reply, nil for no reply
func (s *SessionTestSuite) send(line string) *string {
	output, err := s.session.Execute(s.ctx, &ExecuteInput{Line: line})
	s.Require().NoError(err)

	if !output.HasReply {
		return nil
	}
	return &output.Reply
}

func (s *SessionTestSuite) requireReply(expected string, line string) {
	reply := s.send(line)
	s.Require().NotNil(reply, "expected a reply to %q", line)
	s.Equal(expected, *reply)
}

func (s *SessionTestSuite) TestPrintsEmptyGameState() {
	s.requireReply("No players yet", "print")
}

func (s *SessionTestSuite) TestWinnerOnEmptyGameIsNull() {
	s.Nil(s.send("winner"))
}

func (s *SessionTestSuite) TestPrintsOnePlayerGameState() {
	s.Nil(s.send("add player PlayerName"))

	s.requireReply("-------------------\n|   PlayerName    |\n-------------------", "print")
}

func (s *SessionTestSuite) TestPrintsThreePlayerGameState() {
	s.send("add player Player1")
	s.send("add player Player2")
	s.send("add player Player3")

	s.requireReply("          -------------------\n"+
		"          |     Player1     |\n"+
		"          -------------------\n"+
		"------------------- -------------------\n"+
		"|     Player2     | |     Player3     |\n"+
		"------------------- -------------------", "print")
}

func (s *SessionTestSuite) TestPrintsErrorOnInvalidPlayerName() {
	s.requireReply("Player name ! contains invalid characters", "add player !")
	s.requireReply("No players yet", "print")
}

func (s *SessionTestSuite) TestDuplicatePlayer() {
	s.send("add player Player1")
	s.requireReply("Player 'Player1' is already in the game", "add player Player1")
}

func (s *SessionTestSuite) TestExecutesGameWin() {
	s.send("add player Player1")
	s.send("add player Player2")

	s.requireReply("Player1", "winner")
	s.Nil(s.send("record win Player2 Player1"))
	s.requireReply("Player2", "winner")
}

func (s *SessionTestSuite) TestWinnerAboveLoser() {
	s.send("add player Player1")
	s.send("add player Player2")

	s.requireReply("Cannot record match result. Winner 'Player1' must be one row below loser 'Player2'", "record win Player1 Player2")
}

func (s *SessionTestSuite) TestWinnerTwoRowsBelowLoser() {
	s.send("add player Player1")
	s.send("add player Player2")
	s.send("add player Player3")
	s.send("add player Player4")

	s.requireReply("Cannot record match result. Winner 'Player4' must be one row below loser 'Player1'", "record win Player4 Player1")
}

func (s *SessionTestSuite) TestRecordWinWithNonExistentPlayer() {
	s.send("add player Player1")

	s.requireReply("Player 'Player2' is not in the game", "record win Player2 Player1")
}

func (s *SessionTestSuite) TestWinnerAndLoserAreTheSamePlayer() {
	s.send("add player Player1")

	s.requireReply("Cannot record match result. Winner 'Player1' must be one row below loser 'Player1'", "record win Player1 Player1")
}

func (s *SessionTestSuite) TestUnknownCommand() {
	s.requireReply(`Unknown command "Hello World!"`, "Hello World!")

	// the session keeps accepting commands
	s.Nil(s.send("add player Player1"))
	s.requireReply("Player1", "winner")
}

func (s *SessionTestSuite) TestHelp() {
	reply := s.send("help")
	s.Require().NotNil(reply)
	s.Contains(*reply, "record win <winner> <loser>")
}

func (s *SessionTestSuite) TestLoadsExistingLeague() {
	s.mockRepo.EXPECT().
		LoadLeague(gomock.Any(), &leagueRepo.LoadLeagueInput{Path: "fileName.fileType"}).
		Return(&leagueRepo.LoadLeagueOutput{
			Rows: [][]string{{"Player1"}, {"Player2", "Player3"}},
		}, nil)

	s.Nil(s.send("load fileName.fileType"))

	s.requireReply("          -------------------\n"+
		"          |     Player1     |\n"+
		"          -------------------\n"+
		"------------------- -------------------\n"+
		"|     Player2     | |     Player3     |\n"+
		"------------------- -------------------", "print")
}

func (s *SessionTestSuite) TestLoadReplacesLeague() {
	s.send("add player Someone")

	s.mockRepo.EXPECT().
		LoadLeague(gomock.Any(), gomock.Any()).
		Return(&leagueRepo.LoadLeagueOutput{Rows: [][]string{{"Player1"}}}, nil)

	s.send("load league.json")

	s.requireReply("Player1", "winner")
	s.requireReply("Player 'Someone' is not in the game", "record win Someone Player1")
}

func (s *SessionTestSuite) TestSavesLeague() {
	s.send("add player Player1")
	s.send("add player Player2")
	s.send("add player Player3")

	s.mockRepo.EXPECT().
		SaveLeague(gomock.Any(), &leagueRepo.SaveLeagueInput{
			Path: "fileName.fileType",
			Rows: [][]string{{"Player1"}, {"Player2", "Player3"}},
		}).
		Return(nil).
		Times(1)

	s.Nil(s.send("save fileName.fileType"))
}

func (s *SessionTestSuite) TestLoadFailureIsReturnedAndKeepsLeague() {
	s.send("add player Player1")

	s.mockRepo.EXPECT().
		LoadLeague(gomock.Any(), gomock.Any()).
		Return(nil, leagueRepo.ErrLeagueNotFound)

	_, err := s.session.Execute(s.ctx, &ExecuteInput{Line: "load missing.json"})
	s.Require().Error(err)
	s.True(errors.Is(err, leagueRepo.ErrLeagueNotFound))
	s.Contains(err.Error(), "load missing.json")

	s.requireReply("Player1", "winner")
}

func (s *SessionTestSuite) TestLoadMalformedRowsIsReturned() {
	s.mockRepo.EXPECT().
		LoadLeague(gomock.Any(), gomock.Any()).
		Return(&leagueRepo.LoadLeagueOutput{Rows: [][]string{{"P1", "P2"}}}, nil)

	_, err := s.session.Execute(s.ctx, &ExecuteInput{Line: "load bad.json"})
	s.Require().Error(err)
	s.requireReply("No players yet", "print")
}

func (s *SessionTestSuite) TestSaveFailureIsReturned() {
	s.mockRepo.EXPECT().
		SaveLeague(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	_, err := s.session.Execute(s.ctx, &ExecuteInput{Line: "save league.json"})
	s.Require().Error(err)
	s.Contains(err.Error(), "disk full")
}

func (s *SessionTestSuite) TestSnapshot() {
	s.send("add player Player1")
	s.send("add player Player2")
	s.send("record win Player2 Player1")

	snapshot := s.session.Snapshot(s.ctx)

	s.Equal(&models.League{
		SessionID: s.testSessionID,
		Rows:      [][]string{{"Player2"}, {"Player1"}},
		Players: []models.Player{
			{Name: "Player2", Position: models.Position{Row: 0, Slot: 0}},
			{Name: "Player1", Position: models.Position{Row: 1, Slot: 0}},
		},
		Champion:  "Player2",
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}, snapshot)
	s.Equal(s.testSessionID, s.session.ID())
}

func (s *SessionTestSuite) TestExecuteNilInput() {
	_, err := s.session.Execute(s.ctx, nil)
	s.Equal(ErrNilInput, err)
}

func TestNewSessionValidation(t *testing.T) {
	_, err := NewSession(nil)
	if !errors.Is(err, ErrNilConfig) {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}

	_, err = NewSession(&Config{})
	if !errors.Is(err, ErrNilRepository) {
		t.Fatalf("expected ErrNilRepository, got %v", err)
	}
}
