package discord

import (
	"errors"
	"testing"
	"time"

	randomMocks "github.com/KirkDiggler/charades/internal/common/random/mocks"
	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/services/game"
	gameMocks "github.com/KirkDiggler/charades/internal/services/game/mocks"
	"github.com/KirkDiggler/charades/internal/services/messaging"
	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/KirkDiggler/charades/internal/wordbank"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CharadesCommandServiceTestSuite drives the command against a mocked game
// service, for states the real service only reaches under races or outages
type CharadesCommandServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockGameService *gameMocks.MockService
	mockRandom      *randomMocks.MockRandom
	session         *fakeSession
	command         *CharadesCommand
}

func (s *CharadesCommandServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.ctrl)
	s.mockRandom = randomMocks.NewMockRandom(s.ctrl)
	s.mockRandom.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	s.session = newFakeSession()

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: s.mockRandom})
	s.Require().NoError(err)

	s.command, err = NewCharadesCommand(&CharadesCommandConfig{
		GameService:       s.mockGameService,
		MessagingService:  messagingSvc,
		Access:            NewAccess(nil, []string{testAdminID}),
		CountdownInterval: 5 * time.Millisecond,
	})
	s.Require().NoError(err)
}

func (s *CharadesCommandServiceTestSuite) TearDownTest() {
	s.command.Close()
	s.ctrl.Finish()
}

func TestCharadesCommandServiceSuite(t *testing.T) {
	suite.Run(t, new(CharadesCommandServiceTestSuite))
}

func (s *CharadesCommandServiceTestSuite) run(userID, sub string) string {
	err := s.command.Handle(s.session, interaction(testChannelID, userID, sub))
	s.Require().NoError(err)
	text, _ := s.session.lastResponse()
	return text
}

// sessionWith builds a real session holding the given players
func (s *CharadesCommandServiceTestSuite) sessionWith(players ...string) *game.Session {
	session, err := game.NewSession(&game.SessionConfig{
		ID:        "game-1",
		ChannelID: testChannelID,
		Catalog:   tasks.Default(),
		Bank:      wordbank.Bank{1: {{Theme: "Fruit", Word: "apple"}}},
		Random:    s.mockRandom,
	})
	s.Require().NoError(err)

	for _, p := range players {
		_, err := session.Join(&game.JoinInput{PlayerID: "u-" + p, Handle: p, Name: p})
		s.Require().NoError(err)
	}
	return session
}

func (s *CharadesCommandServiceTestSuite) expectNoTurn() {
	s.mockGameService.EXPECT().
		CurrentTurn(gomock.Any(), &game.CurrentTurnInput{ChannelID: testChannelID}).
		Return(nil, game.ErrNoTurnAssigned)
}

func (s *CharadesCommandServiceTestSuite) TestWhoIsNext_DealsTurnWhenNoneIsWaiting() {
	s.expectNoTurn()
	s.mockGameService.EXPECT().
		GetGame(gomock.Any(), &game.GetGameInput{ChannelID: testChannelID}).
		Return(&game.GetGameOutput{Session: s.sessionWith("alice", "bob")}, nil)
	s.mockGameService.EXPECT().
		StartTurn(gomock.Any(), &game.StartTurnInput{ChannelID: testChannelID}).
		Return(&game.StartTurnOutput{
			Turn:    &models.TurnContext{PlayerID: "u-bob", PlayerName: "bob"},
			Message: "**Player**: bob",
		}, nil)

	text := s.run("carol", SubcommandWhoIsNext)
	s.Contains(text, "**Player**: bob")
	s.Contains(text, "`/charades go`")
}

func (s *CharadesCommandServiceTestSuite) TestWhoIsNext_WaitsForPlayers() {
	s.expectNoTurn()
	s.mockGameService.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(&game.GetGameOutput{Session: s.sessionWith("alice")}, nil)

	text := s.run("alice", SubcommandWhoIsNext)
	s.Contains(text, game.ErrNoTurnAssigned.Error())
}

func (s *CharadesCommandServiceTestSuite) TestWhoIsNext_ExhaustedBankEndsGame() {
	s.expectNoTurn()
	s.mockGameService.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(&game.GetGameOutput{Session: s.sessionWith("alice", "bob")}, nil)
	s.mockGameService.EXPECT().
		StartTurn(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrContentExhausted)
	s.mockGameService.EXPECT().
		EndGame(gomock.Any(), &game.EndGameInput{ChannelID: testChannelID}).
		Return(&game.EndGameOutput{
			Result:  &models.GameResult{ID: "game-1"},
			Message: "Standings:\nalice  ----  1\nbob  ----  0",
		}, nil)

	text := s.run("alice", SubcommandWhoIsNext)
	s.Equal(game.ErrContentExhausted.Error(), text)

	messages := s.session.channel(testChannelID)
	s.Require().Len(messages, 1)
	s.Equal("Game over! Every word has been played.\nStandings:\nalice  ----  1\nbob  ----  0", messages[0])
}

func (s *CharadesCommandServiceTestSuite) TestExit_ArchiveFailureStillShowsResult() {
	s.mockGameService.EXPECT().
		EndGame(gomock.Any(), gomock.Any()).
		Return(&game.EndGameOutput{
			Result:  &models.GameResult{ID: "game-1"},
			Message: "Standings:\nalice  ----  2",
		}, errors.New("failed to archive game: redis down"))

	text := s.run("admin", SubcommandExit)
	s.Equal("Game over!\nStandings:\nalice  ----  2", text)
}

func (s *CharadesCommandServiceTestSuite) TestHistory_ArchiveUnavailable() {
	s.mockGameService.EXPECT().
		ListResults(gomock.Any(), &game.ListResultsInput{ChannelID: testChannelID}).
		Return(nil, errors.New("failed to list results: redis down"))

	text := s.run("alice", SubcommandHistory)
	s.NotContains(text, "redis")
	s.Contains(text, "Something went wrong.")

	_, ephemeral := s.session.lastResponse()
	s.True(ephemeral)
}
