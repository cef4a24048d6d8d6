package game

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/charades/internal/common/clock/mocks"
	randomMocks "github.com/KirkDiggler/charades/internal/common/random/mocks"
	uuidMocks "github.com/KirkDiggler/charades/internal/common/uuid/mocks"
	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/repositories/results"
	resultsMocks "github.com/KirkDiggler/charades/internal/repositories/results/mocks"
	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/KirkDiggler/charades/internal/wordbank"
	wordbankMocks "github.com/KirkDiggler/charades/internal/wordbank/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLoader      *wordbankMocks.MockLoader
	mockResultsRepo *resultsMocks.MockRepository
	mockRandom      *randomMocks.MockRandom
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         *service
	ctx             context.Context
	testChannelID   string
	testNow         time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLoader = wordbankMocks.NewMockLoader(s.ctrl)
	s.mockResultsRepo = resultsMocks.NewMockRepository(s.ctrl)
	s.mockRandom = randomMocks.NewMockRandom(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.testChannelID = "channel-123"
	s.testNow = time.Date(2025, 4, 5, 20, 0, 0, 0, time.UTC)

	s.mockRandom.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	var err error
	s.service, err = New(&Config{
		Catalog:       tasks.Default(),
		WordLoader:    s.mockLoader,
		ResultsRepo:   s.mockResultsRepo,
		Random:        s.mockRandom,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// createGame starts a game in the test channel with the given players
func (s *ServiceTestSuite) createGame(playerIDs ...string) {
	s.mockLoader.EXPECT().Load().Return(testBank(), nil)
	s.mockUUID.EXPECT().NewUUID().Return("game-1")
	s.mockClock.EXPECT().Now().Return(s.testNow)

	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{ChannelID: s.testChannelID, CreatorID: "admin"})
	s.Require().NoError(err)

	for _, id := range playerIDs {
		_, err := s.service.Join(s.ctx, &JoinInput{ChannelID: s.testChannelID, PlayerID: id, Handle: id, Name: id})
		s.Require().NoError(err)
	}
}

func (s *ServiceTestSuite) TestNew_Validation() {
	valid := func() *Config {
		return &Config{
			Catalog:       tasks.Default(),
			WordLoader:    s.mockLoader,
			ResultsRepo:   s.mockResultsRepo,
			Random:        s.mockRandom,
			Clock:         s.mockClock,
			UUIDGenerator: s.mockUUID,
		}
	}

	testCases := []struct {
		name   string
		mutate func(cfg *Config)
		err    error
	}{
		{name: "catalog", mutate: func(cfg *Config) { cfg.Catalog = nil }, err: ErrNilCatalog},
		{name: "loader", mutate: func(cfg *Config) { cfg.WordLoader = nil }, err: ErrNilWordLoader},
		{name: "results", mutate: func(cfg *Config) { cfg.ResultsRepo = nil }, err: ErrNilResultsRepo},
		{name: "random", mutate: func(cfg *Config) { cfg.Random = nil }, err: ErrNilRandom},
		{name: "clock", mutate: func(cfg *Config) { cfg.Clock = nil }, err: ErrNilClock},
		{name: "uuid", mutate: func(cfg *Config) { cfg.UUIDGenerator = nil }, err: ErrNilUUIDGenerator},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.mutate(cfg)
			_, err := New(cfg)
			s.ErrorIs(err, tc.err)
		})
	}

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	svc, err := New(valid())
	s.Require().NoError(err)
	s.Equal(DefaultMinPlayers, svc.minPlayers)
}

func (s *ServiceTestSuite) TestCreateGame() {
	s.mockLoader.EXPECT().Load().Return(testBank(), nil)
	s.mockUUID.EXPECT().NewUUID().Return("game-1")
	s.mockClock.EXPECT().Now().Return(s.testNow)

	out, err := s.service.CreateGame(s.ctx, &CreateGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal("game-1", out.GameID)
	s.Equal(3, out.Words)

	game, err := s.service.GetGame(s.ctx, &GetGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal("game-1", game.Session.ID())
	s.Equal(s.testChannelID, game.Session.ChannelID())
	s.Equal(models.GameStatusWaiting, game.Session.Status())
}

func (s *ServiceTestSuite) TestCreateGame_AlreadyExists() {
	s.createGame()

	// no second load is attempted
	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameAlreadyExists)
}

func (s *ServiceTestSuite) TestCreateGame_LoadFailureAbortsCreation() {
	loadErr := errors.New("bad yaml")
	s.mockLoader.EXPECT().Load().Return(nil, loadErr)

	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, loadErr)

	_, err = s.service.GetGame(s.ctx, &GetGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *ServiceTestSuite) TestCreateGame_EmptyChannel() {
	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{})
	s.ErrorIs(err, ErrEmptyChannelID)
}

func (s *ServiceTestSuite) TestOperations_NoGame() {
	_, err := s.service.Join(s.ctx, &JoinInput{ChannelID: s.testChannelID, PlayerID: "alice"})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.service.StartTurn(s.ctx, &StartTurnInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.service.EndGame(s.ctx, &EndGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameNotFound)

	open, err := s.service.QuestionOpen(s.ctx, &QuestionOpenInput{ChannelID: s.testChannelID, Question: 1})
	s.Require().NoError(err)
	s.False(open)
}

func (s *ServiceTestSuite) TestGamesAreScopedByChannel() {
	s.createGame("alice", "bob")

	s.mockLoader.EXPECT().Load().Return(testBank(), nil)
	s.mockUUID.EXPECT().NewUUID().Return("game-2")
	s.mockClock.EXPECT().Now().Return(s.testNow)
	_, err := s.service.CreateGame(s.ctx, &CreateGameInput{ChannelID: "other-channel"})
	s.Require().NoError(err)

	board, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{ChannelID: "other-channel"})
	s.Require().NoError(err)
	s.Empty(board.Leaderboard.Entries)
	s.Equal("game-2", board.Leaderboard.GameID)
}

func (s *ServiceTestSuite) TestIssueQuestion_NotEnoughPlayers() {
	s.createGame("alice")

	_, err := s.service.StartTurn(s.ctx, &StartTurnInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	_, err = s.service.IssueQuestion(s.ctx, &IssueQuestionInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *ServiceTestSuite) TestQuestionFlow() {
	s.createGame("alice", "bob")

	turn, err := s.service.StartTurn(s.ctx, &StartTurnInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal("alice", turn.Turn.PlayerID)

	current, err := s.service.CurrentTurn(s.ctx, &CurrentTurnInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(turn.Message, current.Message)

	issued, err := s.service.IssueQuestion(s.ctx, &IssueQuestionInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal("giraffe", issued.Word)

	open, err := s.service.QuestionOpen(s.ctx, &QuestionOpenInput{ChannelID: s.testChannelID, Question: issued.Question})
	s.Require().NoError(err)
	s.True(open)

	answered, err := s.service.MarkAnswered(s.ctx, &MarkAnsweredInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(1, answered.Score)

	_, err = s.service.ExpireQuestion(s.ctx, &ExpireQuestionInput{ChannelID: s.testChannelID, Question: issued.Question})
	s.ErrorIs(err, ErrNoActiveQuestion)

	_, err = s.service.CancelQuestion(s.ctx, &CancelQuestionInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNoActiveQuestion)

	// the answered word is spent
	_, err = s.service.IssueQuestion(s.ctx, &IssueQuestionInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNoTurnAssigned)

	added, err := s.service.AddPoint(s.ctx, &AdjustScoreInput{ChannelID: s.testChannelID, Identifier: "bob", ByHandle: true})
	s.Require().NoError(err)
	s.Equal(1, added.Score)

	removed, err := s.service.RemovePoint(s.ctx, &AdjustScoreInput{ChannelID: s.testChannelID, Identifier: "bob"})
	s.Require().NoError(err)
	s.Equal(0, removed.Score)

	board, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal("Standings:\nalice  ----  1\nbob  ----  0", board.Message)
}

func (s *ServiceTestSuite) TestLeave() {
	s.createGame("alice", "bob", "carol")

	out, err := s.service.Leave(s.ctx, &LeaveInput{ChannelID: s.testChannelID, PlayerID: "carol"})
	s.Require().NoError(err)
	s.Equal("carol left the game", out.Message)

	_, err = s.service.Leave(s.ctx, &LeaveInput{ChannelID: s.testChannelID, PlayerID: "bob"})
	s.ErrorIs(err, ErrInsufficientRoster)
}

func (s *ServiceTestSuite) TestEndGame_ArchivesResult() {
	s.createGame("alice", "bob")
	_, err := s.service.AddPoint(s.ctx, &AdjustScoreInput{ChannelID: s.testChannelID, Identifier: "alice", ByHandle: true})
	s.Require().NoError(err)

	finished := s.testNow.Add(time.Hour)
	s.mockClock.EXPECT().Now().Return(finished)
	s.mockResultsRepo.EXPECT().SaveResult(s.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *results.SaveResultInput) error {
			s.Equal("game-1", input.Result.ID)
			s.Equal(s.testChannelID, input.Result.ChannelID)
			s.Equal(s.testNow, input.Result.StartedAt)
			s.Equal(finished, input.Result.FinishedAt)
			s.Require().Len(input.Result.Standings, 2)
			s.Equal(1, input.Result.Standings[0].Score)
			return nil
		},
	)

	out, err := s.service.EndGame(s.ctx, &EndGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal("Standings:\nalice  ----  1\nbob  ----  0", out.Message)

	_, err = s.service.GetGame(s.ctx, &GetGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *ServiceTestSuite) TestEndGame_ArchiveFailureStillEndsGame() {
	s.createGame("alice", "bob")

	saveErr := errors.New("redis down")
	s.mockClock.EXPECT().Now().Return(s.testNow)
	s.mockResultsRepo.EXPECT().SaveResult(s.ctx, gomock.Any()).Return(saveErr)

	out, err := s.service.EndGame(s.ctx, &EndGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, saveErr)
	s.Require().NotNil(out)
	s.Contains(out.Message, "Standings:")

	_, err = s.service.GetGame(s.ctx, &GetGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *ServiceTestSuite) TestGetHallOfFame() {
	s.mockResultsRepo.EXPECT().GetHallOfFame(s.ctx, &results.GetHallOfFameInput{
		ChannelID: s.testChannelID,
		Limit:     defaultHallOfFameLimit,
	}).Return(&results.GetHallOfFameOutput{
		Entries: []*models.HallOfFameEntry{
			{PlayerID: "bob", PlayerName: "Bob", TotalScore: 12, GamesPlayed: 3},
			{PlayerID: "alice", PlayerName: "Alice", TotalScore: 4, GamesPlayed: 1},
		},
	}, nil)

	out, err := s.service.GetHallOfFame(s.ctx, &GetHallOfFameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)
	s.Equal("Hall of fame:\n1. Bob  ----  12 (3 games)\n2. Alice  ----  4 (1 game)", out.Message)
}

func (s *ServiceTestSuite) TestGetHallOfFame_Empty() {
	s.mockResultsRepo.EXPECT().GetHallOfFame(s.ctx, gomock.Any()).Return(&results.GetHallOfFameOutput{}, nil)

	out, err := s.service.GetHallOfFame(s.ctx, &GetHallOfFameInput{ChannelID: s.testChannelID, Limit: 3})
	s.Require().NoError(err)
	s.Equal("Hall of fame:\nNo finished games yet.", out.Message)
}

func (s *ServiceTestSuite) TestListResults() {
	finished := s.testNow.Add(30 * time.Minute)
	s.mockResultsRepo.EXPECT().ListChannelResults(s.ctx, &results.ListChannelResultsInput{
		ChannelID: s.testChannelID,
		Limit:     defaultHistoryLimit,
	}).Return(&results.ListChannelResultsOutput{
		Results: []*models.GameResult{
			{
				ID:         "game-2",
				ChannelID:  s.testChannelID,
				StartedAt:  s.testNow,
				FinishedAt: finished,
				Turns:      4,
				Standings: []*models.Standing{
					{PlayerID: "alice", PlayerName: "Alice", Score: 1},
					{PlayerID: "bob", PlayerName: "Bob", Score: 3},
				},
			},
			{ID: "game-1", ChannelID: s.testChannelID, FinishedAt: s.testNow, Turns: 1},
		},
	}, nil)

	out, err := s.service.ListResults(s.ctx, &ListResultsInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Len(out.Results, 2)
	s.Equal("Recent games:\n"+
		"`game-2` 2025-04-05 20:30 UTC, 4 turns: Bob 3, Alice 1\n"+
		"`game-1` 2025-04-05 20:00 UTC, 1 turn: no players", out.Message)
}

func (s *ServiceTestSuite) TestListResults_Empty() {
	s.mockResultsRepo.EXPECT().ListChannelResults(s.ctx, gomock.Any()).Return(&results.ListChannelResultsOutput{}, nil)

	out, err := s.service.ListResults(s.ctx, &ListResultsInput{ChannelID: s.testChannelID, Limit: 2})
	s.Require().NoError(err)
	s.Equal("Recent games:\nNo finished games yet.", out.Message)
}

func (s *ServiceTestSuite) TestGetResult() {
	s.mockResultsRepo.EXPECT().GetResult(s.ctx, &results.GetResultInput{GameID: "game-1"}).Return(&models.GameResult{
		ID:         "game-1",
		ChannelID:  s.testChannelID,
		StartedAt:  s.testNow,
		FinishedAt: s.testNow.Add(time.Hour),
		Turns:      6,
		Standings: []*models.Standing{
			{PlayerID: "alice", PlayerName: "Alice", Score: 2},
			{PlayerID: "bob", PlayerName: "Bob", Score: 5},
		},
	}, nil)

	out, err := s.service.GetResult(s.ctx, &GetResultInput{ChannelID: s.testChannelID, GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal("game-1", out.Result.ID)
	s.Equal("Game `game-1`\nPlayed 2025-04-05 20:00 UTC to 2025-04-05 21:00 UTC, 6 turns\n"+
		"Standings:\nAlice  ----  2\nBob  ----  5", out.Message)
}

func (s *ServiceTestSuite) TestGetResult_NotFound() {
	s.Run("unknown id", func() {
		s.mockResultsRepo.EXPECT().GetResult(s.ctx, gomock.Any()).Return(nil, results.ErrResultNotFound)

		_, err := s.service.GetResult(s.ctx, &GetResultInput{ChannelID: s.testChannelID, GameID: "missing"})
		s.ErrorIs(err, ErrResultNotFound)
	})

	s.Run("other channel", func() {
		s.mockResultsRepo.EXPECT().GetResult(s.ctx, gomock.Any()).Return(&models.GameResult{
			ID:        "game-9",
			ChannelID: "channel-other",
		}, nil)

		_, err := s.service.GetResult(s.ctx, &GetResultInput{ChannelID: s.testChannelID, GameID: "game-9"})
		s.ErrorIs(err, ErrResultNotFound)
	})

	s.Run("repository failure", func() {
		repoErr := errors.New("redis down")
		s.mockResultsRepo.EXPECT().GetResult(s.ctx, gomock.Any()).Return(nil, repoErr)

		_, err := s.service.GetResult(s.ctx, &GetResultInput{ChannelID: s.testChannelID, GameID: "game-1"})
		s.ErrorIs(err, repoErr)
	})

	s.Run("empty id", func() {
		_, err := s.service.GetResult(s.ctx, &GetResultInput{ChannelID: s.testChannelID})
		s.ErrorIs(err, ErrResultNotFound)
	})
}

func (s *ServiceTestSuite) TestCreateGame_WithRealLoader() {
	svc, err := New(&Config{
		Catalog:       tasks.Default(),
		WordLoader:    wordbank.Embedded(),
		ResultsRepo:   s.mockResultsRepo,
		Random:        s.mockRandom,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.mockUUID.EXPECT().NewUUID().Return("game-embedded")
	s.mockClock.EXPECT().Now().Return(s.testNow)

	out, err := svc.CreateGame(s.ctx, &CreateGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Positive(out.Words)
}
