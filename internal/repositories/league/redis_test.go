package league

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   *redisRepository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveStoresJSON() {
	err := s.repo.SaveLeague(s.ctx, &SaveLeagueInput{
		Path: "fileName.fileType",
		Rows: [][]string{{"Player1"}, {"Player2", "Player3"}},
	})
	s.Require().NoError(err)

	stored, err := s.mr.Get("league:fileName.fileType")
	s.Require().NoError(err)
	s.Equal(`[["Player1"],["Player2","Player3"]]`, stored)
}

func (s *RedisRepositoryTestSuite) TestLoadRoundTrip() {
	rows := [][]string{{"Player2"}, {"Player1", "Player3"}}

	s.Require().NoError(s.repo.SaveLeague(s.ctx, &SaveLeagueInput{Path: "weekly", Rows: rows}))

	output, err := s.repo.LoadLeague(s.ctx, &LoadLeagueInput{Path: "weekly"})
	s.Require().NoError(err)
	s.Equal(rows, output.Rows)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	s.Require().NoError(s.repo.SaveLeague(s.ctx, &SaveLeagueInput{Path: "weekly", Rows: [][]string{{"A"}, {"B"}}}))
	s.Require().NoError(s.repo.SaveLeague(s.ctx, &SaveLeagueInput{Path: "weekly", Rows: [][]string{{"C"}}}))

	output, err := s.repo.LoadLeague(s.ctx, &LoadLeagueInput{Path: "weekly"})
	s.Require().NoError(err)
	s.Equal([][]string{{"C"}}, output.Rows)
}

func (s *RedisRepositoryTestSuite) TestLoadMissing() {
	_, err := s.repo.LoadLeague(s.ctx, &LoadLeagueInput{Path: "missing"})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrLeagueNotFound))
}

func (s *RedisRepositoryTestSuite) TestLoadMalformed() {
	s.Require().NoError(s.mr.Set("league:broken", "not json"))

	_, err := s.repo.LoadLeague(s.ctx, &LoadLeagueInput{Path: "broken"})
	s.Require().Error(err)
	s.False(errors.Is(err, ErrLeagueNotFound))
}

func (s *RedisRepositoryTestSuite) TestListLeagues() {
	for _, path := range []string{"weekly", "alltime", "monthly"} {
		s.Require().NoError(s.repo.SaveLeague(s.ctx, &SaveLeagueInput{Path: path, Rows: [][]string{{"P1"}}}))
	}
	// saving twice does not duplicate
	s.Require().NoError(s.repo.SaveLeague(s.ctx, &SaveLeagueInput{Path: "weekly"}))

	output, err := s.repo.ListLeagues(s.ctx, &ListLeaguesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"alltime", "monthly", "weekly"}, output.Paths)
}

func (s *RedisRepositoryTestSuite) TestCustomKeyPrefix() {
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		KeyPrefix:   "ladder:",
	})
	s.Require().NoError(err)

	s.Require().NoError(repo.SaveLeague(s.ctx, &SaveLeagueInput{Path: "weekly", Rows: [][]string{{"P1"}}}))
	s.True(s.mr.Exists("ladder:weekly"))
	s.False(s.mr.Exists("league:weekly"))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}
