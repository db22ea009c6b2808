package discord

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ladder/internal/services/league"
	leagueMocks "github.com/KirkDiggler/ladder/internal/services/league/mocks"
)

func TestSessionStoreCreatesOncePerChannel(t *testing.T) {
	ctrl := gomock.NewController(t)

	created := 0
	store, err := NewSessionStore(func() (league.Service, error) {
		created++
		return leagueMocks.NewMockService(ctrl), nil
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			channel := "even"
			if i%2 == 1 {
				channel = "odd"
			}
			assert.NoError(t, store.With(channel, func(league.Service) error { return nil }))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2, created)
	assert.Equal(t, 2, store.Len())
}

func TestSessionStoreFactoryError(t *testing.T) {
	repoErr := errors.New("factory failed")
	store, err := NewSessionStore(func() (league.Service, error) {
		return nil, repoErr
	})
	require.NoError(t, err)

	err = store.With("channel", func(league.Service) error { return nil })
	assert.ErrorIs(t, err, repoErr)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreConcurrentCommands(t *testing.T) {
	store, err := NewSessionStore(func() (league.Service, error) {
		return league.NewSession(&league.Config{Repository: nopRepository{}})
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.With("channel", func(svc league.Service) error {
				_, err := svc.Execute(context.Background(), &league.ExecuteInput{Line: "add player P" + string(rune('A'+i))})
				return err
			})
		}(i)
	}
	wg.Wait()

	_ = store.With("channel", func(svc league.Service) error {
		assert.Len(t, svc.Snapshot(context.Background()).Players, 10)
		return nil
	})
}

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore(nil)
	assert.Error(t, err)
}
