package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
	"github.com/KirkDiggler/ladder/internal/services/league"
)

const (
	storeFile  = "file"
	storeRedis = "redis"
)

// newRepository builds the league repository selected by the flags
func newRepository(cmd *cobra.Command) (leagueRepo.Repository, error) {
	store, _ := cmd.Flags().GetString(flagStore)

	switch store {
	case storeFile:
		dataDir, _ := cmd.Flags().GetString(flagDataDir)
		logrus.WithField("dir", dataDir).Debug("using file store")
		return leagueRepo.NewFile(&leagueRepo.FileConfig{
			BaseDir: dataDir,
		})

	case storeRedis:
		addr, _ := cmd.Flags().GetString(flagRedisAddr)
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		logrus.WithField("addr", addr).Debug("using redis store")
		return leagueRepo.NewRedis(&leagueRepo.Config{
			RedisClient: client,
			KeyPrefix:   getEnv("REDIS_KEY_PREFIX", ""),
		})

	default:
		return nil, fmt.Errorf("unknown store %q, use %s or %s", store, storeFile, storeRedis)
	}
}

// ensureDataDir gives the file store a base directory when none was set,
// so remote users only ever reach files under it
func ensureDataDir(cmd *cobra.Command) error {
	store, _ := cmd.Flags().GetString(flagStore)
	if store != storeFile {
		return nil
	}

	dataDir, _ := cmd.Flags().GetString(flagDataDir)
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, "ladder")
		if err := cmd.Flags().Set(flagDataDir, dataDir); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	logrus.WithField("dir", dataDir).Debug("league files confined to data directory")
	return nil
}

// newSessionFactory returns a factory for sessions sharing one repository
func newSessionFactory(cmd *cobra.Command) (func() (league.Service, error), error) {
	repo, err := newRepository(cmd)
	if err != nil {
		return nil, err
	}

	return func() (league.Service, error) {
		return league.NewSession(&league.Config{
			Repository: repo,
		})
	}, nil
}

// withTimeout bounds one-off store calls made by commands such as list
func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
