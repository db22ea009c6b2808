package league

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilePermissions is the mode used for newly written league files
const FilePermissions = 0644

// FileConfig holds configuration for the file league repository
type FileConfig struct {
	// BaseDir confines every league path to this directory. Empty means
	// paths are used as given, relative to the working directory.
	BaseDir string
}

// fileRepository implements the Repository interface on the local filesystem
type fileRepository struct {
	baseDir string
}

// NewFile creates a new file-backed league repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &fileRepository{
		baseDir: cfg.BaseDir,
	}, nil
}

// SaveLeague writes the rows as JSON, truncating any existing file
func (r *fileRepository) SaveLeague(ctx context.Context, input *SaveLeagueInput) error {
	if input == nil || input.Path == "" {
		return errors.New("input and path cannot be empty")
	}

	data, err := encodeRows(input.Rows)
	if err != nil {
		return err
	}

	path, err := r.resolve(input.Path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write league file: %w", err)
	}

	return nil
}

// LoadLeague reads the rows stored in a JSON file
func (r *fileRepository) LoadLeague(ctx context.Context, input *LoadLeagueInput) (*LoadLeagueOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.New("input and path cannot be empty")
	}

	path, err := r.resolve(input.Path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, input.Path)
		}
		return nil, fmt.Errorf("failed to read league file: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}

	return &LoadLeagueOutput{
		Rows: rows,
	}, nil
}

// resolve maps a league path to a file. With a base directory only local
// paths are accepted: no absolute paths and no ".." escaping it.
func (r *fileRepository) resolve(path string) (string, error) {
	if r.baseDir == "" {
		return path, nil
	}

	if !filepath.IsLocal(path) {
		return "", fmt.Errorf("%w: %s", ErrPathOutsideBaseDir, path)
	}

	return filepath.Join(r.baseDir, path), nil
}
