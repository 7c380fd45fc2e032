package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/gohands/gohands/internal/config"
	. "github.com/gohands/gohands/internal/logging"
	"github.com/gohands/gohands/internal/paths"
)

// FileStore persists settings as a single JSON document, written
// atomically with rotating backups.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given settings.json path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultFileStore returns a store rooted in the configured file store
// directory (<file_store_path>/settings.json).
func DefaultFileStore(cfg *config.Config) (*FileStore, error) {
	path, err := paths.SettingsPath(cfg.FileStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}
	return NewFileStore(path), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted settings. A missing file is a valid state and
// returns (nil, nil).
func (s *FileStore) Load() (*Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var st Settings
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &st, nil
}

// Store writes the settings record, stamping an install id on first save.
func (s *FileStore) Store(st *Settings) error {
	if st.InstallID == "" {
		st.InstallID = uuid.NewString()
	}

	if err := config.BackupAndWriteJSON(s.path, st, config.DefaultBackupCount); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	L_debug("settings: stored", "path", s.path)
	return nil
}
