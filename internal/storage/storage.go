package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/trivial-trip-planner/internal/tripapi"
)

// sessionFilePath returns the path of the session file under base.
func sessionFilePath(base string) string {
	return filepath.Join(base, "auth", "session.json")
}

// LoadSession loads the session stored in <base>/auth/session.json. It
// returns nil and no error if no session has been saved.
func LoadSession(base string) (*tripapi.Session, error) {
	path := sessionFilePath(base)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var s tripapi.Session
	if err := json.Unmarshal(data, &s); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return nil, fmt.Errorf("corrupt session file %s (backed up to %s): %w", path, backupPath, err)
	}
	return &s, nil
}

// SaveSession atomically writes the session file.
func SaveSession(base string, s tripapi.Session) error {
	path := sessionFilePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// ClearSession removes the stored session. Clearing when nothing is stored
// is not an error.
func ClearSession(base string) error {
	err := os.Remove(sessionFilePath(base))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage error removing session: %w", err)
	}
	return nil
}
