package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/Tiliavir/trivial-trip-planner/internal/storage"
	"github.com/Tiliavir/trivial-trip-planner/internal/tripapi"
)

func TestLoadSessionNotExist(t *testing.T) {
	s, err := storage.LoadSession(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSession on missing file: %v", err)
	}
	if s != nil {
		t.Errorf("LoadSession = %+v, want nil", s)
	}
}

func TestSaveSessionAndLoadSession(t *testing.T) {
	base := t.TempDir()
	in := tripapi.Session{UserID: 42, Token: &oauth2.Token{AccessToken: "abc"}}

	if err := storage.SaveSession(base, in); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := storage.LoadSession(base)
	if err != nil {
		t.Fatalf("LoadSession after save: %v", err)
	}
	if got == nil {
		t.Fatal("LoadSession = nil after save")
	}
	if got.UserID != 42 {
		t.Errorf("UserID = %d, want 42", got.UserID)
	}
	if got.Token == nil || got.Token.AccessToken != "abc" {
		t.Errorf("Token = %+v, want access token abc", got.Token)
	}

	// No temp file may be left behind.
	if _, err := os.Stat(filepath.Join(base, "auth", "session.json.tmp")); !os.IsNotExist(err) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestLoadSessionCorrupt(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "auth")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "session.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.LoadSession(base); err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}

	// Backup file should exist.
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Errorf("backup file not found: %v", err)
	}
}

func TestClearSession(t *testing.T) {
	base := t.TempDir()
	if err := storage.ClearSession(base); err != nil {
		t.Fatalf("ClearSession with nothing stored: %v", err)
	}

	if err := storage.SaveSession(base, tripapi.Session{UserID: 1}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := storage.ClearSession(base); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	s, err := storage.LoadSession(base)
	if err != nil || s != nil {
		t.Errorf("LoadSession after clear = %+v, %v; want nil, nil", s, err)
	}
}

func TestSessionFileLayout(t *testing.T) {
	base := t.TempDir()
	in := tripapi.Session{UserID: 7, Token: &oauth2.Token{AccessToken: "raw-token"}}
	if err := storage.SaveSession(base, in); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(base, "auth", "session.json"))
	if err != nil {
		t.Fatalf("reading session file: %v", err)
	}
	for _, key := range []string{`"user_id": 7`, `"access_token": "raw-token"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("session file missing %s:\n%s", key, data)
		}
	}
}
