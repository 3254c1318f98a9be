package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "scores.yaml"))
	_, err := s.Get("highscore")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	s := NewStore(path)

	if err := s.SetInt("highscore", 4521); err != nil {
		t.Fatalf("SetInt failed: %v", err)
	}
	if err := s.Set("last_run", "abc"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh store over the same file sees both values
	reopened := NewStore(path)
	n, err := reopened.GetInt("highscore")
	if err != nil || n != 4521 {
		t.Errorf("Expected 4521, got %d err=%v", n, err)
	}
	v, err := reopened.Get("last_run")
	if err != nil || v != "abc" {
		t.Errorf("Expected abc, got %q err=%v", v, err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "highscore:") {
		t.Errorf("Expected YAML mapping, got %q", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected temp files cleaned up, got %d entries", len(entries))
	}
}

func TestGetIntParseError(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "scores.yaml"))
	_ = s.Set("highscore", "lots")
	if _, err := s.GetInt("highscore"); err == nil {
		t.Error("Expected parse error")
	}
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("highscore: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	if _, err := s.Get("highscore"); err == nil || errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected decode error, got %v", err)
	}
}
