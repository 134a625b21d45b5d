package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.ManifestFileName != "albums.json" {
		t.Errorf("ManifestFileName = %q, want %q", s.ManifestFileName, "albums.json")
	}
	if s.DuplicatesFileName != "duplicates.txt" {
		t.Errorf("DuplicatesFileName = %q, want %q", s.DuplicatesFileName, "duplicates.txt")
	}
	if s.AlbumlessDirName != "__no_album__" {
		t.Errorf("AlbumlessDirName = %q, want %q", s.AlbumlessDirName, "__no_album__")
	}
	if s.AllowUnicodeNames {
		t.Error("AllowUnicodeNames should default to false")
	}
	if !s.PreserveTimestamps {
		t.Error("PreserveTimestamps should default to true")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.ManifestFileName != "albums.json" {
		t.Errorf("missing config should fall back to defaults, got %q", s.ManifestFileName)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.json")

	s := DefaultSettings()
	s.AllowUnicodeNames = true
	s.AlbumlessDirName = "unsorted"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.AllowUnicodeNames {
		t.Error("AllowUnicodeNames not round-tripped")
	}
	if loaded.AlbumlessDirName != "unsorted" {
		t.Errorf("AlbumlessDirName = %q, want %q", loaded.AlbumlessDirName, "unsorted")
	}
}
