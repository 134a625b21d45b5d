package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// ManifestFileName is the name of the album manifest inside the
	// manifest directory. Flickr exports always call it "albums.json".
	ManifestFileName string `json:"manifest_file_name"`

	// DuplicatesFileName is the report file listing photos shared by two
	// or more albums, written into the output directory.
	DuplicatesFileName string `json:"duplicates_file_name"`

	// AlbumlessDirName is the reserved directory name that collects photos
	// matching no album.
	AlbumlessDirName string `json:"albumless_dir_name"`

	// AllowUnicodeNames keeps non-ASCII letters in album directory names.
	// When false, titles are reduced to 7-bit ASCII slugs.
	AllowUnicodeNames bool `json:"allow_unicode_names"`

	// PreserveTimestamps carries the source file's modification time over
	// to copied photos.
	PreserveTimestamps bool `json:"preserve_timestamps"`

	// DryRun reports what would happen without touching the filesystem.
	// Set from the command line, never persisted.
	DryRun bool `json:"-"`
}

// DefaultSettings returns settings matching a stock Flickr export.
func DefaultSettings() *Settings {
	return &Settings{
		ManifestFileName:   "albums.json",
		DuplicatesFileName: "duplicates.txt",
		AlbumlessDirName:   "__no_album__",
		AllowUnicodeNames:  false,
		PreserveTimestamps: true,
	}
}

// Load reads settings from a JSON file. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
