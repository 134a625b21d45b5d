package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/farrago/flickr-backup/internal/model"
)

// jsonManifest mirrors the JSON layout of albums.json.
type jsonManifest struct {
	Albums []jsonAlbum `json:"albums"`
}

type jsonAlbum struct {
	Title  string   `json:"title"`
	Photos []string `json:"photos"`
}

// Manifest is an ordered, read-only collection of album records.
type Manifest struct {
	albums  []*model.Album
	byTitle map[string]*model.Album
}

// Load reads and parses the manifest at path. The allowUnicode flag controls
// how album titles are normalized into directory slugs.
//
// Returns an error if the file cannot be read or is not valid JSON. Nothing
// on disk has been touched when Load fails.
func Load(path string, allowUnicode bool) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest %s: %w", path, err)
	}

	var raw jsonManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed manifest %s: %w", path, err)
	}

	m := &Manifest{
		albums:  make([]*model.Album, 0, len(raw.Albums)),
		byTitle: make(map[string]*model.Album, len(raw.Albums)),
	}
	for _, entry := range raw.Albums {
		album := model.NewAlbum(entry.Title, entry.Photos, allowUnicode)
		m.albums = append(m.albums, album)
		m.byTitle[album.Title] = album
	}
	return m, nil
}

// Len returns the number of album records.
func (m *Manifest) Len() int {
	return len(m.albums)
}

// Albums returns the records in manifest order. The returned slice is a copy;
// the records themselves are shared and must not be mutated.
func (m *Manifest) Albums() []*model.Album {
	return append([]*model.Album(nil), m.albums...)
}

// Get looks up a record by its display title.
func (m *Manifest) Get(title string) (*model.Album, bool) {
	album, ok := m.byTitle[title]
	return album, ok
}

// Titles returns the display titles in manifest order.
func (m *Manifest) Titles() []string {
	titles := make([]string, len(m.albums))
	for i, album := range m.albums {
		titles[i] = album.Title
	}
	return titles
}
