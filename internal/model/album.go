package model

import (
	"fmt"

	"github.com/farrago/flickr-backup/internal/naming"
)

// Album represents one album record from a Flickr export manifest.
//
// Album is immutable after construction: the manifest loader builds it once
// and every later stage only reads it. NormalizedTitle is derived from Title
// at construction time and is the directory name the album materializes
// under.
type Album struct {
	// Title is the album display title exactly as it appears in albums.json.
	Title string

	// NormalizedTitle is the filesystem-safe slug derived from Title.
	// It may be empty when the title contains no usable characters.
	NormalizedTitle string

	// PhotoIDs are the opaque Flickr photo identifiers belonging to this
	// album, in manifest order. They are matched against filenames that
	// embed the id between underscores.
	PhotoIDs []string
}

// NewAlbum creates an Album with its NormalizedTitle computed. The photoIDs
// slice is copied so later mutation of the argument cannot leak in.
func NewAlbum(title string, photoIDs []string, allowUnicode bool) *Album {
	return &Album{
		Title:           title,
		NormalizedTitle: naming.Normalize(title, allowUnicode),
		PhotoIDs:        append([]string(nil), photoIDs...),
	}
}

// HasPhotos returns true when the record lists at least one photo id.
func (a *Album) HasPhotos() bool {
	return len(a.PhotoIDs) > 0
}

// String renders the album for log and UI lines.
func (a *Album) String() string {
	return fmt.Sprintf("%s (%d photo ids)", a.Title, len(a.PhotoIDs))
}
