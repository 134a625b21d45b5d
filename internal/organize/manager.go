package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/farrago/flickr-backup/internal/config"
	ioutils "github.com/farrago/flickr-backup/internal/io"
	"github.com/farrago/flickr-backup/internal/manifest"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update during organizing.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Summary reports the outcome of one organizing pass.
type Summary struct {
	// Albums is the number of records in the manifest.
	Albums int

	// Matched is the number of distinct photo files matched by at least
	// one album.
	Matched int

	// Duplicates is the number of photos shared by two or more albums.
	Duplicates int

	// Albumless is the number of photo files matching no album.
	Albumless int

	// Copied is the number of files actually copied. Zero for dry runs and
	// for albums whose directories already existed.
	Copied int
}

// Manager coordinates one organizing pass over a Flickr export.
//
// The pass itself is fully sequential; the atomic counters below exist only
// so a UI on another goroutine can poll progress while Organize runs.
type Manager struct {
	settings *config.Settings

	photosDir string
	outputDir string
	albums    *manifest.Manifest

	albumsDone  int32
	albumsTotal int32
	copiedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new organize Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		onProgress: onProgress,
	}
}

// Initialize loads the manifest and resolves the photos and output
// directories.
//
// manifestDir and outputDir may be empty; both default to photosDir. An
// explicitly given output directory that does not exist is created, but not
// recursively: its parent must already exist. Apart from that, Initialize
// mutates nothing.
func (m *Manager) Initialize(ctx context.Context, manifestDir, photosDir, outputDir string) error {
	photosAbs, err := filepath.Abs(photosDir)
	if err != nil {
		return fmt.Errorf("cannot resolve photos directory %s: %w", photosDir, err)
	}
	m.photosDir = photosAbs

	if manifestDir == "" {
		manifestDir = photosDir
	}
	manifestAbs, err := filepath.Abs(manifestDir)
	if err != nil {
		return fmt.Errorf("cannot resolve manifest directory %s: %w", manifestDir, err)
	}

	manifestPath := filepath.Join(manifestAbs, m.settings.ManifestFileName)
	albums, err := manifest.Load(manifestPath, m.settings.AllowUnicodeNames)
	if err != nil {
		return err
	}
	m.albums = albums
	atomic.StoreInt32(&m.albumsTotal, int32(albums.Len()))

	m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded manifest with %d albums from %s", albums.Len(), manifestPath), Level: LevelInfo})
	for _, album := range albums.Albums() {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Album %q -> %q (%d photo ids)", album.Title, album.NormalizedTitle, len(album.PhotoIDs)), Level: LevelVerbose})
	}

	if outputDir == "" {
		m.outputDir = photosAbs
		return nil
	}

	outputAbs, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("cannot resolve output directory %s: %w", outputDir, err)
	}
	if _, err := os.Stat(outputAbs); os.IsNotExist(err) {
		if m.settings.DryRun {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Would create output directory %s", outputAbs), Level: LevelVerbose})
		} else if err := os.Mkdir(outputAbs, 0755); err != nil {
			return fmt.Errorf("cannot create output directory %s: %w", outputAbs, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot stat output directory %s: %w", outputAbs, err)
	}
	m.outputDir = outputAbs
	return nil
}

// Organize runs the pass: per-album matching and materialization, then the
// duplicates report, then the albumless sweep. Any filesystem error aborts
// the run and may leave partial output behind.
func (m *Manager) Organize(ctx context.Context) (*Summary, error) {
	if m.albums == nil {
		return nil, fmt.Errorf("manager not initialized")
	}

	listing, err := m.listPhotosDir()
	if err != nil {
		return nil, err
	}

	summary := &Summary{Albums: m.albums.Len()}
	matchedAll := make(StringSet)
	var sets []StringSet

	for _, album := range m.albums.Albums() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if album.NormalizedTitle == "" {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping album %q: title normalizes to an empty name", album.Title), Level: LevelWarning})
			atomic.AddInt32(&m.albumsDone, 1)
			continue
		}

		matched := MatchFilenames(listing, album.PhotoIDs)
		copied, err := m.createAlbum(ctx, album.NormalizedTitle, matched)
		if err != nil {
			return nil, err
		}
		summary.Copied += copied

		set := NewStringSet(matched...)
		sets = append(sets, set)
		for name := range set {
			matchedAll.Add(name)
		}
		atomic.AddInt32(&m.albumsDone, 1)
	}

	duplicates := FindDuplicates(sets)
	summary.Duplicates = duplicates.Len()
	if err := m.writeDuplicates(ctx, duplicates); err != nil {
		return nil, err
	}

	albumless, err := m.albumlessPhotos(ctx, matchedAll)
	if err != nil {
		return nil, err
	}
	summary.Albumless = albumless
	summary.Matched = matchedAll.Len()

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Processed %d albums and %d photos of which %d are shared among two or more albums.",
			summary.Albums, summary.Matched, summary.Duplicates),
		Level: LevelInfo,
	})
	m.progress(ProgressEvent{Message: "List of shared photos written to " + m.settings.DuplicatesFileName, Level: LevelInfo})
	if albumless > 0 {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("An additional %d photos weren't part of any album and were copied to %q.",
				albumless, m.settings.AlbumlessDirName),
			Level: LevelInfo,
		})
	}

	return summary, nil
}

// GetProgress returns the current pass progress for polling UIs.
func (m *Manager) GetProgress() (albumsDone, albumsTotal, copied int32) {
	return atomic.LoadInt32(&m.albumsDone), atomic.LoadInt32(&m.albumsTotal), atomic.LoadInt32(&m.copiedFiles)
}

// GetAlbumNames returns display lines for all loaded albums.
func (m *Manager) GetAlbumNames() []string {
	if m.albums == nil {
		return nil
	}
	albums := m.albums.Albums()
	names := make([]string, len(albums))
	for i, album := range albums {
		names[i] = album.String()
	}
	return names
}

// listPhotosDir returns the names of all entries in the photos directory.
// Directories are included on purpose: matching works on raw names, the
// albumless sweep filters by file type separately.
func (m *Manager) listPhotosDir() ([]string, error) {
	entries, err := os.ReadDir(m.photosDir)
	if err != nil {
		return nil, fmt.Errorf("cannot list photos directory %s: %w", m.photosDir, err)
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// createAlbum materializes one album directory and copies the matched files
// into it, returning the number of files copied.
//
// An existing directory is left exactly as it is, even if its contents do not
// match: the tool never merges into album directories it finds on disk.
func (m *Manager) createAlbum(ctx context.Context, name string, filenames []string) (int, error) {
	albumDir := filepath.Join(m.outputDir, name)

	if _, err := os.Stat(albumDir); err == nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Album %q already exists, no photos copied.", name), Level: LevelInfo})
		return 0, nil
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("cannot stat album directory %s: %w", albumDir, err)
	}

	if m.settings.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would create album %q with %d photos.", name, len(filenames)), Level: LevelInfo})
		return 0, nil
	}

	if err := os.Mkdir(albumDir, 0755); err != nil {
		return 0, fmt.Errorf("cannot create album directory %s: %w", albumDir, err)
	}

	copied := 0
	for _, filename := range filenames {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		src := filepath.Join(m.photosDir, filename)
		dst := filepath.Join(albumDir, filename)
		if err := ioutils.CopyFile(ctx, src, dst, m.settings.PreserveTimestamps); err != nil {
			return copied, fmt.Errorf("cannot copy %q into album %q: %w", filename, name, err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Photo %q copied to album %q.", filename, name), Level: LevelVerbose})
		copied++
		atomic.AddInt32(&m.copiedFiles, 1)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Album %q created with %d photos.", name, copied), Level: LevelSuccess})
	return copied, nil
}

// writeDuplicates writes the duplicates report, one filename per line in
// lexicographic order. The file is written even when there are no duplicates.
func (m *Manager) writeDuplicates(ctx context.Context, duplicates StringSet) error {
	if m.settings.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would write %d shared photos to %s.", duplicates.Len(), m.settings.DuplicatesFileName), Level: LevelVerbose})
		return nil
	}

	var b strings.Builder
	for _, name := range duplicates.Sorted() {
		b.WriteString(name)
		b.WriteByte('\n')
	}

	path := filepath.Join(m.outputDir, m.settings.DuplicatesFileName)
	if err := ioutils.WriteFile(ctx, path, []byte(b.String())); err != nil {
		return fmt.Errorf("cannot write duplicates report %s: %w", path, err)
	}
	return nil
}

// albumlessPhotos collects the regular files in the photos directory that no
// album matched and materializes them under the albumless directory name.
// Only .json files are excluded from the sweep; that covers the manifest and
// the per-photo metadata sidecars Flickr ships.
func (m *Manager) albumlessPhotos(ctx context.Context, matched StringSet) (int, error) {
	entries, err := os.ReadDir(m.photosDir)
	if err != nil {
		return 0, fmt.Errorf("cannot list photos directory %s: %w", m.photosDir, err)
	}

	orphans := make(StringSet)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			continue
		}
		if !matched.Contains(name) {
			orphans.Add(name)
		}
	}

	if orphans.Len() == 0 {
		return 0, nil
	}

	if _, err := m.createAlbum(ctx, m.settings.AlbumlessDirName, orphans.Sorted()); err != nil {
		return 0, err
	}
	return orphans.Len(), nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
