package organize

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/farrago/flickr-backup/internal/config"
)

// setupExport builds a minimal Flickr export: a flat photos directory with
// albums.json and a handful of photo files, one of them shared between the
// two albums and one belonging to no album.
func setupExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	manifest := `{
		"albums": [
			{"title": "Trip One", "photos": ["100", "200"]},
			{"title": "Trip Two!", "photos": ["200", "300"]}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "albums.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	files := []string{
		"img_100_a.jpg",
		"img_200_b.jpg",
		"img_300_c.jpg",
		"extra_untagged.jpg",
		"sidecar.json",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestManager(settings *config.Settings) *Manager {
	return NewManager(settings, nil)
}

func run(t *testing.T, m *Manager, manifestDir, photosDir, outputDir string) *Summary {
	t.Helper()
	ctx := context.Background()
	if err := m.Initialize(ctx, manifestDir, photosDir, outputDir); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	summary, err := m.Organize(ctx)
	if err != nil {
		t.Fatalf("Organize() error: %v", err)
	}
	return summary
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names
}

func TestOrganize_EndToEnd(t *testing.T) {
	photos := setupExport(t)
	output := filepath.Join(t.TempDir(), "organized")

	summary := run(t, newTestManager(config.DefaultSettings()), "", photos, output)

	if summary.Albums != 2 || summary.Matched != 3 || summary.Duplicates != 1 || summary.Albumless != 1 {
		t.Errorf("summary = %+v, want 2 albums, 3 matched, 1 duplicate, 1 albumless", summary)
	}
	// 2 + 2 photos into albums, 1 into __no_album__.
	if summary.Copied != 5 {
		t.Errorf("Copied = %d, want 5", summary.Copied)
	}

	got := dirNames(t, filepath.Join(output, "trip_one"))
	if len(got) != 2 {
		t.Errorf("trip_one contains %v, want img_100 and img_200", got)
	}
	got = dirNames(t, filepath.Join(output, "trip_two"))
	if len(got) != 2 {
		t.Errorf("trip_two contains %v, want img_200 and img_300", got)
	}

	dup, err := os.ReadFile(filepath.Join(output, "duplicates.txt"))
	if err != nil {
		t.Fatalf("duplicates.txt missing: %v", err)
	}
	if string(dup) != "img_200_b.jpg\n" {
		t.Errorf("duplicates.txt = %q, want %q", dup, "img_200_b.jpg\n")
	}

	orphans := dirNames(t, filepath.Join(output, "__no_album__"))
	if len(orphans) != 1 || orphans[0] != "extra_untagged.jpg" {
		t.Errorf("__no_album__ contains %v, want only extra_untagged.jpg", orphans)
	}
}

func TestOrganize_RerunCopiesNothing(t *testing.T) {
	photos := setupExport(t)
	output := filepath.Join(t.TempDir(), "organized")

	run(t, newTestManager(config.DefaultSettings()), "", photos, output)
	summary := run(t, newTestManager(config.DefaultSettings()), "", photos, output)

	if summary.Copied != 0 {
		t.Errorf("rerun Copied = %d, want 0", summary.Copied)
	}
	// The duplicates report is recomputed and rewritten on every run.
	if _, err := os.Stat(filepath.Join(output, "duplicates.txt")); err != nil {
		t.Errorf("duplicates.txt should still exist after rerun: %v", err)
	}
}

func TestOrganize_DryRunMutatesNothing(t *testing.T) {
	photos := setupExport(t)
	output := filepath.Join(t.TempDir(), "organized")

	settings := config.DefaultSettings()
	settings.DryRun = true
	summary := run(t, newTestManager(settings), "", photos, output)

	if summary.Copied != 0 {
		t.Errorf("dry run Copied = %d, want 0", summary.Copied)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("dry run should not create the output directory")
	}
}

func TestOrganize_OutputDefaultsToPhotosDir(t *testing.T) {
	photos := setupExport(t)

	run(t, newTestManager(config.DefaultSettings()), "", photos, "")

	if _, err := os.Stat(filepath.Join(photos, "trip_one")); err != nil {
		t.Errorf("trip_one should be created inside the photos directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(photos, "duplicates.txt")); err != nil {
		t.Errorf("duplicates.txt should be written into the photos directory: %v", err)
	}
}

func TestOrganize_DuplicatesFileWrittenWhenEmpty(t *testing.T) {
	photos := t.TempDir()
	manifest := `{"albums": [{"title": "Solo", "photos": ["100"]}]}`
	if err := os.WriteFile(filepath.Join(photos, "albums.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(photos, "img_100_a.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "out")

	run(t, newTestManager(config.DefaultSettings()), "", photos, output)

	dup, err := os.ReadFile(filepath.Join(output, "duplicates.txt"))
	if err != nil {
		t.Fatalf("duplicates.txt should be written even when empty: %v", err)
	}
	if len(dup) != 0 {
		t.Errorf("duplicates.txt = %q, want empty", dup)
	}
}

func TestOrganize_EmptyPhotoIDList(t *testing.T) {
	photos := t.TempDir()
	manifest := `{"albums": [{"title": "Empty Album", "photos": []}]}`
	if err := os.WriteFile(filepath.Join(photos, "albums.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(photos, "img_100_a.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "out")

	summary := run(t, newTestManager(config.DefaultSettings()), "", photos, output)

	// The album directory is created but empty; the unmatched photo lands
	// in the albumless directory.
	if got := dirNames(t, filepath.Join(output, "empty_album")); len(got) != 0 {
		t.Errorf("empty_album contains %v, want nothing", got)
	}
	if summary.Albumless != 1 {
		t.Errorf("Albumless = %d, want 1", summary.Albumless)
	}
}

func TestOrganize_CollidingSlugsSkipSecondAlbum(t *testing.T) {
	photos := t.TempDir()
	// Both titles normalize to "trip_one".
	manifest := `{
		"albums": [
			{"title": "Trip One", "photos": ["100"]},
			{"title": "Trip/One", "photos": ["200"]}
		]
	}`
	if err := os.WriteFile(filepath.Join(photos, "albums.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"img_100_a.jpg", "img_200_b.jpg"} {
		if err := os.WriteFile(filepath.Join(photos, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	output := filepath.Join(t.TempDir(), "out")

	var skipped bool
	manager := NewManager(config.DefaultSettings(), func(event ProgressEvent) {
		if strings.Contains(event.Message, "already exists") {
			skipped = true
		}
	})
	summary := run(t, manager, "", photos, output)

	got := dirNames(t, filepath.Join(output, "trip_one"))
	if len(got) != 1 || got[0] != "img_100_a.jpg" {
		t.Errorf("trip_one contains %v, want only the first album's photo", got)
	}
	if summary.Copied != 1 {
		t.Errorf("Copied = %d, want 1 (second album skipped)", summary.Copied)
	}
	if !skipped {
		t.Error("expected a skip event for the colliding album directory")
	}
}

func TestOrganize_EmptySlugSkipsRecord(t *testing.T) {
	photos := t.TempDir()
	manifest := `{"albums": [{"title": "!!!", "photos": ["100"]}]}`
	if err := os.WriteFile(filepath.Join(photos, "albums.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(photos, "img_100_a.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "out")

	summary := run(t, newTestManager(config.DefaultSettings()), "", photos, output)

	if summary.Copied != 1 {
		// Only the albumless copy happens.
		t.Errorf("Copied = %d, want 1", summary.Copied)
	}
	orphans := dirNames(t, filepath.Join(output, "__no_album__"))
	if len(orphans) != 1 || orphans[0] != "img_100_a.jpg" {
		t.Errorf("__no_album__ contains %v, want the skipped album's photo", orphans)
	}
}

func TestOrganize_MissingPhotosDir(t *testing.T) {
	manifestDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(manifestDir, "albums.json"), []byte(`{"albums": []}`), 0644); err != nil {
		t.Fatal(err)
	}
	photos := filepath.Join(t.TempDir(), "gone")

	m := newTestManager(config.DefaultSettings())
	if err := m.Initialize(context.Background(), manifestDir, photos, manifestDir); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if _, err := m.Organize(context.Background()); err == nil {
		t.Fatal("Organize() should fail when the photos directory is missing")
	}
}

func TestInitialize_MissingManifest(t *testing.T) {
	photos := t.TempDir()

	err := newTestManager(config.DefaultSettings()).Initialize(context.Background(), "", photos, "")
	if err == nil {
		t.Fatal("Initialize() should fail when albums.json is missing")
	}
}

func TestInitialize_OutputParentMustExist(t *testing.T) {
	photos := setupExport(t)
	output := filepath.Join(t.TempDir(), "missing", "organized")

	err := newTestManager(config.DefaultSettings()).Initialize(context.Background(), "", photos, output)
	if err == nil {
		t.Fatal("Initialize() should fail when the output directory's parent is missing")
	}
}

func TestInitialize_ManifestDirOverride(t *testing.T) {
	photos := t.TempDir()
	manifestDir := t.TempDir()
	manifest := `{"albums": []}`
	if err := os.WriteFile(filepath.Join(manifestDir, "albums.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	m := newTestManager(config.DefaultSettings())
	if err := m.Initialize(context.Background(), manifestDir, photos, ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if len(m.GetAlbumNames()) != 0 {
		t.Errorf("GetAlbumNames() = %v, want none", m.GetAlbumNames())
	}
}
