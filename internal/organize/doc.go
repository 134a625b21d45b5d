// Package organize turns a flat Flickr photo export into per-album
// directories.
//
// # Manager
//
// The Manager coordinates one organizing pass:
//
//  1. Load the album manifest and resolve directories
//  2. Per album: match photo files by id, create the album directory, copy
//  3. Write the duplicates report (photos shared by two or more albums)
//  4. Collect photos matching no album into the albumless directory
//  5. Report a summary
//
// # Basic Usage
//
//	manager := organize.NewManager(settings, func(event organize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, manifestDir, photosDir, outputDir); err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := manager.Organize(ctx)
//
// The pass is strictly sequential; there are no retries and no rollback. An
// album directory that already exists is skipped without copying, so a rerun
// after a partial failure never merges into half-populated albums.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Verbose events (one per copied file) are meant to be hidden unless the user
// asked for verbose output.
package organize
