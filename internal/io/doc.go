// Package ioutils provides file system utilities for flickr-backup.
//
// # File Operations
//
//	// Copy a photo, carrying over its modification time
//	err := ioutils.CopyFile(ctx, "/export/img_100_o.jpg", "/out/trip/img_100_o.jpg", true)
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/out/duplicates.txt", []byte("img_100_o.jpg\n"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/out/trip")
//
// All functions that accept a context.Context respect cancellation, though
// file operations themselves may not be interruptible.
package ioutils
