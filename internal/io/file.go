package ioutils

import (
	"context"
	"io"
	"os"
)

// CopyFile copies a file from source to destination.
//
// The destination is created with the source's permission bits, or truncated
// if it already exists. With preserveTimes the source's modification time is
// carried over to the destination after the copy, so organized albums keep
// the upload timestamps Flickr put on the files.
//
// Returns an error if the source cannot be read or the destination cannot be
// written; a partial destination file may be left behind in that case.
func CopyFile(ctx context.Context, src, dst string, preserveTimes bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	if err := destFile.Close(); err != nil {
		return err
	}

	if preserveTimes {
		mtime := info.ModTime()
		return os.Chtimes(dst, mtime, mtime)
	}
	return nil
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644 and truncated if it already exists.
// The context is currently unused but reserved for future use.
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
