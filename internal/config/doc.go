// Package config provides configuration management for flickr-backup.
//
// Settings can be loaded from a JSON file or start from defaults:
//
//	settings := config.DefaultSettings()
//	// manifest:   albums.json
//	// duplicates: duplicates.txt
//	// albumless:  __no_album__
//
//	settings, err := config.Load("/path/to/config.json")
//	// missing file falls back to defaults
//
// CLI flags override individual fields after loading.
package config
