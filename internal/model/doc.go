// Package model defines the core data structures used throughout
// flickr-backup.
//
// # Album
//
// Album represents one record from the export manifest, with the directory
// slug precomputed:
//
//	album := model.NewAlbum("My Trip/Paris 2020!", []string{"100", "200"}, false)
//	fmt.Println(album.NormalizedTitle) // "my_trip_paris_2020"
//
// Albums are immutable after load; the organizer never writes back into them.
package model
