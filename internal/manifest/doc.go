// Package manifest loads the albums.json file that ships with a Flickr
// photo export.
//
// # Format
//
// The manifest is a single JSON document:
//
//	{
//	  "albums": [
//	    {"title": "My Trip", "photos": ["49001234567", "49001234568"]},
//	    ...
//	  ]
//	}
//
// The "photos" entries are opaque identifier strings; they are matched
// against filenames later, never resolved against the Flickr API.
//
// # Loading
//
//	albums, err := manifest.Load("/export/albums.json", false)
//	if err != nil {
//	    // missing or malformed manifest, fatal before any mutation
//	}
//	for _, album := range albums.Albums() {
//	    fmt.Println(album.NormalizedTitle)
//	}
//
// The returned Manifest is read-only and keeps the manifest's album order.
package manifest
