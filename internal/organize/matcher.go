package organize

import (
	"regexp"
	"strings"
)

// MatchFilenames returns the entries of listing that embed any of the given
// photo ids between underscores. Flickr export files are named like
// "vacation-day-1_49001234567_o.jpg", so a single alternation pattern of the
// form `.*_(id1|id2|...)_.*` finds every file belonging to an album in one
// pass. Listing order is preserved in the result.
//
// An empty id list matches nothing; compiling it would produce a pattern
// that matches every filename.
func MatchFilenames(listing []string, photoIDs []string) []string {
	if len(photoIDs) == 0 {
		return nil
	}

	quoted := make([]string, len(photoIDs))
	for i, id := range photoIDs {
		quoted[i] = regexp.QuoteMeta(id)
	}
	pattern := regexp.MustCompile(`.*_(` + strings.Join(quoted, "|") + `)_.*`)

	var matched []string
	for _, name := range listing {
		if pattern.MatchString(name) {
			matched = append(matched, name)
		}
	}
	return matched
}
