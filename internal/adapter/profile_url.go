package adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const profilePathMarker = "/profile/"

// ParseProfileURL extracts the user id from a public profile link of the form
// {frontendBase}/profile/{userId}, as encoded into profile QR codes. A
// trailing slash, query string or fragment is ignored. The id must be a
// positive integer.
func ParseProfileURL(text string) (int64, error) {
	text = strings.TrimSpace(text)

	if u, err := url.Parse(text); err == nil && u.Path != "" {
		text = u.Path
	}

	_, rest, found := strings.Cut(text, profilePathMarker)
	if !found {
		return 0, fmt.Errorf("%w: %q has no %s segment", ErrInvalidProfileURL, text, profilePathMarker)
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimRight(rest, "/")

	userID, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: %q is not a user id", ErrInvalidProfileURL, rest)
	}

	return userID, nil
}
