package github

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAPIURL is GitHub's public REST endpoint.
const DefaultAPIURL = "https://api.github.com/"

// JoinURL appends path to base with exactly one "/" between them.
func JoinURL(base, path string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return "", fmt.Errorf("parse base uri %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base uri %q must be absolute", base)
	}
	return u.String() + "/" + strings.TrimLeft(path, "/"), nil
}
