package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoSlug indicates that a project slug could not be derived.
var ErrNoSlug = errors.New("no project slug found")

// buildURLRegex matches the address the CI platform gives every build,
// e.g. https://circleci.com/gh/acme/widgets/421. The capture is the
// vcs/org/repo part between the host and the build number.
var buildURLRegex = regexp.MustCompile(`^https?://[^/]+/([^/]+/[^/]+/[^/]+)/\d+$`)

// FromBuildURL extracts the project slug from the running build's own URL.
func FromBuildURL(buildURL string) (string, error) {
	match := buildURLRegex.FindStringSubmatch(strings.TrimSpace(buildURL))
	if len(match) < 2 {
		return "", fmt.Errorf("%w: unable to parse build URL %q", ErrNoSlug, buildURL)
	}
	return match[1], nil
}

// Parse validates an explicitly supplied slug of the form vcs/org/repo and
// returns it in canonical form without surrounding slashes.
func Parse(raw string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", ErrNoSlug
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected vcs/org/repo, got %q", ErrNoSlug, raw)
	}
	for _, part := range parts {
		if part == "" {
			return "", fmt.Errorf("%w: expected vcs/org/repo, got %q", ErrNoSlug, raw)
		}
	}
	return strings.Join(parts, "/"), nil
}
