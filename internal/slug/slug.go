// Package slug builds unique human-readable identifiers from titles
package slug

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// ErrEmptySlug is returned when no candidate produces a usable slug
var ErrEmptySlug = errors.New("slug candidates are empty")

// ExistsFunc reports whether a slug is already used
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Slugify converts free text into a [a-z0-9-] slug with diacritics removed
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diacritics (é -> e)
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Resolve returns the slug of the first candidate not reported by exists.
//
// Candidates are tried in order. When every candidate collides, the slug of the first usable
// candidate is suffixed with a random UUID. Empty candidates are skipped.
func Resolve(ctx context.Context, candidates []string, exists ExistsFunc) (string, error) {
	var first string
	tried := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		s := Slugify(candidate)
		if s == "" {
			continue
		}
		if first == "" {
			first = s
		}
		if _, ok := tried[s]; ok {
			continue
		}
		tried[s] = struct{}{}

		taken, err := exists(ctx, s)
		if err != nil {
			return "", err
		}
		if !taken {
			return s, nil
		}
	}

	if first == "" {
		return "", ErrEmptySlug
	}

	return first + "-" + uuid.New().String(), nil
}
