// Package normalize canonicalizes user-supplied values before they are
// compared or placed in API queries.
//
// Multi-value selections (tags, roles, providers) are normalized to a
// trimmed, deduplicated, sorted form so two selections differing only in
// order or letter case compare equal with plain slice comparison.
package normalize

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Selector trims a seller-profile selector; slugs are case-insensitive.
func Selector(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Selection canonicalizes a multi-value selection: trim, drop empties,
// lowercase, dedupe, sort. Idempotent.
func Selection(values []string) []string {
	return selection(values, true)
}

// SelectionKeepCase is Selection without lowercasing, for value spaces
// that are case-sensitive.
func SelectionKeepCase(values []string) []string {
	return selection(values, false)
}

func selection(values []string, lower bool) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// EqualSelections reports whether two selections are equal after
// canonicalization.
func EqualSelections(a, b []string) bool {
	na, nb := Selection(a), Selection(b)
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}

// CSV splits a comma-separated parameter into a canonical selection.
// An empty or blank input yields an empty selection.
func CSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return Selection(strings.Split(raw, ","))
}

// JoinCSV renders a selection as the CSV form the API expects.
func JoinCSV(values []string) string {
	return strings.Join(Selection(values), ",")
}

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugHyphens  = regexp.MustCompile(`-+`)
	tagSeparator = regexp.MustCompile(`[\s,]+`)
)

// Slug derives a URL slug from free text: lowercase, strip punctuation,
// collapse whitespace and hyphen runs.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Tags parses free-text tag input. Tags are separated by whitespace or
// commas; a leading # is optional and stripped.
func Tags(raw string) []string {
	parts := tagSeparator.Split(raw, -1)
	for i, p := range parts {
		parts[i] = strings.TrimLeft(p, "#")
	}
	return Selection(parts)
}

// PositiveInt parses a positive integer parameter, returning fallback for
// missing, malformed, or out-of-range input.
func PositiveInt(raw string, fallback, min, max int) int {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < min || n > max {
		return fallback
	}
	return n
}

// OptionalCents parses an optional whole-unit price field into minor
// currency units. Returns (0, false) for blank input and an error flag
// via ok=false with negative or malformed values rejected.
func OptionalCents(raw string) (cents int64, set bool, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, true
	}
	units, err := strconv.ParseFloat(raw, 64)
	if err != nil || units < 0 {
		return 0, false, false
	}
	return int64(units*100 + 0.5), true, true
}
