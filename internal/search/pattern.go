package search

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled query ready for repeated global scanning.
type Pattern struct {
	re     *regexp.Regexp
	folded bool
}

// Compile turns a query plus options into a scannable pattern. An empty query
// compiles to a nil pattern with no error. In regex mode the query is the
// expression body verbatim and a malformed one returns the compile error;
// wildcard and literal queries are escaped and cannot fail.
func Compile(query string, opts Options) (*Pattern, error) {
	if query == "" {
		return nil, nil
	}

	q := query
	folded := false
	if !opts.UseRegex && !opts.CaseSensitive {
		// accent-insensitive comparison: the engine folds block text the
		// same way before scanning
		q, _ = Fold(query)
		folded = true
	}

	var body string
	switch {
	case opts.UseRegex:
		body = query
	case opts.UseWildcard:
		body = wildcardToRegexp(q)
	default:
		body = regexp.QuoteMeta(q)
	}

	var flags string
	if !opts.CaseSensitive {
		flags += "i"
	}
	if opts.UseWildcard {
		// * and ? cross line boundaries
		flags += "s"
	}
	if flags != "" {
		body = "(?" + flags + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return nil, fmt.Errorf("invalid search expression: %w", err)
	}

	return &Pattern{re: re, folded: folded}, nil
}

// Folded reports whether block text must be folded with Fold before scanning.
func (p *Pattern) Folded() bool { return p.folded }

// FindAll returns the byte spans of every non-overlapping occurrence in text,
// left to right. Zero-length regex matches are reported once each and the
// scan advances past them, so patterns like "a*" terminate on any input.
func (p *Pattern) FindAll(text string) [][]int {
	return p.re.FindAllStringIndex(text, -1)
}

// wildcardToRegexp translates a wildcard query into a regular expression:
// * matches any sequence including the empty one, ? exactly one character,
// and everything else literally.
func wildcardToRegexp(query string) string {
	var b strings.Builder
	var lit []rune

	flush := func() {
		if len(lit) > 0 {
			b.WriteString(regexp.QuoteMeta(string(lit)))
			lit = lit[:0]
		}
	}

	for _, r := range query {
		switch r {
		case '*':
			flush()
			b.WriteString(".*")
		case '?':
			flush()
			b.WriteString(".")
		default:
			lit = append(lit, r)
		}
	}
	flush()

	return b.String()
}
