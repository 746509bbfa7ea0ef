package search

import "testing"

func TestCompileEmptyQuery(t *testing.T) {
	pat, err := Compile("", Options{})
	if err != nil {
		t.Fatalf("empty query should not error, got %v", err)
	}
	if pat != nil {
		t.Fatal("empty query should compile to nil pattern")
	}
}

func TestCompileInvalidRegex(t *testing.T) {
	pat, err := Compile("(", Options{UseRegex: true})
	if err == nil {
		t.Fatal("expected compile error for unbalanced paren")
	}
	if pat != nil {
		t.Fatal("failed compile should return nil pattern")
	}
}

func TestCompileLiteralEscapesMetacharacters(t *testing.T) {
	pat, err := Compile("a.c", Options{CaseSensitive: true})
	if err != nil {
		t.Fatalf("literal compile: %v", err)
	}
	if got := pat.FindAll("abc a.c"); len(got) != 1 || got[0][0] != 4 {
		t.Fatalf("literal dot should not match 'b': got %v", got)
	}
}

func TestCompileCaseFlag(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		opts    Options
		text    string
		matches int
	}{
		{"insensitive literal", "foo", Options{}, "FOO foo Foo", 3},
		{"sensitive literal", "foo", Options{CaseSensitive: true}, "FOO foo Foo", 1},
		{"insensitive regex", "fo+", Options{UseRegex: true}, "FOO foo", 2},
		{"sensitive regex", "fo+", Options{UseRegex: true, CaseSensitive: true}, "FOO foo", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat, err := Compile(tt.query, tt.opts)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := len(pat.FindAll(tt.text)); got != tt.matches {
				t.Errorf("got %d matches, want %d", got, tt.matches)
			}
		})
	}
}

func TestWildcardTranslation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		text    string
		matched bool
	}{
		{"star spans any sequence", "a*b", "aXXXb", true},
		{"star spans empty", "a*b", "ab", true},
		{"question one char", "a?b", "aXb", true},
		{"question not two chars", "a?b", "aXXb", false},
		{"question not zero chars", "a?b", "ab", false},
		{"other chars escaped", "a.b", "aXb", false},
		{"star crosses lines", "a*b", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat, err := Compile(tt.query, Options{UseWildcard: true})
			if err != nil {
				t.Fatalf("wildcard compile should never fail: %v", err)
			}
			spans := pat.FindAll(tt.text)
			matched := false
			for _, s := range spans {
				if s[0] == 0 && s[1] == len(tt.text) {
					matched = true
				}
			}
			if matched != tt.matched {
				t.Errorf("whole-string match = %v, want %v (spans %v)", matched, tt.matched, spans)
			}
		})
	}
}

func TestWildcardMetacharactersCannotError(t *testing.T) {
	// every regex metacharacter a user could type must come out escaped
	for _, q := range []string{"(", ")", "[", "]", "{", "}", "+", ".", "\\", "|", "^", "$", "(?P<"} {
		if _, err := Compile(q, Options{UseWildcard: true}); err != nil {
			t.Errorf("wildcard compile of %q failed: %v", q, err)
		}
	}
}
