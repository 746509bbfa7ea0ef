package search

import "testing"

func TestOptionsModesAreMutuallyExclusive(t *testing.T) {
	var opts Options

	opts.SetUseRegex(true)
	if !opts.UseRegex || opts.UseWildcard {
		t.Fatalf("after SetUseRegex(true): got regex=%v wildcard=%v", opts.UseRegex, opts.UseWildcard)
	}

	opts.SetUseWildcard(true)
	if opts.UseRegex || !opts.UseWildcard {
		t.Fatalf("enabling wildcard should clear regex: got regex=%v wildcard=%v", opts.UseRegex, opts.UseWildcard)
	}

	opts.SetUseRegex(true)
	if !opts.UseRegex || opts.UseWildcard {
		t.Fatalf("enabling regex should clear wildcard: got regex=%v wildcard=%v", opts.UseRegex, opts.UseWildcard)
	}
}

func TestOptionsDisablingOneLeavesOtherAlone(t *testing.T) {
	var opts Options

	opts.SetUseWildcard(true)
	opts.SetUseRegex(false)
	if !opts.UseWildcard {
		t.Fatal("disabling regex should not touch wildcard")
	}

	opts.SetUseWildcard(false)
	if opts.UseRegex || opts.UseWildcard {
		t.Fatalf("both modes should be off, got regex=%v wildcard=%v", opts.UseRegex, opts.UseWildcard)
	}
}
