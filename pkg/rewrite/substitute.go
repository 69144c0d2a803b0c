package rewrite

import (
	"sort"
	"strings"

	"github.com/vvg/templatize/pkg/rules"
)

// Apply replaces every occurrence of each rule's Old string with its New
// string in a single pass over content, and reports whether anything changed.
//
// Longer keys take priority at any given position, so a rule's replacement
// value can never be rewritten by another rule in the same map (no cascade).
// Rules with an empty Old string are ignored.
func Apply(content string, m rules.Map) (string, bool) {
	ordered := make(rules.Map, 0, len(m))
	for _, r := range m {
		if r.Old != "" {
			ordered = append(ordered, r)
		}
	}
	if len(ordered) == 0 {
		return content, false
	}

	// strings.Replacer prefers earlier pairs at each position, so sorting
	// longest-first yields longest-match semantics. The sort is stable to
	// keep map order authoritative between equal-length keys.
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Old) > len(ordered[j].Old)
	})

	pairs := make([]string, 0, len(ordered)*2)
	for _, r := range ordered {
		pairs = append(pairs, r.Old, r.New)
	}

	replaced := strings.NewReplacer(pairs...).Replace(content)
	return replaced, replaced != content
}
