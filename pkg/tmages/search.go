package tmages

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type searchContext struct {
	pattern       string
	firstContains int
	firstPrefixed int
}

// SetSearch updates the type-to-search pattern and jumps the selection to
// the best match: the first entry whose name starts with the pattern, else
// the first whose name contains it. When nothing matches the last rune is
// dropped and the shorter pattern retried, so a typo never strands the
// search on an unmatchable pattern. The parent marker is never a match.
func (p *entriesPanel) SetSearch(pattern string) {
	p.searchPattern = pattern
	if pattern == "" {
		p.browser.applyEntriesTitle()
		return
	}
	p.SetTitle(fmt.Sprintf("Find: %s", pattern))

	searchCtx := &searchContext{
		pattern:       normalizeForSearch(pattern),
		firstContains: -1,
		firstPrefixed: -1,
	}
	for i, entry := range p.browser.state.Entries() {
		if entry.IsParent() {
			continue
		}
		name := normalizeForSearch(entry.Name())
		if !strings.Contains(name, searchCtx.pattern) {
			continue
		}
		if searchCtx.firstContains < 0 {
			searchCtx.firstContains = i
		}
		if strings.HasPrefix(name, searchCtx.pattern) {
			searchCtx.firstPrefixed = i
			break
		}
	}

	switch {
	case searchCtx.firstPrefixed >= 0:
		p.browser.selectIndex(searchCtx.firstPrefixed)
	case searchCtx.firstContains >= 0:
		p.browser.selectIndex(searchCtx.firstContains)
	default:
		p.SetSearch(trimLastRune(pattern))
	}
}

// normalizeForSearch folds case and composition: file names arrive in
// whatever normal form the filesystem stores, patterns in whatever form the
// keyboard composes, and the two only compare equal after NFC.
func normalizeForSearch(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
