// Package normalizer reduces free-text ingredient names to canonical grouping
// keys so the same ingredient written in different ways consolidates into one
// shopping line.
package normalizer

import "strings"

// Synonym maps any name containing Match to the Canonical ingredient name.
// Synonyms are an ordered list, not a map: when several Match values are
// substrings of the same input, the first one declared wins. Curators should
// list more specific entries before shorter ones.
type Synonym struct {
	Match     string `json:"match"`
	Canonical string `json:"canonical"`
}

// Normalizer holds the injected synonym list and modifier strip-set.
type Normalizer struct {
	synonyms  []Synonym
	modifiers map[string]struct{}
}

// New builds a Normalizer from a synonym list and a list of descriptive
// modifier words (freshness, size, ripeness, preparation state) to strip.
func New(synonyms []Synonym, modifiers []string) *Normalizer {
	set := make(map[string]struct{}, len(modifiers))
	for _, m := range modifiers {
		set[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}
	return &Normalizer{synonyms: synonyms, modifiers: set}
}

// Normalize returns the canonical grouping key for a raw ingredient name.
// It lowercases and trims, then checks the synonym list (first match wins),
// and only if no synonym applied strips modifier words token by token.
// Normalizing an already-normalized name returns it unchanged.
func (n *Normalizer) Normalize(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return ""
	}

	for _, s := range n.synonyms {
		if name == s.Match || strings.Contains(name, s.Match) {
			return s.Canonical
		}
	}

	fields := strings.Fields(name)
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := n.modifiers[f]; drop {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		// every token was a modifier; keep the original rather than
		// collapsing to an empty key
		return name
	}
	return strings.Join(kept, " ")
}
