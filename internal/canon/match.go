package canon

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Tier ranks how much trust a match carries: Exact > Alias > Fuzzy.
type Tier int

const (
	TierFuzzy Tier = iota + 1
	TierAlias
	TierExact
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierAlias:
		return "alias"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// MarshalText makes tiers serialize by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Strategy names the matching rule that produced a hit, for auditability.
type Strategy string

const (
	StrategyExactName   Strategy = "exact_name"
	StrategyExactAlias  Strategy = "exact_alias"
	StrategyPlural      Strategy = "plural"
	StrategyContainment Strategy = "containment"
	StrategyFuzzy       Strategy = "fuzzy"
)

// Match is a successful resolution against the catalog. MatchedLabel is the
// catalog name or alias that matched, as stored.
type Match struct {
	CanonicalID  uuid.UUID
	Tier         Tier
	MatchedLabel string
	Strategy     Strategy
}

// FindMatch resolves an already-normalized string against the index. The
// strategies run in a fixed order and the first one that yields a candidate
// wins; ok is false when none does. A query shorter than the index's minimum
// signal length never matches.
func FindMatch(normalized string, idx *Index) (Match, bool) {
	if idx == nil || utf8.RuneCountInString(normalized) < idx.params.MinSignalLength {
		return Match{}, false
	}
	if e, ok := idx.byName[normalized]; ok {
		return Match{CanonicalID: e.id, Tier: TierExact, MatchedLabel: e.label, Strategy: StrategyExactName}, true
	}
	if e, ok := idx.byAlias[normalized]; ok {
		return Match{CanonicalID: e.id, Tier: TierAlias, MatchedLabel: e.label, Strategy: StrategyExactAlias}, true
	}
	if m, ok := matchPlural(normalized, idx); ok {
		return m, true
	}
	if m, ok := matchContainment(normalized, idx); ok {
		return m, true
	}
	return matchFuzzy(normalized, idx)
}

// Canonicalize runs the whole pipeline on a raw line: junk check, normalize,
// match. ok is false for junk and for anything the matcher cannot place.
func Canonicalize(raw string, idx *Index) (Match, bool) {
	if IsJunk(raw) {
		return Match{}, false
	}
	return FindMatch(Normalize(raw), idx)
}

// pluralVariants lists the singular/plural forms tried by the plural
// strategy, in a fixed order.
func pluralVariants(s string) []string {
	vs := []string{s + "s", s + "es"}
	if t := strings.TrimSuffix(s, "s"); t != s {
		vs = append(vs, t)
	}
	if t := strings.TrimSuffix(s, "es"); t != s {
		vs = append(vs, t)
	}
	return vs
}

// matchPlural tries singular/plural variants against names first, then
// aliases. A name hit reports the fuzzy tier, an alias hit the alias tier.
func matchPlural(normalized string, idx *Index) (Match, bool) {
	variants := pluralVariants(normalized)
	for _, v := range variants {
		if e, ok := idx.byName[v]; ok {
			return Match{CanonicalID: e.id, Tier: TierFuzzy, MatchedLabel: e.label, Strategy: StrategyPlural}, true
		}
	}
	for _, v := range variants {
		if e, ok := idx.byAlias[v]; ok {
			return Match{CanonicalID: e.id, Tier: TierAlias, MatchedLabel: e.label, Strategy: StrategyPlural}, true
		}
	}
	return Match{}, false
}

// matchContainment looks for catalog terms containing the query or contained
// by it. Only terms long enough to be a real identity signal qualify. The
// longest overlap wins; ties keep the first term in catalog order.
func matchContainment(normalized string, idx *Index) (Match, bool) {
	qLen := utf8.RuneCountInString(normalized)
	best := -1
	var bestTerm *term
	for i := range idx.terms {
		t := &idx.terms[i]
		if !t.containOK {
			continue
		}
		var overlap int
		switch {
		case strings.Contains(normalized, t.norm):
			overlap = t.runeCount
		case strings.Contains(t.norm, normalized):
			overlap = qLen
		default:
			continue
		}
		if overlap > best {
			best = overlap
			bestTerm = t
		}
	}
	if bestTerm == nil {
		return Match{}, false
	}
	return Match{CanonicalID: bestTerm.id, Tier: TierFuzzy, MatchedLabel: bestTerm.label, Strategy: StrategyContainment}, true
}

// matchFuzzy scans every candidate by edit distance, accepting only distances
// within the configured share of the longer string. The smallest distance
// wins; ties keep the first term in catalog order.
func matchFuzzy(normalized string, idx *Index) (Match, bool) {
	qLen := utf8.RuneCountInString(normalized)
	bestDist := -1
	var bestTerm *term
	for i := range idx.terms {
		t := &idx.terms[i]
		longest := t.runeCount
		if qLen > longest {
			longest = qLen
		}
		if longest == 0 {
			continue
		}
		d := levenshtein.ComputeDistance(normalized, t.norm)
		if d > fuzzyLimit(longest, idx.params.FuzzyMaxDistanceRatio) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestTerm = t
		}
	}
	if bestTerm == nil {
		return Match{}, false
	}
	return Match{CanonicalID: bestTerm.id, Tier: TierFuzzy, MatchedLabel: bestTerm.label, Strategy: StrategyFuzzy}, true
}

// fuzzyLimit is ceil(ratio*longest). The epsilon keeps float drift at exact
// multiples (0.3*20) from widening the cap by one.
func fuzzyLimit(longest int, ratio float64) int {
	return int(math.Ceil(ratio*float64(longest) - 1e-9))
}
