package canon

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	defaultFuzzyMaxDistanceRatio = 0.3
	defaultMinSignalLength       = 3

	// minContainRunes is the shortest catalog term eligible for containment
	// matching, except for the short allow-list.
	minContainRunes = 4
)

// Item is a catalog entry as the matcher sees it. Name is the authoritative
// label; aliases are alternate spellings resolved to the same id.
type Item struct {
	ID       uuid.UUID
	Name     string
	Aliases  []string
	Category string
}

// Params holds the tunable matching constants. The zero value of a field
// falls back to the package default.
type Params struct {
	// FuzzyMaxDistanceRatio caps edit-distance acceptance at
	// ceil(ratio * longest side).
	FuzzyMaxDistanceRatio float64
	// MinSignalLength is the shortest normalized string worth matching;
	// anything below it yields no match.
	MinSignalLength int
	// ShortContainAllow lists the length-3 catalog terms eligible for
	// containment matching.
	ShortContainAllow []string
}

func DefaultParams() Params {
	return Params{
		FuzzyMaxDistanceRatio: defaultFuzzyMaxDistanceRatio,
		MinSignalLength:       defaultMinSignalLength,
		ShortContainAllow:     shortContainTerms,
	}
}

type entry struct {
	id    uuid.UUID
	label string
}

// term is one scannable candidate: a catalog name or alias with its
// normalized form precomputed.
type term struct {
	id        uuid.UUID
	label     string
	norm      string
	runeCount int
	containOK bool
}

// Index is a read-only snapshot of the catalog built once per matching
// session. It is safe for concurrent readers; catalog edits require building
// a fresh index.
type Index struct {
	params     Params
	shortAllow map[string]struct{}
	byName     map[string]entry
	byAlias    map[string]entry
	terms      []term
}

// BuildIndex builds an index with the default params.
func BuildIndex(items []Item) *Index {
	return BuildIndexParams(items, DefaultParams())
}

// BuildIndexParams builds an index over the given catalog snapshot. Items are
// indexed in slice order, and that order breaks all matcher ties, so callers
// should pass a stable ordering. Aliases that normalize to their own item's
// name are skipped.
func BuildIndexParams(items []Item, params Params) *Index {
	if params.FuzzyMaxDistanceRatio <= 0 {
		params.FuzzyMaxDistanceRatio = defaultFuzzyMaxDistanceRatio
	}
	if params.MinSignalLength <= 0 {
		params.MinSignalLength = defaultMinSignalLength
	}
	if params.ShortContainAllow == nil {
		params.ShortContainAllow = shortContainTerms
	}

	idx := &Index{
		params:     params,
		shortAllow: toSet(params.ShortContainAllow),
		byName:     make(map[string]entry, len(items)),
		byAlias:    make(map[string]entry),
		terms:      make([]term, 0, len(items)),
	}
	for _, it := range items {
		nameNorm := Normalize(it.Name)
		idx.add(it.ID, it.Name, nameNorm, idx.byName)
		for _, alias := range it.Aliases {
			aliasNorm := Normalize(alias)
			if aliasNorm == nameNorm {
				continue
			}
			idx.add(it.ID, alias, aliasNorm, idx.byAlias)
		}
	}
	return idx
}

// add registers one candidate term. The first item to claim a normalized key
// keeps it, so earlier catalog entries shadow later duplicates.
func (idx *Index) add(id uuid.UUID, label, norm string, lookup map[string]entry) {
	if norm == "" {
		return
	}
	if _, taken := lookup[norm]; !taken {
		lookup[norm] = entry{id: id, label: label}
	}
	rc := utf8.RuneCountInString(norm)
	containOK := rc >= minContainRunes
	if !containOK && rc == 3 {
		_, containOK = idx.shortAllow[norm]
	}
	idx.terms = append(idx.terms, term{
		id:        id,
		label:     label,
		norm:      norm,
		runeCount: rc,
		containOK: containOK,
	})
}

// Terms reports how many name/alias candidates the index scans.
func (idx *Index) Terms() int {
	return len(idx.terms)
}
