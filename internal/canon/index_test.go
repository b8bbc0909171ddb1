package canon

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(name string, aliases ...string) Item {
	return Item{ID: uuid.New(), Name: name, Aliases: aliases}
}

func TestBuildIndex_SkipsSelfAliases(t *testing.T) {
	t.Parallel()

	item := newItem("olive oil", "Olive Oil", "EVOO")
	idx := BuildIndex([]Item{item})

	// "Olive Oil" normalizes to the name itself and must not be indexed
	// as an alias.
	_, selfAliased := idx.byAlias["olive oil"]
	assert.False(t, selfAliased)

	e, ok := idx.byAlias["evoo"]
	require.True(t, ok)
	assert.Equal(t, item.ID, e.id)
	assert.Equal(t, "EVOO", e.label)

	assert.Equal(t, 2, idx.Terms())
}

func TestBuildIndex_FirstItemClaimsDuplicateKey(t *testing.T) {
	t.Parallel()

	first := newItem("salt")
	second := newItem("salt")
	idx := BuildIndex([]Item{first, second})

	e, ok := idx.byName["salt"]
	require.True(t, ok)
	assert.Equal(t, first.ID, e.id)
	assert.Equal(t, 2, idx.Terms())
}

func TestBuildIndex_SkipsEmptyNormalizations(t *testing.T) {
	t.Parallel()

	idx := BuildIndex([]Item{newItem("   "), newItem("1 (")})
	assert.Equal(t, 0, idx.Terms())
}

func TestBuildIndexParams_ZeroValuesFallBack(t *testing.T) {
	t.Parallel()

	idx := BuildIndexParams([]Item{newItem("garlic")}, Params{})

	assert.Equal(t, defaultFuzzyMaxDistanceRatio, idx.params.FuzzyMaxDistanceRatio)
	assert.Equal(t, defaultMinSignalLength, idx.params.MinSignalLength)
	assert.Contains(t, idx.shortAllow, "egg")
}

func TestBuildIndex_ContainmentEligibility(t *testing.T) {
	t.Parallel()

	idx := BuildIndex([]Item{newItem("egg"), newItem("rice"), newItem("jus")})

	eligible := map[string]bool{}
	for _, tm := range idx.terms {
		eligible[tm.norm] = tm.containOK
	}

	assert.True(t, eligible["egg"], "allow-listed three-rune term")
	assert.True(t, eligible["rice"], "four runes or more")
	assert.False(t, eligible["jus"], "three runes outside the allow-list")
}
