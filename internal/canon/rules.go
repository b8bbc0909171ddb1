package canon

import (
	"regexp"
	"sort"
	"strings"
)

// The cleanup rules live here as data so tuning a word list never touches
// pipeline logic. All regexps are built once at package init.

// modifierWords are dietary, quality, and brand qualifiers that never change
// what the ingredient is.
var modifierWords = []string{
	"extra-virgin", "extra virgin", "virgin",
	"low-fat", "low fat", "lowfat", "nonfat", "non-fat", "fat-free", "fat free", "full-fat",
	"low-sodium", "low sodium", "reduced-sodium", "reduced sodium", "no-salt-added", "unsalted", "salted",
	"sugar-free", "sugar free", "no-sugar-added",
	"gluten-free", "gluten free",
	"organic", "natural", "all-natural", "pure", "plain", "classic", "original",
	"light", "lite", "extra", "premium", "gourmet", "artisan", "artisanal",
	"homemade", "store-bought", "best quality", "good quality", "high quality", "quality",
	"free-range", "free range", "cage-free", "grass-fed", "pasture-raised", "wild-caught", "farm-raised",
	"skim", "whole-grain",
	"kraft", "heinz", "hellmann's", "hellmanns", "duncan hines", "betty crocker",
	"great value", "kirkland", "trader joe's", "trader joes", "hidden valley",
	"mccormick", "philadelphia", "campbell's", "campbells", "jif", "skippy",
	"land o lakes", "land o'lakes", "pillsbury", "nestle", "hershey's", "hersheys",
	"ghirardelli", "knorr", "lipton", "old el paso", "king arthur", "bob's red mill",
	"domino", "crisco", "pam", "ragu", "prego", "tabasco", "frank's redhot",
}

// varietalPairs collapse a named variety directly preceding its base
// ingredient. The base keeps its plurality.
var varietalPairs = []struct {
	variety string
	base    string
}{
	{"granny smith", "apple"},
	{"honeycrisp", "apple"},
	{"gala", "apple"},
	{"fuji", "apple"},
	{"roma", "tomato"},
	{"beefsteak", "tomato"},
	{"heirloom", "tomato"},
	{"san marzano", "tomato"},
	{"russet", "potato"},
	{"yukon gold", "potato"},
	{"fingerling", "potato"},
	{"vidalia", "onion"},
	{"walla walla", "onion"},
	{"persian", "cucumber"},
	{"english", "cucumber"},
	{"meyer", "lemon"},
	{"key", "lime"},
	{"thai", "basil"},
	{"lacinato", "kale"},
	{"calabrian", "chili"},
	{"serrano", "chili"},
	{"carolina", "rice"},
	{"arborio", "rice"},
	{"basmati", "rice"},
	{"jasmine", "rice"},
}

// prepWords describe what was done to the ingredient, not what it is.
// "ground" is deliberately absent: it is identity-bearing (ground beef,
// ground ginger).
var prepWords = []string{
	"chopped", "finely chopped", "roughly chopped", "coarsely chopped",
	"diced", "finely diced", "minced", "sliced", "thinly sliced", "thickly sliced",
	"grated", "freshly grated", "shredded", "julienned", "cubed", "quartered",
	"halved", "crushed", "mashed", "pureed", "sifted", "zested", "juiced",
	"peeled", "seeded", "deseeded", "stemmed", "trimmed", "deveined", "shucked",
	"pitted", "cored", "rinsed", "drained", "scrubbed", "washed", "picked",
	"torn", "crumbled", "flaked", "shaved", "snipped", "pounded", "butterflied",
	"beaten", "lightly beaten", "whisked", "scalded", "packed", "lightly packed",
	"firmly packed", "heaped", "heaping", "rounded", "level", "scant",
	"finely", "coarsely", "thinly", "thickly", "lightly", "very",
}

// stateWords describe temperature or processing state.
var stateWords = []string{
	"fresh", "freshly", "frozen", "thawed", "defrosted", "chilled", "cold",
	"cool", "warm", "warmed", "hot", "room temperature", "softened", "melted",
	"cooked", "uncooked", "raw", "precooked", "leftover", "day-old", "stale",
	"dried", "dry", "rehydrated", "canned", "tinned", "jarred", "bottled",
	"prepared", "instant", "quick-cooking", "ripe", "very ripe", "overripe",
	"underripe", "firm", "tender",
}

// fillerWords are recipe bookkeeping that survives up to this point.
var fillerWords = []string{
	"divided", "optional", "to taste", "as needed", "if needed", "if desired",
	"for serving", "for garnish", "for greasing", "for dusting", "for brushing",
	"for frying", "for deep-frying", "for the pan", "plus more", "plus extra",
	"more", "additional", "about", "approximately", "roughly", "around",
	"preferably", "ideally", "such as", "i.e", "e.g", "etc",
	"or so", "or more", "or less", "to serve", "to garnish", "to decorate",
	"at room temperature", "cut into wedges", "cut into chunks", "cut into pieces",
	"cut into strips", "cut into cubes", "cut in half",
}

// containerWords are count/packaging nouns; a trailing "of" goes with them.
var containerWords = []string{
	"cans", "can", "jars", "jar", "bottles", "bottle", "packages", "package",
	"pkgs", "pkg", "packets", "packet", "boxes", "box", "bags", "bag",
	"cartons", "carton", "containers", "container", "tubs", "tub", "tubes", "tube",
	"bunches", "bunch", "heads", "head", "cloves", "clove", "stalks", "stalk",
	"ribs", "rib", "sprigs", "sprig", "ears", "ear", "sheets", "sheet",
	"slices", "slice", "strips", "strip", "pieces", "piece", "chunks", "chunk",
	"wedges", "wedge", "knobs", "knob", "pats", "pat", "sticks", "stick",
	"envelopes", "envelope", "loaves", "loaf", "links", "link", "fillets", "fillet",
	"filets", "filet", "dashes", "dash", "pinches", "pinch", "splashes", "splash",
	"drizzles", "drizzle", "handfuls", "handful", "dollops", "dollop",
	"squares", "square", "bars", "bar", "blocks", "block", "wheels", "wheel",
	"drops", "drop",
}

// unitWords are measurement units stripped wherever they appear. Bare "in",
// "t", and "c" are excluded: too ambiguous as whole words.
var unitWords = []string{
	"tablespoons", "tablespoon", "tbsps", "tbsp", "tbs", "tb",
	"teaspoons", "teaspoon", "tsps", "tsp",
	"cups", "cup",
	"fluid ounces", "fluid ounce", "fl oz", "fl. oz",
	"ounces", "ounce", "oz",
	"pounds", "pound", "lbs", "lb",
	"grams", "gram", "g", "kilograms", "kilogram", "kgs", "kg",
	"milligrams", "milligram", "mg",
	"milliliters", "millilitres", "milliliter", "millilitre", "mls", "ml",
	"liters", "litres", "liter", "litre", "l",
	"quarts", "quart", "qts", "qt", "pints", "pint", "pts", "pt",
	"gallons", "gallon", "gals", "gal",
	"inches", "inch", "centimeters", "centimeter", "cms", "cm",
	"small", "medium", "large", "extra-large", "extra large", "jumbo",
	"whole",
}

// equipmentWords mark tools and non-food items; any line containing one as a
// whole word is junk.
var equipmentWords = []string{
	"foil", "aluminum foil", "tin foil", "parchment", "parchment paper",
	"wax paper", "waxed paper", "plastic wrap", "cling film", "paper towels",
	"paper towel", "skewers", "skewer", "toothpicks", "toothpick",
	"cheesecloth", "kitchen twine", "butcher's twine", "twine", "string",
	"baking sheet", "baking pan", "baking dish", "roasting pan", "sheet pan",
	"muffin tin", "muffin cups", "cupcake liners", "ramekins", "ramekin",
	"dutch oven", "slow cooker", "crock pot", "crockpot", "pressure cooker",
	"instant pot", "air fryer", "thermometer", "candy thermometer",
	"piping bag", "pastry bag", "rolling pin", "mandoline", "zip-top bag",
	"ziploc bag", "resealable bag", "grill pan", "cast iron skillet",
	"springform pan", "loaf pan", "bundt pan", "pie plate", "pizza stone",
	"mixing bowl", "stand mixer", "hand mixer", "food processor", "blender",
	"ice cream maker", "waffle iron", "popsicle molds", "popsicle sticks",
	"lollipop sticks", "cocktail sticks", "mason jars", "mason jar",
}

// shortContainTerms are the only length-3 catalog terms eligible for
// containment matching.
var shortContainTerms = []string{
	"egg", "oil", "tea", "ham", "jam", "rum", "soy", "rye", "fig", "pea", "cod",
}

// sectionHeaderPrefixes start lines that label a recipe section rather than
// name an ingredient.
var sectionHeaderPrefixes = []string{"for "}

// edgeStopwords are conjunctions/articles dropped from the ends of the
// string once the words around them are gone ("black beans, drained and
// rinsed" leaves a trailing "and"). Interior occurrences stay: "half and
// half" is an ingredient.
var edgeStopwords = toSet([]string{
	"and", "or", "of", "with", "without", "for", "to", "the", "a", "an",
	"in", "on", "into", "plus",
})

var (
	reModifiers     = wordListRegexp(modifierWords, "")
	rePrepWords     = wordListRegexp(mergeLists(prepWords, stateWords, fillerWords), "")
	reContainers    = wordListRegexp(containerWords, `(?:\s+of)?`)
	reUnits         = wordListRegexp(unitWords, "")
	reEquipment     = wordListRegexp(equipmentWords, "")
	reOrAlternative = regexp.MustCompile(`\bor\s+\S+`)
	rePunct         = regexp.MustCompile(`[,;:()!?&*"'.’‘“”–—-]+`)

	varietalRules = buildVarietalRules()

	// junkSingleWords holds every single-token rule word; a line that is
	// nothing but one of these carries no ingredient.
	junkSingleWords = buildJunkSingleWords()
)

type varietalRule struct {
	contains string
	re       *regexp.Regexp
}

func buildVarietalRules() []varietalRule {
	rules := make([]varietalRule, 0, len(varietalPairs))
	for _, p := range varietalPairs {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(p.variety) + `\s+(` + regexp.QuoteMeta(p.base) + `(?:e?s)?)\b`)
		rules = append(rules, varietalRule{contains: p.variety, re: re})
	}
	return rules
}

func buildJunkSingleWords() map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range [][]string{prepWords, stateWords, fillerWords, modifierWords, containerWords, unitWords} {
		for _, w := range list {
			if !strings.ContainsAny(w, " -") {
				set[w] = struct{}{}
			}
		}
	}
	return set
}

// wordListRegexp builds a whole-word alternation. Longer entries sort first
// so "low-fat" wins over "low" and phrase entries win over their head words.
func wordListRegexp(words []string, tail string) *regexp.Regexp {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, w := range sorted {
		sorted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(sorted, "|") + `)` + tail + `\b`)
}

func mergeLists(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
