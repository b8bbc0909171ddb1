package canon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFolder decomposes, drops combining marks, and recomposes, so
// "jalapeño" and "jalapeno" normalize identically.
var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a raw ingredient line to its bare ingredient noun phrase:
// lowercase, diacritics folded, quantities, units, packaging, preparation and
// marketing language stripped, whitespace collapsed.
//
// It is total (any input yields a string, possibly empty) and stable under
// repeated application: the cleanup passes run until the string stops
// changing, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	prev, s := raw, normalizeOnce(raw)
	for s != prev {
		prev, s = s, normalizeOnce(s)
	}
	return s
}

// normalizeOnce applies the cleanup rules once, in order. Every rule either
// deletes text or turns punctuation into spaces, so repeated passes converge.
func normalizeOnce(in string) string {
	s := strings.ToLower(strings.TrimSpace(in))
	s = foldDiacritics(s)

	// Upstream parsers leave a stray plural "s" when splitting quantity
	// from noun ("s cans tomato sauce").
	for strings.HasPrefix(s, "s ") {
		s = s[2:]
	}

	s = reModifiers.ReplaceAllString(s, " ")
	s = collapseVarietals(s)
	s = rePrepWords.ReplaceAllString(s, " ")
	s = reContainers.ReplaceAllString(s, " ")
	s = stripParentheticals(s)
	s = reOrAlternative.ReplaceAllString(s, " ")
	s = reUnits.ReplaceAllString(s, " ")
	s = stripLeadingQuantity(s)
	s = rePunct.ReplaceAllString(s, " ")

	return strings.Join(trimEdgeStopwords(strings.Fields(s)), " ")
}

// trimEdgeStopwords drops stranded conjunctions and articles from both ends
// of the token list, leaving interior ones alone.
func trimEdgeStopwords(fields []string) []string {
	for len(fields) > 0 {
		if _, ok := edgeStopwords[fields[0]]; !ok {
			break
		}
		fields = fields[1:]
	}
	for len(fields) > 0 {
		if _, ok := edgeStopwords[fields[len(fields)-1]]; !ok {
			break
		}
		fields = fields[:len(fields)-1]
	}
	return fields
}

func foldDiacritics(s string) string {
	out, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return out
}

// collapseVarietals rewrites "<variety> <base>" to "<base>", keeping the
// base's plurality ("roma tomatoes" -> "tomatoes").
func collapseVarietals(s string) string {
	for _, r := range varietalRules {
		if !strings.Contains(s, r.contains) {
			continue
		}
		s = r.re.ReplaceAllString(s, "$1")
	}
	return s
}

// stripParentheticals removes balanced "(...)" groups entirely and truncates
// at a dangling "(".
func stripParenthetical(s string) (string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, false
	}
	end := strings.IndexByte(s[open:], ')')
	if end < 0 {
		return s[:open], false
	}
	return s[:open] + s[open+end+1:], true
}

func stripParentheticals(s string) string {
	for {
		next, again := stripParenthetical(s)
		s = next
		if !again {
			return s
		}
	}
}

// stripLeadingQuantity drops leading tokens that are purely numeric:
// integers, decimals, fractions (ASCII and Unicode), and ranges ("2-3").
func stripLeadingQuantity(s string) string {
	fields := strings.Fields(s)
	i := 0
	for i < len(fields) && isQuantityToken(fields[i]) {
		i++
	}
	if i == 0 {
		return s
	}
	return strings.Join(fields[i:], " ")
}

func isQuantityToken(tok string) bool {
	hasNumeral := false
	for _, r := range tok {
		switch {
		case unicode.IsDigit(r) || unicode.Is(unicode.No, r):
			hasNumeral = true
		case strings.ContainsRune("/.,x×%-", r):
		default:
			return false
		}
	}
	return hasNumeral
}
