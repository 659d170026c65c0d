// Package classify assigns typographic categories to font names. A
// classification runs through three tiers in strict precedence order: a
// curated override mapping, family metadata keywords, and lexical
// heuristics over the name itself. The first tier that produces a
// non-empty set wins; tiers never mix.
package classify

import (
	"regexp"
	"strings"

	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// keywordClass groups substrings that imply a set of categories. The
// metadata and heuristic tiers share these classes; within a tier every
// matching class contributes, so hits are additive.
type keywordClass struct {
	words []string
	cats  []types.Category
}

var keywordClasses = []keywordClass{
	{
		words: []string{"mono", "courier", "code", "console", "term", "fixed", "menlo", "monaco"},
		cats:  []types.Category{types.Monospace},
	},
	{
		words: []string{"serif", "times", "georgia", "cambria", "palatino", "garamond", "roman"},
		cats:  []types.Category{types.Serif},
	},
	{
		words: []string{"sans", "arial", "helvetica", "segoe", "roboto", "verdana", "tahoma", "grotesk"},
		cats:  []types.Category{types.SansSerif},
	},
	{
		words: []string{"display", "poster", "impact", "headline", "stencil", "script", "decorative", "ornament"},
		cats:  []types.Category{types.Display},
	},
	{
		words: []string{"symbol", "wingdings", "webdings", "dingbat", "emoji", "icons", "awesome", "pictograph"},
		cats:  []types.Category{types.Symbol},
	},
}

// styleSuffixes are trailing weight/style tokens stripped before override
// lookup, so "Consolas Bold Italic" still hits the "consolas" entry.
var styleSuffixes = map[string]struct{}{
	"regular": {}, "bold": {}, "italic": {}, "oblique": {}, "light": {},
	"medium": {}, "thin": {}, "black": {}, "heavy": {}, "book": {},
	"semibold": {}, "demibold": {}, "extrabold": {}, "extralight": {},
	"ultralight": {}, "condensed": {}, "expanded": {}, "narrow": {},
}

// codeToken matches tokens that start with digits and continue with
// letters, the shape of barcode and OCR faces such as "3of9" or "2D Code".
var codeToken = regexp.MustCompile(`(^|\s)\d+[a-z]+`)

// Classifier maps a font name and optional family metadata to a non-empty
// category set.
type Classifier struct {
	overrides map[string]types.CategorySet
}

// New returns a classifier with the built-in override mapping.
func New() *Classifier {
	return &Classifier{overrides: builtinOverrides}
}

// NewWithOverrides returns a classifier whose override tier is the built-in
// mapping extended (and possibly shadowed) by extra entries. Extra keys are
// normalized the same way lookups are.
func NewWithOverrides(extra map[string]types.CategorySet) *Classifier {
	merged := make(map[string]types.CategorySet, len(builtinOverrides)+len(extra))
	for name, cats := range builtinOverrides {
		merged[name] = cats
	}
	for name, cats := range extra {
		if cats.Empty() {
			continue
		}
		merged[normalizeName(name)] = cats.Clone()
	}
	return &Classifier{overrides: merged}
}

// Classify is a total function: it never fails and never returns an empty
// set. Absence of any signal yields {unknown}.
func (c *Classifier) Classify(name, familyMetadata string) types.CategorySet {
	tiers := []func() types.CategorySet{
		func() types.CategorySet { return c.overrideTier(name) },
		func() types.CategorySet { return metadataTier(familyMetadata) },
		func() types.CategorySet { return heuristicTier(name) },
	}
	for _, tier := range tiers {
		if cats := tier(); !cats.Empty() {
			return cats
		}
	}
	return types.NewCategorySet(types.Unknown)
}

// overrideTier returns exactly the curated set for the normalized name, or
// an empty set when the name is not in the mapping.
func (c *Classifier) overrideTier(name string) types.CategorySet {
	if cats, ok := c.overrides[normalizeName(name)]; ok {
		return cats.Clone()
	}
	return types.CategorySet{}
}

// metadataTier unions every keyword class matching the family metadata.
func metadataTier(familyMetadata string) types.CategorySet {
	if strings.TrimSpace(familyMetadata) == "" {
		return types.CategorySet{}
	}
	return matchKeywordClasses(strings.ToLower(familyMetadata))
}

// heuristicTier applies the shared keyword classes to the name itself plus
// secondary lexical signals.
func heuristicTier(name string) types.CategorySet {
	lower := strings.ToLower(name)
	cats := matchKeywordClasses(lower)
	if codeToken.MatchString(lower) {
		cats.Add(types.Symbol)
	}
	return cats
}

func matchKeywordClasses(lower string) types.CategorySet {
	cats := types.CategorySet{}
	for _, class := range keywordClasses {
		for _, word := range class.words {
			if !strings.Contains(lower, word) {
				continue
			}
			if word == "serif" && !hasStandaloneSerif(lower) {
				continue
			}
			for _, c := range class.cats {
				cats.Add(c)
			}
			break
		}
	}
	return cats
}

// hasStandaloneSerif reports whether "serif" appears outside of a
// "sans serif" / "sans-serif" compound, so sans faces are not also tagged
// serif.
func hasStandaloneSerif(lower string) bool {
	stripped := strings.NewReplacer("sans-serif", "", "sans serif", "", "sansserif", "").Replace(lower)
	return strings.Contains(stripped, "serif")
}

// normalizeName lowercases the name, collapses separators, and strips
// trailing weight/style tokens.
func normalizeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.NewReplacer("-", " ", "_", " ").Replace(lower)
	tokens := strings.Fields(lower)
	for len(tokens) > 1 {
		if _, ok := styleSuffixes[tokens[len(tokens)-1]]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}
