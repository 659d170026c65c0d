package classify

import "github.com/solarbyte-dev/fuzzyfont/pkg/types"

// builtinOverrides maps normalized font names (lowercase, weight/style
// suffixes stripped) to their curated category sets. Popular fonts land
// here because naive heuristics frequently get them wrong: "Consolas"
// carries no lexical hint of monospace, and "Comic Sans MS" would otherwise
// classify as plain sans-serif.
var builtinOverrides = map[string]types.CategorySet{
	// Monospace
	"consolas":          types.NewCategorySet(types.Monospace),
	"fira code":         types.NewCategorySet(types.Monospace),
	"ubuntu mono":       types.NewCategorySet(types.Monospace),
	"source code pro":   types.NewCategorySet(types.Monospace),
	"inconsolata":       types.NewCategorySet(types.Monospace),
	"menlo":             types.NewCategorySet(types.Monospace),
	"monaco":            types.NewCategorySet(types.Monospace),
	"hack":              types.NewCategorySet(types.Monospace),
	"jetbrains mono":    types.NewCategorySet(types.Monospace),
	"cascadia code":     types.NewCategorySet(types.Monospace),
	"cascadia mono":     types.NewCategorySet(types.Monospace),
	"sf mono":           types.NewCategorySet(types.Monospace),
	"ibm plex mono":     types.NewCategorySet(types.Monospace),
	"liberation mono":   types.NewCategorySet(types.Monospace),
	"dejavu sans mono":  types.NewCategorySet(types.Monospace),
	"roboto mono":       types.NewCategorySet(types.Monospace),
	// Courier faces are monospace with slab-serif letterforms.
	"courier":     types.NewCategorySet(types.Monospace, types.Serif),
	"courier new": types.NewCategorySet(types.Monospace, types.Serif),

	// Sans-serif
	"roboto":           types.NewCategorySet(types.SansSerif),
	"open sans":        types.NewCategorySet(types.SansSerif),
	"lato":             types.NewCategorySet(types.SansSerif),
	"noto sans":        types.NewCategorySet(types.SansSerif),
	"arial":            types.NewCategorySet(types.SansSerif),
	"helvetica":        types.NewCategorySet(types.SansSerif),
	"helvetica neue":   types.NewCategorySet(types.SansSerif),
	"segoe ui":         types.NewCategorySet(types.SansSerif),
	"verdana":          types.NewCategorySet(types.SansSerif),
	"tahoma":           types.NewCategorySet(types.SansSerif),
	"calibri":          types.NewCategorySet(types.SansSerif),
	"ubuntu":           types.NewCategorySet(types.SansSerif),
	"liberation sans":  types.NewCategorySet(types.SansSerif),
	"dejavu sans":      types.NewCategorySet(types.SansSerif),
	"inter":            types.NewCategorySet(types.SansSerif),
	"source sans pro":  types.NewCategorySet(types.SansSerif),

	// Serif
	"times new roman":  types.NewCategorySet(types.Serif),
	"times":            types.NewCategorySet(types.Serif),
	"georgia":          types.NewCategorySet(types.Serif),
	"cambria":          types.NewCategorySet(types.Serif),
	"palatino":         types.NewCategorySet(types.Serif),
	"garamond":         types.NewCategorySet(types.Serif),
	"noto serif":       types.NewCategorySet(types.Serif),
	"liberation serif": types.NewCategorySet(types.Serif),
	"dejavu serif":     types.NewCategorySet(types.Serif),
	"merriweather":     types.NewCategorySet(types.Serif),

	// Display / decorative
	"impact":        types.NewCategorySet(types.Display),
	"stencil":       types.NewCategorySet(types.Display),
	"comic sans ms": types.NewCategorySet(types.Display, types.SansSerif),
	"papyrus":       types.NewCategorySet(types.Display),
	"lobster":       types.NewCategorySet(types.Display),

	// Symbol / emoji
	"wingdings":        types.NewCategorySet(types.Symbol),
	"webdings":         types.NewCategorySet(types.Symbol),
	"zapf dingbats":    types.NewCategorySet(types.Symbol),
	"marlett":          types.NewCategorySet(types.Symbol),
	"symbola":          types.NewCategorySet(types.Symbol),
	"emoji one":        types.NewCategorySet(types.Symbol),
	"noto color emoji": types.NewCategorySet(types.Symbol),
	"apple color emoji": types.NewCategorySet(types.Symbol),
	"segoe ui emoji":   types.NewCategorySet(types.Symbol),
	"segoe ui symbol":  types.NewCategorySet(types.Symbol),
	"font awesome":     types.NewCategorySet(types.Symbol),
	"material icons":   types.NewCategorySet(types.Symbol),
}
