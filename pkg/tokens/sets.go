package tokens

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Token set names, in load order. A set name is also the document path
// relative to the output root, without the ".json" extension.
const (
	SetColors        = "core/colors"
	SetTypography    = "core/typography"
	SetShadows       = "core/shadows"
	SetRadii         = "core/radii"
	SetSpacing       = "core/spacing"
	SetBreakpoints   = "core/breakpoints"
	SetSemanticDark  = "semantic/dark"
	SetSemanticLight = "semantic/light"
)

// Theme names and the documents describing them.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	ThemesDocument   = "$themes"
	MetadataDocument = "$metadata"
)

// CoreSets are enabled in every theme.
var CoreSets = []string{SetColors, SetTypography, SetShadows, SetRadii, SetSpacing, SetBreakpoints}

// SemanticSets maps each theme to its own semantic set, in theme order.
var SemanticSets = []struct {
	Theme string
	Set   string
}{
	{ThemeDark, SetSemanticDark},
	{ThemeLight, SetSemanticLight},
}

// Theme is a Tokens Studio theme entry.
type Theme struct {
	SelectedTokenSets *orderedmap.OrderedMap[string, string] `json:"selectedTokenSets"`
}

// Metadata is the $metadata document.
type Metadata struct {
	TokenSetOrder []string `json:"tokenSetOrder"`
}

// Themes builds the $themes document: each theme enables all core sets
// plus its own semantic set.
func Themes() *orderedmap.OrderedMap[string, Theme] {
	themes := orderedmap.New[string, Theme]()
	for _, s := range SemanticSets {
		sets := orderedmap.New[string, string]()
		for _, name := range CoreSets {
			sets.Set(name, "enabled")
		}
		sets.Set(s.Set, "enabled")
		themes.Set(s.Theme, Theme{SelectedTokenSets: sets})
	}
	return themes
}

// TokenSetOrder builds the $metadata document.
func TokenSetOrder() Metadata {
	order := make([]string, 0, len(CoreSets)+len(SemanticSets))
	order = append(order, CoreSets...)
	for _, s := range SemanticSets {
		order = append(order, s.Set)
	}
	return Metadata{TokenSetOrder: order}
}
