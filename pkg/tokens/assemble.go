package tokens

import (
	"strings"

	"github.com/hellenic-development/css-tokens/pkg/stylesheet"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Colors assembles core/colors from the :root properties.
func Colors(props stylesheet.Properties) *Group {
	return NewGroup().
		AddGroup("sana", colorGroup(props, BrandColorDefaults)).
		AddGroup("chart", colorGroup(props, ChartColorDefaults))
}

// Typography assembles core/typography. It is not read from the stylesheet.
func Typography() *Group {
	return NewGroup().
		AddGroup("fontFamily", literalGroup(FontFamilies, fontFamily)).
		AddGroup("fontSize", literalGroup(FontSizes, Dimension)).
		AddGroup("fontWeight", literalGroup(FontWeights, func(v, _ string) Token { return fontWeight(v) })).
		AddGroup("lineHeight", literalGroup(LineHeights, number)).
		AddGroup("letterSpacing", literalGroup(LetterSpacings, Dimension))
}

// Shadows assembles core/shadows from the :root properties.
func Shadows(props stylesheet.Properties) *Group {
	g := NewGroup()
	for _, d := range ShadowDefaults {
		g.Add(d.Key, Shadow(d.Key, props.Lookup(d.Property, d.Value)))
	}
	return g
}

// Radii assembles core/radii.
func Radii() *Group {
	return literalGroup(RadiusScale, Dimension)
}

// Spacing assembles core/spacing.
func Spacing() *Group {
	return literalGroup(SpacingScale, Dimension)
}

// Breakpoints assembles core/breakpoints.
func Breakpoints() *Group {
	return literalGroup(BreakpointScale, Dimension)
}

// SemanticDark assembles semantic/dark from the :root properties.
func SemanticDark(props stylesheet.Properties) *Group {
	return semanticGroup(props, DarkSemanticDefaults)
}

// SemanticLight assembles semantic/light from the light block properties.
func SemanticLight(props stylesheet.Properties) *Group {
	return semanticGroup(props, LightSemanticDefaults)
}

func colorGroup(props stylesheet.Properties, defaults []Default) *Group {
	g := NewGroup()
	for _, d := range defaults {
		g.Add(d.key(), Color(props.Lookup(d.Property, d.Value), d.Description))
	}
	return g
}

func semanticGroup(props stylesheet.Properties, defaults []Default) *Group {
	g := NewGroup()
	for _, d := range defaults {
		key := d.key()
		g.Add(key, Color(props.Lookup(d.Property, d.Value), d.Description))
		if key == successForegroundAfter {
			g.Add(key+"Foreground", SuccessForeground)
		}
	}
	return g
}

func literalGroup(values []Literal, build func(value, description string) Token) *Group {
	g := NewGroup()
	for _, l := range values {
		g.Add(l.Key, build(l.Value, l.Description))
	}
	return g
}

func (d Default) key() string {
	if d.Key != "" {
		return d.Key
	}
	return CamelCase(d.Property)
}

// CamelCase converts a kebab-case property name such as "sidebar-primary"
// into a token key such as "sidebarPrimary".
func CamelCase(property string) string {
	parts := strings.Split(property, "-")
	title := cases.Title(language.Und)
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		sb.WriteString(title.String(p))
	}
	return sb.String()
}
