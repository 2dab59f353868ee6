package tokens

// Default binds a token to the custom property it is read from and the raw
// value used when the stylesheet does not declare that property.
// An empty Key means the camelCase form of Property.
type Default struct {
	Key         string
	Property    string
	Value       string
	Description string
}

// Literal is a token that is never read from the stylesheet.
type Literal struct {
	Key         string
	Value       string
	Description string
}

// BrandColorDefaults feed the "sana" group of core/colors.
var BrandColorDefaults = []Default{
	{"neon", "sana-neon", "72 100% 50%", "Sana Neon Lime - Primary Brand"},
	{"royal", "sana-royal", "220 100% 48%", "Sana Royal Blue"},
	{"fuschia", "sana-fuschia", "320 98% 47%", "Sana Fuschia Pink"},
	{"midnight", "sana-midnight", "226 74% 10%", "Sana Midnight Blue"},
}

// ChartColorDefaults feed the "chart" group of core/colors.
var ChartColorDefaults = []Default{
	{"1", "chart-1", "72 100% 50%", "Chart Color 1 - Neon Lime"},
	{"2", "chart-2", "220 100% 55%", "Chart Color 2 - Blue"},
	{"3", "chart-3", "320 98% 55%", "Chart Color 3 - Pink"},
	{"4", "chart-4", "38 92% 60%", "Chart Color 4 - Orange"},
	{"5", "chart-5", "142 76% 45%", "Chart Color 5 - Green"},
}

// ShadowDefaults are the elevation levels of core/shadows. Key is the level name.
var ShadowDefaults = []Default{
	{Key: "2xs", Property: "shadow-2xs", Value: "0px 1px 2px 0px hsl(0 0% 0% / 0.15)"},
	{Key: "xs", Property: "shadow-xs", Value: "0px 1px 2px 0px hsl(0 0% 0% / 0.18)"},
	{Key: "sm", Property: "shadow-sm", Value: "0px 1px 3px 0px hsl(0 0% 0% / 0.24), 0px 1px 2px -1px hsl(0 0% 0% / 0.24)"},
	{Key: "md", Property: "shadow-md", Value: "0px 4px 6px -1px hsl(0 0% 0% / 0.24), 0px 2px 4px -2px hsl(0 0% 0% / 0.24)"},
	{Key: "lg", Property: "shadow-lg", Value: "0px 10px 15px -3px hsl(0 0% 0% / 0.24), 0px 4px 6px -4px hsl(0 0% 0% / 0.24)"},
	{Key: "xl", Property: "shadow-xl", Value: "0px 20px 25px -5px hsl(0 0% 0% / 0.3), 0px 8px 10px -6px hsl(0 0% 0% / 0.3)"},
	{Key: "2xl", Property: "shadow-2xl", Value: "0px 25px 50px -12px hsl(0 0% 0% / 0.5)"},
}

// SuccessForeground is emitted as-is in both semantic themes; the stylesheet
// declares no property for it.
var SuccessForeground = Token{Value: "#ffffff", Type: TypeColor, Description: "Success text"}

// successForegroundAfter is the role SuccessForeground follows in semantic documents.
const successForegroundAfter = "success"

// DarkSemanticDefaults are read from the :root block.
var DarkSemanticDefaults = []Default{
	{Property: "background", Value: "240 6% 7%", Description: "Page background"},
	{Property: "foreground", Value: "0 0% 91%", Description: "Primary text"},
	{Property: "card", Value: "220 4% 12%", Description: "Card background"},
	{Property: "card-foreground", Value: "0 0% 91%", Description: "Card text"},
	{Property: "popover", Value: "220 4% 12%", Description: "Popover background"},
	{Property: "popover-foreground", Value: "0 0% 91%", Description: "Popover text"},
	{Property: "primary", Value: "72 100% 50%", Description: "Primary action"},
	{Property: "primary-foreground", Value: "240 6% 7%", Description: "Text on primary"},
	{Property: "secondary", Value: "216 5% 15%", Description: "Secondary background"},
	{Property: "secondary-foreground", Value: "0 0% 91%", Description: "Secondary text"},
	{Property: "muted", Value: "216 5% 15%", Description: "Muted background"},
	{Property: "muted-foreground", Value: "0 0% 55%", Description: "Muted text"},
	{Property: "accent", Value: "240 2% 21%", Description: "Accent/tertiary"},
	{Property: "accent-foreground", Value: "0 0% 91%", Description: "Accent text"},
	{Property: "destructive", Value: "4 100% 59%", Description: "Destructive/error"},
	{Property: "destructive-foreground", Value: "0 0% 100%", Description: "Destructive text"},
	{Property: "success", Value: "142 69% 50%", Description: "Success state"},
	{Property: "warning", Value: "38 92% 50%", Description: "Warning state"},
	{Property: "warning-foreground", Value: "240 6% 7%", Description: "Warning text"},
	{Property: "border", Value: "220 4% 18%", Description: "Border color"},
	{Property: "input", Value: "220 4% 18%", Description: "Input border"},
	{Property: "ring", Value: "72 100% 50%", Description: "Focus ring"},
	{Property: "sidebar", Value: "220 4% 12%", Description: "Sidebar background"},
	{Property: "sidebar-foreground", Value: "0 0% 91%", Description: "Sidebar text"},
	{Property: "sidebar-primary", Value: "72 100% 50%", Description: "Sidebar primary"},
	{Property: "sidebar-accent", Value: "240 2% 21%", Description: "Sidebar accent"},
	{Property: "sidebar-border", Value: "220 4% 18%", Description: "Sidebar border"},
}

// LightSemanticDefaults are read from the light class block.
var LightSemanticDefaults = []Default{
	{Property: "background", Value: "0 0% 100%", Description: "Page background"},
	{Property: "foreground", Value: "200 10% 10%", Description: "Primary text"},
	{Property: "card", Value: "0 0% 98%", Description: "Card background"},
	{Property: "card-foreground", Value: "200 10% 10%", Description: "Card text"},
	{Property: "popover", Value: "0 0% 98%", Description: "Popover background"},
	{Property: "popover-foreground", Value: "200 10% 10%", Description: "Popover text"},
	{Property: "primary", Value: "72 100% 50%", Description: "Primary action"},
	{Property: "primary-foreground", Value: "200 10% 8%", Description: "Text on primary"},
	{Property: "secondary", Value: "0 0% 96%", Description: "Secondary background"},
	{Property: "secondary-foreground", Value: "200 10% 20%", Description: "Secondary text"},
	{Property: "muted", Value: "0 0% 96%", Description: "Muted background"},
	{Property: "muted-foreground", Value: "0 0% 45%", Description: "Muted text"},
	{Property: "accent", Value: "72 100% 50%", Description: "Accent/tertiary"},
	{Property: "accent-foreground", Value: "200 10% 8%", Description: "Accent text"},
	{Property: "destructive", Value: "0 84% 60%", Description: "Destructive/error"},
	{Property: "destructive-foreground", Value: "0 0% 100%", Description: "Destructive text"},
	{Property: "success", Value: "142 76% 36%", Description: "Success state"},
	{Property: "warning", Value: "38 92% 50%", Description: "Warning state"},
	{Property: "warning-foreground", Value: "200 10% 10%", Description: "Warning text"},
	{Property: "border", Value: "0 0% 90%", Description: "Border color"},
	{Property: "input", Value: "0 0% 90%", Description: "Input border"},
	{Property: "ring", Value: "72 100% 50%", Description: "Focus ring"},
	{Property: "sidebar", Value: "0 0% 98%", Description: "Sidebar background"},
	{Property: "sidebar-foreground", Value: "200 10% 10%", Description: "Sidebar text"},
	{Property: "sidebar-primary", Value: "72 100% 50%", Description: "Sidebar primary"},
	{Property: "sidebar-accent", Value: "0 0% 94%", Description: "Sidebar accent"},
	{Property: "sidebar-border", Value: "0 0% 90%", Description: "Sidebar border"},
}

// Typography tables.
var (
	FontFamilies = []Literal{
		{"sans", "Inter, -apple-system, BlinkMacSystemFont, system-ui, sans-serif", "Primary sans-serif font"},
		{"mono", "IBM Plex Mono, Monaco, Cascadia Code, monospace", "Monospace font for code"},
		{"serif", "Georgia, serif", "Serif font"},
	}

	FontSizes = []Literal{
		{"h1", "34px", "Heading 1 - 2.125rem"},
		{"h2", "24px", "Heading 2 - 1.5rem"},
		{"h3", "20px", "Heading 3 - 1.25rem"},
		{"body", "14px", "Body text - 0.875rem"},
		{"small", "12px", "Small text - 0.75rem"},
		{"label", "13px", "Label text - 0.8125rem"},
	}

	FontWeights = []Literal{
		{Key: "light", Value: "300"},
		{Key: "regular", Value: "400"},
		{Key: "medium", Value: "500"},
		{Key: "semibold", Value: "600"},
		{Key: "bold", Value: "700"},
	}

	LineHeights = []Literal{
		{"h1", "1.15", "Heading 1 line height"},
		{"h2", "1.25", "Heading 2 line height"},
		{"h3", "1.3", "Heading 3 line height"},
		{"body", "1.5", "Body line height"},
		{"small", "1.3", "Small text line height"},
	}

	LetterSpacings = []Literal{
		{Key: "tighter", Value: "-0.05em"},
		{Key: "tight", Value: "-0.025em"},
		{Key: "normal", Value: "0em"},
		{Key: "wide", Value: "0.025em"},
		{Key: "wider", Value: "0.05em"},
		{Key: "widest", Value: "0.1em"},
	}
)

// RadiusScale is core/radii, derived from a 0.5rem base radius.
var RadiusScale = []Literal{
	{"base", "8px", "Base radius - 0.5rem"},
	{"sm", "4px", "Small radius - base - 4px"},
	{"md", "6px", "Medium radius - base - 2px"},
	{"lg", "8px", "Large radius - same as base"},
	{"xl", "12px", "Extra large radius - base + 4px"},
	{"2xl", "16px", "2XL radius"},
	{"full", "9999px", "Full/pill radius"},
}

// SpacingScale is core/spacing on a 4px base unit.
var SpacingScale = []Literal{
	{Key: "0", Value: "0px"},
	{Key: "0.5", Value: "2px"},
	{Key: "1", Value: "4px", Description: "Base unit"},
	{Key: "1.5", Value: "6px"},
	{Key: "2", Value: "8px"},
	{Key: "2.5", Value: "10px"},
	{Key: "3", Value: "12px"},
	{Key: "4", Value: "16px"},
	{Key: "5", Value: "20px"},
	{Key: "6", Value: "24px"},
	{Key: "8", Value: "32px"},
	{Key: "10", Value: "40px"},
	{Key: "12", Value: "48px"},
	{Key: "16", Value: "64px"},
	{Key: "20", Value: "80px"},
	{Key: "24", Value: "96px"},
}

// BreakpointScale is core/breakpoints.
var BreakpointScale = []Literal{
	{"sm", "640px", "Mobile breakpoint"},
	{"md", "768px", "Tablet breakpoint"},
	{"lg", "1024px", "Desktop breakpoint"},
	{"xl", "1280px", "Wide desktop breakpoint"},
	{"2xl", "1536px", "Ultra wide breakpoint"},
}
