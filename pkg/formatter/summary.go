package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	csstokens "github.com/hellenic-development/css-tokens"
	"github.com/hellenic-development/css-tokens/pkg/tokens"
)

// setInfo labels a token set in the summary.
type setInfo struct {
	label       string // used in the token count list
	description string // used in the file list
}

var setInfos = map[string]setInfo{
	tokens.ThemesDocument:   {"", "dark/light theme configuration"},
	tokens.MetadataDocument: {"", "Tokens Studio metadata"},
	tokens.SetColors:        {"Core colors", "brand + chart colors"},
	tokens.SetTypography:    {"Typography", "fonts, sizes, weights, line heights, letter spacing"},
	tokens.SetShadows:       {"Shadows", "elevation levels"},
	tokens.SetRadii:         {"Radii", "border radius tokens"},
	tokens.SetSpacing:       {"Spacing", "spacing scale"},
	tokens.SetBreakpoints:   {"Breakpoints", "responsive breakpoints"},
	tokens.SetSemanticDark:  {"Dark semantic", "dark theme semantic colors"},
	tokens.SetSemanticLight: {"Light semantic", "light theme semantic colors"},
}

const rule = "=================================================="

// Summary renders the end-of-run report: created files, token counts and
// the steps to get the tokens into Figma.
func Summary(result *csstokens.Result) string {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	sb.WriteString("TOKEN EXTRACTION COMPLETE\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString(fmt.Sprintf("Output directory: %s\n\n", result.OutputDir))

	sb.WriteString("Files created:\n")
	for _, f := range result.Files {
		line := fmt.Sprintf("  - %s.json", f.Name)
		if info, ok := setInfos[f.Name]; ok {
			line += fmt.Sprintf(" (%s)", info.description)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nTotal tokens extracted:\n")
	for _, f := range result.Files {
		info := setInfos[f.Name]
		if info.label == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("  - %s: %d\n", info.label, f.Tokens))
	}
	sb.WriteString(fmt.Sprintf("\nGrand total: %d tokens\n", result.Tokens()))

	sb.WriteString("\nNext steps:\n")
	sb.WriteString(fmt.Sprintf("  1. Push %s/ folder to GitHub repository\n", filepath.Base(result.OutputDir)))
	sb.WriteString("  2. Connect Tokens Studio to GitHub repo\n")
	sb.WriteString("  3. Import tokens into Figma\n")

	return sb.String()
}
