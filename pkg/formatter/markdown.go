package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/css-tokens/pkg/emitter"
	"github.com/hellenic-development/css-tokens/pkg/tokens"
)

// ToMarkdown renders the token documents as a markdown reference: one table
// per token set listing the dotted token path, value, type and description.
// Documents that are not token groups ($themes, $metadata) are skipped.
func ToMarkdown(docs []emitter.Document, source string) string {
	var sb strings.Builder

	sb.WriteString("# Design Tokens\n\n")
	sb.WriteString(fmt.Sprintf("Generated from `%s`. Do not edit by hand; re-run css-tokens instead.\n\n", source))

	for _, doc := range docs {
		g, ok := doc.Body.(*tokens.Group)
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", doc.Name))
		sb.WriteString("| Token | Value | Type | Description |\n")
		sb.WriteString("|-------|-------|------|-------------|\n")
		for _, e := range g.Flatten() {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n",
				strings.Join(e.Path, "."),
				valueCell(e.Token),
				e.Token.Type,
				escapeCell(e.Token.Description)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// valueCell wraps hex colors in a code span.
func valueCell(t tokens.Token) string {
	if t.Type == tokens.TypeColor && strings.HasPrefix(t.Value, "#") {
		return fmt.Sprintf("`%s`", t.Value)
	}
	return escapeCell(t.Value)
}

// escapeCell keeps values containing pipes from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
