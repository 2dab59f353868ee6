package stylesheet

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// RootSelector selects the `:root` block, which holds the default (dark) theme.
const RootSelector = ":root"

// Properties maps a custom property name (without the leading "--") to its
// trimmed declared value.
type Properties map[string]string

var (
	rootBlockRe   = regexp.MustCompile(`:root\s*\{([^}]+)\}`)
	declarationRe = regexp.MustCompile(`--([a-zA-Z0-9-]+)\s*:\s*([^;]+);`)
)

// Load reads the stylesheet at path and returns its contents.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read stylesheet %q: %w", path, err)
	}
	return string(data), nil
}

// Extract collects the custom properties declared in every block matching selector.
// Selector is either RootSelector or a bare class name such as "light".
// Blocks are merged in source order and the last declaration of a name wins.
// A selector with no matching block yields an empty map.
func Extract(css, selector string) Properties {
	props := make(Properties)

	for _, m := range blockPattern(selector).FindAllStringSubmatch(css, -1) {
		for _, decl := range declarationRe.FindAllStringSubmatch(m[1], -1) {
			props[decl[1]] = strings.TrimSpace(decl[2])
		}
	}

	return props
}

func blockPattern(selector string) *regexp.Regexp {
	if selector == RootSelector {
		return rootBlockRe
	}
	return regexp.MustCompile(`\.` + regexp.QuoteMeta(selector) + `\s*\{([^}]+)\}`)
}

// Lookup returns the value declared for name, or def when the property is absent.
func (p Properties) Lookup(name, def string) string {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}
