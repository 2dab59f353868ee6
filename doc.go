// Package csstokens converts the CSS custom properties of a design system
// stylesheet into W3C DTCG design token files that Tokens Studio can load
// (core colors, typography, shadows, radii, spacing, breakpoints, and the
// dark and light semantic themes).
//
// The CLI lives in cmd/css-tokens; this root package exposes the same
// pipeline as a Go API so that callers can run the conversion from their
// own build tooling.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named csstokens:
//
//	import "github.com/hellenic-development/css-tokens" // package csstokens
//
// # Quick start
//
//	result, err := csstokens.Run(csstokens.Options{
//	    Input:     "src/app/globals.css",
//	    OutputDir: "tokens",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d tokens\n", result.Tokens())
//
// # Input
//
// Only `--name: value;` declarations inside a `:root { ... }` block and a
// single class block (`.light { ... }` by default) are read. Colors are
// expected as space separated HSL triples such as `240 6% 7%` and are
// converted to hex; other values pass through unchanged. Every token has a
// built-in default, so a missing property never fails the run.
//
// # Output
//
//	tokens/
//	├── $themes.json
//	├── $metadata.json
//	├── core/{colors,typography,shadows,radii,spacing,breakpoints}.json
//	└── semantic/{dark,light}.json
//
// Files are 2-space indented JSON and keys keep their declaration order, so
// re-running on an unchanged stylesheet rewrites identical bytes.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package csstokens
