package csstokens

import (
	"fmt"

	"github.com/hellenic-development/css-tokens/pkg/config"
	"github.com/hellenic-development/css-tokens/pkg/emitter"
	"github.com/hellenic-development/css-tokens/pkg/stylesheet"
	"github.com/hellenic-development/css-tokens/pkg/tokens"
)

// Version is the css-tokens release.
const Version = "1.0.0"

// Options configures the extraction.
type Options struct {
	Input         string // stylesheet path, default "src/app/globals.css"
	OutputDir     string // token root, default "tokens"
	LightSelector string // class holding the light theme, default "light"
	Logger        Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// File describes one written token document.
type File struct {
	Name   string // token set name, e.g. "core/colors" or "$themes"
	Path   string
	Tokens int // number of tokens in the document; 0 for $themes and $metadata
}

// Result contains the extraction output.
type Result struct {
	Input     string
	OutputDir string
	DarkVars  int // custom properties found in :root
	LightVars int // custom properties found in the light block
	Files     []File
	Documents []emitter.Document
}

// Tokens returns the number of tokens across all written documents.
func (r *Result) Tokens() int {
	n := 0
	for _, f := range r.Files {
		n += f.Tokens
	}
	return n
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run reads the stylesheet, converts its custom properties to DTCG token
// documents and writes them under OutputDir. Nothing is written when the
// stylesheet cannot be read.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Input == "" {
		opts.Input = config.DefaultInput
	}
	if opts.OutputDir == "" {
		opts.OutputDir = config.DefaultOutputDir
	}
	if opts.LightSelector == "" {
		opts.LightSelector = config.DefaultLightSelector
	}

	opts.logInfo("Reading CSS from: %s", opts.Input)
	css, err := stylesheet.Load(opts.Input)
	if err != nil {
		return nil, err
	}

	darkVars := stylesheet.Extract(css, stylesheet.RootSelector)
	lightVars := stylesheet.Extract(css, opts.LightSelector)

	opts.logInfo("Found %d dark mode variables", len(darkVars))
	opts.logInfo("Found %d light mode variables", len(lightVars))
	if len(darkVars) == 0 {
		opts.logWarn("No :root block found, core and dark tokens use defaults")
	}
	if len(lightVars) == 0 {
		opts.logWarn("No .%s block found, light tokens use defaults", opts.LightSelector)
	}

	docs := Documents(darkVars, lightVars)

	result := &Result{
		Input:     opts.Input,
		OutputDir: opts.OutputDir,
		DarkVars:  len(darkVars),
		LightVars: len(lightVars),
		Documents: docs,
	}

	w := emitter.New(opts.OutputDir)
	err = w.WriteAll(docs, func(doc emitter.Document, path string) {
		opts.logInfo("Created: %s.json", doc.Name)
		result.Files = append(result.Files, File{
			Name:   doc.Name,
			Path:   path,
			Tokens: countTokens(doc.Body),
		})
	})
	if err != nil {
		return result, fmt.Errorf("write tokens: %w", err)
	}

	return result, nil
}

// Documents assembles every output document, in write order, from the
// properties of the :root block and the light block.
func Documents(dark, light stylesheet.Properties) []emitter.Document {
	return []emitter.Document{
		{Name: tokens.SetColors, Body: tokens.Colors(dark)},
		{Name: tokens.SetTypography, Body: tokens.Typography()},
		{Name: tokens.SetShadows, Body: tokens.Shadows(dark)},
		{Name: tokens.SetRadii, Body: tokens.Radii()},
		{Name: tokens.SetSpacing, Body: tokens.Spacing()},
		{Name: tokens.SetBreakpoints, Body: tokens.Breakpoints()},
		{Name: tokens.SetSemanticDark, Body: tokens.SemanticDark(dark)},
		{Name: tokens.SetSemanticLight, Body: tokens.SemanticLight(light)},
		{Name: tokens.ThemesDocument, Body: tokens.Themes()},
		{Name: tokens.MetadataDocument, Body: tokens.TokenSetOrder()},
	}
}

func countTokens(body any) int {
	if g, ok := body.(*tokens.Group); ok {
		return g.Count()
	}
	return 0
}
