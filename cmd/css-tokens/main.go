package main

import (
	"fmt"
	"os"

	csstokens "github.com/hellenic-development/css-tokens"
	"github.com/hellenic-development/css-tokens/pkg/config"
	"github.com/hellenic-development/css-tokens/pkg/formatter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = csstokens.Version

var (
	configFile    string
	inputFile     string
	outputDir     string
	lightSelector string
	markdownFile  string
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "css-tokens",
		Short: "Convert CSS custom properties to design tokens",
		Long:  "A tool to convert the CSS custom properties of a stylesheet (HSL colors, shadows, dimensions) into W3C DTCG token files for Tokens Studio",
		Args:  cobra.NoArgs,
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file (default: ./"+config.FileName+" if present)")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", config.DefaultInput, "Stylesheet to read")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", config.DefaultOutputDir, "Output directory for token files")
	rootCmd.Flags().StringVar(&lightSelector, "light-selector", config.DefaultLightSelector, "Class selector holding the light theme")
	rootCmd.Flags().StringVarP(&markdownFile, "markdown", "m", "", "Also write a markdown token reference to this file (optional)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("css-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 CSS Token Extractor")
	cyan.Println("======================")
	cyan.Println()

	logger := &cliLogger{}

	cfg, source, err := config.Resolve(configFile)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if source != "" {
		logger.Infof("Using config: %s", source)
	}

	// Explicit flags win over the config file.
	flags := cmd.Flags()
	if flags.Changed("input") || source == "" {
		cfg.Input.Path = inputFile
	}
	if flags.Changed("output") || source == "" {
		cfg.Output.Dir = outputDir
	}
	if flags.Changed("light-selector") || source == "" {
		cfg.Input.LightSelector = lightSelector
	}

	opts := csstokens.Options{
		Input:         cfg.Input.Path,
		OutputDir:     cfg.Output.Dir,
		LightSelector: cfg.Input.LightSelector,
		Logger:        logger,
	}

	result, err := csstokens.Run(opts)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	if markdownFile != "" {
		green.Printf("\n💾 Writing to %s... ", markdownFile)
		err = os.WriteFile(markdownFile, []byte(formatter.ToMarkdown(result.Documents, result.Input)), 0644)
		if err != nil {
			red.Printf("✗\n")
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Println("✓")
	}

	fmt.Println()
	cyan.Print(formatter.Summary(result))

	green.Printf("\n✨ Successfully extracted %d design tokens to %s\n\n", result.Tokens(), result.OutputDir)
}

// cliLogger implements csstokens.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
