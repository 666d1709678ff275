// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nokout/wsdl2schema/internal/catalog"
	"github.com/nokout/wsdl2schema/internal/cmdctx"
	"github.com/nokout/wsdl2schema/internal/config"
	"github.com/nokout/wsdl2schema/internal/fetch"
	"github.com/nokout/wsdl2schema/internal/model"
	"github.com/nokout/wsdl2schema/internal/prompts"
	"github.com/nokout/wsdl2schema/internal/render"
	"github.com/nokout/wsdl2schema/internal/xsdgen"

	// Import renderers to auto-register.
	_ "github.com/nokout/wsdl2schema/internal/render/gotypes"
	_ "github.com/nokout/wsdl2schema/internal/render/individual"
	_ "github.com/nokout/wsdl2schema/internal/render/unified"
)

type generateOptions struct {
	rootModel  string
	outputDir  string
	format     string
	generator  string
	configPath string
	keepTemp   bool
	verbose    bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <input>",
		Short: "Generate JSON Schema from a WSDL/XSD file or URL",
		Long: fmt.Sprintf(`Generate schema documents from a WSDL/XSD input.

The input is handed to the external record generator, the generated
record types are resolved into a model graph, and the chosen format is
rendered from it.

Available formats: %s`, strings.Join(render.Available(), ", ")),
		Example: `  # Unified schema with Order as root
  wsdl2schema generate order.xsd --root-model Order

  # Remote WSDL
  wsdl2schema generate https://example.com/service?wsdl --root-model Request

  # One schema document per type
  wsdl2schema generate order.xsd --format individual

  # Keep the generator temp directory for debugging
  wsdl2schema generate order.xsd --root-model Order --keep-temp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rootModel, "root-model", "r", "", "Name of the root record type")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Output directory (default: output/<input name>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(render.Available(), ", ")))
	cmd.Flags().StringVar(&opts.generator, "generator", "", "External generator command (default: "+xsdgen.DefaultGenerator+")")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a configuration file (YAML or TOML)")
	cmd.Flags().BoolVar(&opts.keepTemp, "keep-temp", false, "Keep the generator temp directory")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose debug output")

	return cmd
}

func runGenerate(cmd *cobra.Command, input string, opts *generateOptions) error {
	cfg, err := resolveConfig(cmd, opts.configPath)
	if err != nil {
		return err
	}
	applyConfig(opts, cfg)

	if opts.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if opts.format == "" {
		opts.format = "unified"
	}
	renderer, err := render.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(render.Available(), ", "))
	}

	outDir := opts.outputDir
	if outDir == "" {
		outDir = filepath.Join("output", inputStem(input))
	}

	// Remote inputs are fetched before the generator sees them.
	if fetch.IsURL(input) {
		downloadDir, err := os.MkdirTemp("", "wsdl2schema-download-*")
		if err != nil {
			return fmt.Errorf("failed to create download directory: %w", err)
		}
		defer os.RemoveAll(downloadDir) //nolint:errcheck
		local, err := fetch.Download(cmd.Context(), input, downloadDir)
		if err != nil {
			return err
		}
		fmt.Printf("Downloaded %s\n", input)
		input = local
	} else {
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("input file not found: %s", input)
		}
		ext := strings.ToLower(filepath.Ext(input))
		if ext != ".xsd" && ext != ".wsdl" {
			slog.Warn("input extension is not .xsd or .wsdl, proceeding anyway", "input", input)
		}
	}

	fmt.Printf("Generating record types from %s...\n", filepath.Base(input))
	gen, err := xsdgen.Generate(cmd.Context(), input, xsdgen.Options{
		Command:  opts.generator,
		KeepTemp: opts.keepTemp,
	})
	if err != nil {
		return err
	}
	defer gen.Cleanup()

	cat, err := catalog.Load(os.DirFS(gen.SourceDir))
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d definitions\n", cat.Len())

	models, err := model.Build(cat)
	if err != nil {
		return err
	}

	root := opts.rootModel
	if root == "" && opts.format != "individual" {
		names := make([]string, 0, len(models))
		for name := range models {
			names = append(names, name)
		}
		sort.Strings(names)
		if err := prompts.RunRootModelSelect(&root, names); err != nil {
			return err
		}
	}

	files, err := renderer.Render(models, root, outDir)
	if err != nil {
		return err
	}

	fields := []prompts.ResultField{
		{Label: "Input", Value: input},
		{Label: "Format", Value: opts.format},
		{Label: "Output", Value: outDir},
		{Label: "Files", Value: fmt.Sprintf("%d", len(files))},
	}
	if root != "" {
		fields = append(fields, prompts.ResultField{Label: "Root model", Value: root})
	}
	if opts.keepTemp {
		fields = append(fields, prompts.ResultField{Label: "Temp dir", Value: gen.SourceDir + " (preserved)"})
	}
	prompts.PrintResult(fields, "Conversion complete")
	return nil
}

// resolveConfig prefers an explicit --config file over the discovered one.
func resolveConfig(cmd *cobra.Command, explicit string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	ctx, err := cmdctx.RequireFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	return ctx.Config, nil
}

// applyConfig fills unset options from config values; flags win.
func applyConfig(opts *generateOptions, cfg *config.Config) {
	if opts.rootModel == "" {
		opts.rootModel = cfg.RootModel
	}
	if opts.outputDir == "" {
		opts.outputDir = cfg.OutputDir
	}
	if opts.format == "" {
		opts.format = cfg.Format
	}
	opts.keepTemp = opts.keepTemp || cfg.KeepTemp
	opts.verbose = opts.verbose || cfg.Verbose
}

func inputStem(input string) string {
	base := filepath.Base(input)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
