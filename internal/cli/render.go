package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/pipeline"
	"github.com/quasiblob/compositionguides/pkg/render"
)

// outputSuffix is appended to the input name when no output is given, so the
// source image is never overwritten.
const outputSuffix = ".guides"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (single format) or base path (multiple)
	formats string // comma-separated output formats
	noCache bool   // bypass the artifact cache
	refresh bool   // re-render and overwrite cached artifacts
	widgets *widgetFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{widgets: newWidgetFlags()}

	cmd := &cobra.Command{
		Use:   "render [image]",
		Short: "Draw composition guides over an image",
		Long: `Draw composition guides over an image.

The image is downscaled to the preview resolution limit, placed in a node of
the given size exactly like the node canvas letterboxes it, and the enabled
guides are drawn over it, clipped to the image. Without an image the node's
placeholder is rendered.

Every node widget has a flag. Flags override the values of --preset.

Examples:
  guides render photo.jpg
  guides render photo.jpg --diagonals --phi-grid -f png,svg
  guides render photo.jpg --preset thirds.toml --blend-mode screen -o out.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd, input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	opts.widgets.register(cmd)

	return cmd
}

// runRender resolves the widgets, runs the pipeline and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	preset, err := opts.widgets.resolve(cmd)
	if err != nil {
		return err
	}
	if input == "" && opts.output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "an image or --output is required")
	}

	popts := pipeline.Options{
		Widgets:    preset.Widgets(),
		NodeWidth:  preset.Node.Width,
		NodeHeight: preset.Node.Height,
		FixedSize:  opts.widgets.fixedSize(),
		Formats:    formats,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}
	if input != "" {
		data, err := readImage(input)
		if err != nil {
			return err
		}
		popts.ImageData = data
	}

	result, err := c.execute(ctx, popts, opts.noCache)
	if err != nil {
		return err
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   formats,
		input:     input,
		output:    opts.output,
		cacheHit:  result.CacheInfo.RenderHit,
		stats:     result.Stats,
	})
}

// execute runs the pipeline with a spinner on stderr.
func (c *CLI) execute(ctx context.Context, opts pipeline.Options, noCache bool) (*pipeline.Result, error) {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, os.Stderr, "Rendering guides...")
	opts.OnStage = spinner.OnStage(opts.Formats)
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))
	return result, nil
}

// readImage reads an image file, mapping a missing file to FILE_NOT_FOUND.
func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read image %s", path)
	}
	return data, nil
}

// =============================================================================
// Artifact Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	stats     pipeline.Stats
}

// writeArtifacts writes each artifact next to the input or to the output path.
func writeArtifacts(p artifactWriteParams) error {
	paths := artifactPaths(p.formats, p.input, p.output)
	for _, f := range p.formats {
		path := paths[f]
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, p.artifacts[f], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
	}

	printSuccess("Rendered guides")
	printStats(p.stats, p.cacheHit)
	for _, f := range p.formats {
		printFile(paths[f])
	}
	return nil
}

// artifactPaths maps each format to its output file. A single format with an
// explicit output carrying any extension is written there verbatim; otherwise
// the extension of each format is appended to the base path.
func artifactPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		if filepath.Ext(output) != "" {
			paths[formats[0]] = output
			return paths
		}
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input paths.
// If output is empty, the input's extension is replaced by outputSuffix.
// If output has a format extension it is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix
	}
	if _, ok := render.FormatFromPath(output); ok {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}
