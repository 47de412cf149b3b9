package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/guides"
	"github.com/quasiblob/compositionguides/pkg/pipeline"
	"github.com/quasiblob/compositionguides/pkg/render"
)

// inspectCommand prints the computed plan instead of drawing it.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		noCache bool
		limit   int
	)
	widgets := newWidgetFlags()

	cmd := &cobra.Command{
		Use:   "inspect [image]",
		Short: "Show the placement and guide segments for an image",
		Long: `Show the placement and guide segments for an image.

The plan is computed exactly as render would compute it: the node letterboxes
the image and every enabled guide contributes segments in placement
coordinates. Segments are listed after clipping to the placement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := widgets.resolve(cmd)
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Widgets:    preset.Widgets(),
				NodeWidth:  preset.Node.Width,
				NodeHeight: preset.Node.Height,
				FixedSize:  widgets.fixedSize(),
				Formats:    []string{string(render.FormatJSON)},
				Logger:     c.Logger,
			}
			if len(args) == 1 {
				data, err := readImage(args[0])
				if err != nil {
					return err
				}
				opts.ImageData = data
			}
			result, err := c.execute(cmd.Context(), opts, noCache)
			if err != nil {
				return err
			}
			printPlan(result.Plan, preset.Params(), limit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum segments to list (0 for all)")
	widgets.register(cmd)

	return cmd
}

// printPlan prints the plan summary followed by a table of drawn segments.
func printPlan(plan guides.Plan, params guides.Parameters, limit int) {
	printKeyValue("Container", formatRect(plan.Container))
	if !plan.Drawable {
		printWarning("Node too small to draw")
		return
	}
	if !plan.HasImage {
		printKeyValue("Placeholder", plan.Placeholder)
		return
	}
	printKeyValue("Placement", formatRect(plan.Placement))
	printKeyValue("Style", fmt.Sprintf("%s %gpx %s", plan.Style.Color, plan.Style.LineWidth, plan.Style.Blend))
	enabled := params.Clamp().Enabled()
	if len(enabled) == 0 {
		enabled = []string{"none"}
	}
	printKeyValue("Guides", strings.Join(enabled, ", "))

	drawn := plan.Clipped()
	printKeyValue("Segments", fmt.Sprintf("%d computed, %d drawn", len(plan.Segments), len(drawn)))
	if len(drawn) == 0 {
		return
	}
	printNewline()
	fmt.Println(segmentTable(drawn, limit))
	if limit > 0 && len(drawn) > limit {
		printDetail("%d more segments not shown (use --limit 0)", len(drawn)-limit)
	}
}

// segmentTable renders up to limit segments. A limit of 0 shows all.
func segmentTable(segs []guides.Segment, limit int) string {
	if limit > 0 && len(segs) > limit {
		segs = segs[:limit]
	}
	rows := make([][]string, len(segs))
	for i, s := range segs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			formatPoint(s.A),
			formatPoint(s.B),
			strconv.FormatFloat(s.Length(), 'f', 1, 64),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "From", "To", "Length").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorDim)
			case col == 3:
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

func formatPoint(p guides.Point) string {
	return fmt.Sprintf("%.1f, %.1f", p.X, p.Y)
}

func formatRect(r guides.Rect) string {
	return fmt.Sprintf("%gx%g at %g,%g", round1(r.Width), round1(r.Height), round1(r.X), round1(r.Y))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
