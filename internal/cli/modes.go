package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/guides"
	"github.com/quasiblob/compositionguides/pkg/render/sink"
)

// modesCommand lists the values the mode widgets accept.
func (c *CLI) modesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List blend, pyramid and golden triangle modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(modesTable())
			return nil
		},
	}
}

// modesTable renders one row per mode. Blend modes the rasterizer cannot
// composite natively are marked; SVG output keeps them all.
func modesTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, m := range guides.BlendModes {
		png := StyleSuccess.Render(iconSuccess)
		if !sink.NativeBlend(m) {
			png = StyleWarning.Render("normal")
		}
		rows = append(rows, []string{flagName(guides.KeyBlendMode), string(m), png})
	}
	for _, m := range guides.PyramidModes {
		rows = append(rows, []string{flagName(guides.KeyPyramid), string(m), ""})
	}
	for _, m := range guides.GoldenModes {
		rows = append(rows, []string{flagName(guides.KeyGoldenTriangles), string(m), ""})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Flag", "Value", "PNG").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorDim)
			case col == 1:
				return StyleValue
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

func blendModeNames() []string {
	names := make([]string, len(guides.BlendModes))
	for i, m := range guides.BlendModes {
		names[i] = string(m)
	}
	return names
}

func pyramidModeNames() []string {
	names := make([]string, len(guides.PyramidModes))
	for i, m := range guides.PyramidModes {
		names[i] = string(m)
	}
	return names
}

func goldenModeNames() []string {
	names := make([]string, len(guides.GoldenModes))
	for i, m := range guides.GoldenModes {
		names[i] = string(m)
	}
	return names
}
