package cli

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quasiblob/compositionguides/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

// ANSI 256 colours shared by tables, the tuner and status lines.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle renders headings such as the tuner title.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight renders preset names and node ids.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim renders hints, paths and secondary columns.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders widget values and coordinates.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber renders segment indexes.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess marks enabled guides and native blend modes.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning marks degraded blend modes and truncated tables.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorCyan).Underline(true)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Lines
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented dim line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact, preset or repaint path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints one row of a plan or preset summary.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep suggests the command to run after a preset is written.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}

// =============================================================================
// Render Stats
// =============================================================================

// printStats prints what a render produced on one dim line, for example
// "4000x3000 → 1024x768 · 18 segments · fresh · 42ms".
func printStats(stats pipeline.Stats, cached bool) {
	parts := statsParts(stats, cached)
	for i, p := range parts {
		style := StyleDim
		switch p {
		case iconCached:
			style = styleCached
		case iconFresh:
			style = styleComputed
		}
		parts[i] = style.Render(p)
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// statsParts returns the unstyled fields of the stats line. The size field is
// omitted for the placeholder and collapses to one size when the source was
// already within the preview limit.
func statsParts(stats pipeline.Stats, cached bool) []string {
	var parts []string
	switch {
	case stats.PreviewSize == (image.Point{}):
	case stats.SourceSize == stats.PreviewSize || stats.SourceSize == (image.Point{}):
		parts = append(parts, formatSize(stats.PreviewSize))
	default:
		parts = append(parts, formatSize(stats.SourceSize)+" "+iconArrow+" "+formatSize(stats.PreviewSize))
	}
	parts = append(parts, fmt.Sprintf("%d segments", stats.Segments))

	status := iconFresh
	if cached {
		status = iconCached
	}
	parts = append(parts, status)

	if total := stats.PrepareTime + stats.PlanTime + stats.RenderTime; total > 0 {
		parts = append(parts, total.Round(time.Millisecond).String())
	}
	return parts
}

func formatSize(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}
