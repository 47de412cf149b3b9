package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/config"
	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/pipeline"
	"github.com/quasiblob/compositionguides/pkg/render"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuneCommand opens an interactive tuner that re-renders on every change.
func (c *CLI) tuneCommand() *cobra.Command {
	var (
		output   string
		savePath string
	)
	widgets := newWidgetFlags()

	cmd := &cobra.Command{
		Use:   "tune [image]",
		Short: "Toggle guides interactively and re-render on every change",
		Long: `Toggle guides interactively and re-render on every change.

Each change re-renders the PNG at --output, the way changing a widget marks
the node canvas dirty. Press s to save the current settings as a preset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := widgets.resolve(cmd)
			if err != nil {
				return err
			}
			var data []byte
			input := ""
			if len(args) == 1 {
				input = args[0]
				if data, err = readImage(input); err != nil {
					return err
				}
			}
			if output == "" {
				if input == "" {
					return errors.New(errors.ErrCodeInvalidInput, "an image or --output is required")
				}
				output = basePath("", input) + render.FormatPNG.Ext()
			}
			if savePath == "" {
				savePath = strings.TrimSuffix(output, ".png") + ".toml"
			}

			runner, err := c.newRunner(false)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			// The TUI owns the terminal; render errors show in the status line.
			quiet := newLogger(io.Discard, LogInfo)

			base := pipeline.Options{
				ImageData:  data,
				NodeWidth:  preset.Node.Width,
				NodeHeight: preset.Node.Height,
				FixedSize:  widgets.fixedSize(),
				Formats:    []string{string(render.FormatPNG)},
				Logger:     quiet,
			}
			renderFn := func(gen int, p config.Preset) tea.Cmd {
				return renderPNG(cmd.Context(), runner, base, p, output, gen)
			}

			m := newTuneModel(preset, renderFn, savePath)
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if tm, ok := final.(tuneModel); ok && tm.saved != "" {
				printFile(tm.saved)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG re-rendered on every change")
	cmd.Flags().StringVar(&savePath, "save", "", "preset file written by the s key")
	widgets.register(cmd)

	return cmd
}

// renderedMsg reports the outcome of one re-render.
type renderedMsg struct {
	gen      int
	segments int
	cached   bool
	took     time.Duration
	err      error
}

// savedMsg reports the outcome of saving the preset.
type savedMsg struct {
	path string
	err  error
}

// renderPNG returns a command rendering p and writing the PNG to path.
func renderPNG(ctx context.Context, runner *pipeline.Runner, base pipeline.Options, p config.Preset, path string, gen int) tea.Cmd {
	return func() tea.Msg {
		opts := base
		opts.Widgets = p.Widgets()
		start := time.Now()
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return renderedMsg{gen: gen, err: err}
		}
		if err := os.WriteFile(path, result.Artifacts[string(render.FormatPNG)], 0o644); err != nil {
			return renderedMsg{gen: gen, err: err}
		}
		return renderedMsg{
			gen:      gen,
			segments: result.Stats.Segments,
			cached:   result.CacheInfo.RenderHit,
			took:     time.Since(start),
		}
	}
}

// =============================================================================
// tuneModel - Interactive widget editor
// =============================================================================

// tuneItem is one editable widget.
type tuneItem struct {
	label string
	value func(p *config.Preset) string
	// step changes the value by one notch in direction dir (+1 or -1).
	step func(p *config.Preset, dir int)
}

// tuneModel is the bubbletea model of the tuner. Every edit bumps gen and
// schedules a render; results for older generations are ignored.
type tuneModel struct {
	preset   config.Preset
	items    []tuneItem
	cursor   int
	gen      int
	render   func(gen int, p config.Preset) tea.Cmd
	savePath string
	saved    string
	status   string
	failed   bool
}

func newTuneModel(p config.Preset, render func(int, config.Preset) tea.Cmd, savePath string) tuneModel {
	return tuneModel{
		preset:   p,
		items:    tuneItems(),
		render:   render,
		savePath: savePath,
		status:   "rendering...",
	}
}

func (m tuneModel) Init() tea.Cmd {
	return m.render(m.gen, m.preset)
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "right", "l", "enter", " ", "+":
			return m.edit(+1)
		case "left", "h", "-":
			return m.edit(-1)
		case "s":
			return m, savePreset(m.preset, m.savePath)
		}
	case renderedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.failed = msg.err != nil
		if msg.err != nil {
			m.status = errors.UserMessage(msg.err)
			return m, nil
		}
		state := iconFresh
		if msg.cached {
			state = iconCached
		}
		m.status = fmt.Sprintf("%d segments · %s · %s", msg.segments, state, msg.took.Round(time.Millisecond))
	case savedMsg:
		m.failed = msg.err != nil
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.saved = msg.path
		m.status = "saved " + msg.path
	}
	return m, nil
}

// edit steps the selected widget and schedules a render.
func (m tuneModel) edit(dir int) (tea.Model, tea.Cmd) {
	m.items[m.cursor].step(&m.preset, dir)
	_ = m.preset.Normalize()
	m.gen++
	m.status = "rendering..."
	return m, m.render(m.gen, m.preset)
}

func (m tuneModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Composition Guides"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ change  s save  q quit"))
	b.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-18s %s", cursor, it.label, it.value(&m.preset))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.failed {
		b.WriteString(styleIconError.Render(iconError) + " " + m.status)
	} else {
		b.WriteString(listDimStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// savePreset writes p as TOML to path.
func savePreset(p config.Preset, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return savedMsg{err: err}
		}
		if err := config.Save(f, p); err != nil {
			f.Close()
			return savedMsg{err: err}
		}
		return savedMsg{path: path, err: f.Close()}
	}
}

// =============================================================================
// Items
// =============================================================================

func tuneItems() []tuneItem {
	return []tuneItem{
		toggleItem("Grid", func(p *config.Preset) *bool { return &p.Grid }),
		intItem("Grid columns", func(p *config.Preset) *int { return &p.GridX }),
		intItem("Grid rows", func(p *config.Preset) *int { return &p.GridY }),
		toggleItem("Diagonals", func(p *config.Preset) *bool { return &p.Diagonals }),
		toggleItem("Phi grid", func(p *config.Preset) *bool { return &p.PhiGrid }),
		cycleItem("Pyramid", pyramidModeNames(), func(p *config.Preset) *string { return &p.Pyramid }),
		cycleItem("Golden triangles", goldenModeNames(), func(p *config.Preset) *string { return &p.GoldenTriangles }),
		toggleItem("Perspective", func(p *config.Preset) *bool { return &p.Perspective }),
		intItem("Perspective lines", func(p *config.Preset) *int { return &p.PerspectiveLines }),
		floatItem("Vanishing x", 0.05, func(p *config.Preset) *float64 { return &p.PerspectiveX }),
		floatItem("Vanishing y", 0.05, func(p *config.Preset) *float64 { return &p.PerspectiveY }),
		cycleItem("Blend mode", blendModeNames(), func(p *config.Preset) *string { return &p.BlendMode }),
		floatItem("Line thickness", 0.5, func(p *config.Preset) *float64 { return &p.LineThickness }),
	}
}

func toggleItem(label string, field func(*config.Preset) *bool) tuneItem {
	return tuneItem{
		label: label,
		value: func(p *config.Preset) string {
			if *field(p) {
				return StyleSuccess.Render("on")
			}
			return listDimStyle.Render("off")
		},
		step: func(p *config.Preset, _ int) { *field(p) = !*field(p) },
	}
}

func intItem(label string, field func(*config.Preset) *int) tuneItem {
	return tuneItem{
		label: label,
		value: func(p *config.Preset) string { return fmt.Sprint(*field(p)) },
		step:  func(p *config.Preset, dir int) { *field(p) += dir },
	}
}

func floatItem(label string, notch float64, field func(*config.Preset) *float64) tuneItem {
	return tuneItem{
		label: label,
		value: func(p *config.Preset) string { return fmt.Sprintf("%.2f", *field(p)) },
		step:  func(p *config.Preset, dir int) { *field(p) += notch * float64(dir) },
	}
}

// cycleItem steps through values, wrapping at both ends.
func cycleItem(label string, values []string, field func(*config.Preset) *string) tuneItem {
	return tuneItem{
		label: label,
		value: func(p *config.Preset) string { return *field(p) },
		step: func(p *config.Preset, dir int) {
			i := 0
			for j, v := range values {
				if v == *field(p) {
					i = j
					break
				}
			}
			i = (i + dir + len(values)) % len(values)
			*field(p) = values[i]
		},
	}
}
