package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/config"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

// widgetFlags binds one flag per node widget. Flag names are the widget keys
// with dashes, so --grid-lines-x sets grid_lines_x.
type widgetFlags struct {
	preset string
	width  float64
	height float64
	fixed  bool

	values config.Preset
}

func newWidgetFlags() *widgetFlags {
	return &widgetFlags{values: config.Default()}
}

// register adds the widget flags to cmd.
func (f *widgetFlags) register(cmd *cobra.Command) {
	v := &f.values
	fs := cmd.Flags()

	fs.StringVar(&f.preset, "preset", "", "TOML preset to start from")
	fs.Float64Var(&f.width, "width", 0, "node width (default from preset)")
	fs.Float64Var(&f.height, "height", 0, "node height (default from preset)")
	fs.BoolVar(&f.fixed, "fixed", false, "keep the node height instead of fitting it to the image")

	fs.IntVar(&v.PreviewLimit, flagName(guides.KeyPreviewLimit), v.PreviewLimit, "longest preview side in pixels (256-8192, step 64)")
	fs.StringVar(&v.Color, flagName(guides.KeyColor), v.Color, `guide color as "r,g,b[,a]"`)
	fs.Float64Var(&v.LineThickness, flagName(guides.KeyLineThickness), v.LineThickness, "guide line width")
	fs.StringVar(&v.BlendMode, flagName(guides.KeyBlendMode), v.BlendMode, "canvas blend mode (see 'guides modes')")

	fs.BoolVar(&v.Grid, flagName(guides.KeyGrid), v.Grid, "draw the grid")
	fs.IntVar(&v.GridX, flagName(guides.KeyGridX), v.GridX, "grid columns")
	fs.IntVar(&v.GridY, flagName(guides.KeyGridY), v.GridY, "grid rows")
	fs.BoolVar(&v.Diagonals, flagName(guides.KeyDiagonals), v.Diagonals, "draw both diagonals")
	fs.BoolVar(&v.PhiGrid, flagName(guides.KeyPhiGrid), v.PhiGrid, "draw the phi grid")
	fs.StringVar(&v.Pyramid, flagName(guides.KeyPyramid), v.Pyramid, "pyramid mode (see 'guides modes')")
	fs.StringVar(&v.GoldenTriangles, flagName(guides.KeyGoldenTriangles), v.GoldenTriangles, "golden triangle mode (see 'guides modes')")

	fs.BoolVar(&v.Perspective, flagName(guides.KeyPerspective), v.Perspective, "draw perspective rays")
	fs.IntVar(&v.PerspectiveLines, flagName(guides.KeyPerspectiveLines), v.PerspectiveLines, "number of perspective rays")
	fs.Float64Var(&v.PerspectiveX, flagName(guides.KeyPerspectiveX), v.PerspectiveX, "vanishing point x (0-1)")
	fs.Float64Var(&v.PerspectiveY, flagName(guides.KeyPerspectiveY), v.PerspectiveY, "vanishing point y (0-1)")

	_ = cmd.RegisterFlagCompletionFunc(flagName(guides.KeyBlendMode), completeModes(blendModeNames()))
	_ = cmd.RegisterFlagCompletionFunc(flagName(guides.KeyPyramid), completeModes(pyramidModeNames()))
	_ = cmd.RegisterFlagCompletionFunc(flagName(guides.KeyGoldenTriangles), completeModes(goldenModeNames()))
	_ = cmd.MarkFlagFilename("preset", "toml")
}

// resolve loads the preset (or the defaults) and applies the flags the user
// set on top of it.
func (f *widgetFlags) resolve(cmd *cobra.Command) (config.Preset, error) {
	base := config.Default()
	if f.preset != "" {
		p, err := config.Load(f.preset)
		if err != nil {
			return config.Preset{}, err
		}
		base = p
	}

	widgets := base.Widgets()
	set := f.values.Widgets()
	for _, key := range guides.WidgetKeys {
		if cmd.Flags().Changed(flagName(key)) {
			widgets[key] = set[key]
		}
	}

	p := config.FromWidgets(widgets)
	p.Name = base.Name
	p.Node = base.Node
	if f.width > 0 {
		p.Node.Width = f.width
	}
	if f.height > 0 {
		p.Node.Height = f.height
	}
	if err := p.Normalize(); err != nil {
		return config.Preset{}, err
	}
	return p, nil
}

// fixedSize reports whether the node keeps its height. An explicit --height
// implies it.
func (f *widgetFlags) fixedSize() bool {
	return f.fixed || f.height > 0
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func completeModes(names []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
