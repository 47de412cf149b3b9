package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/config"
	"github.com/quasiblob/compositionguides/pkg/errors"
)

// presetCommand creates the preset management command.
func (c *CLI) presetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Write and inspect widget presets",
	}

	cmd.AddCommand(c.presetInitCommand())
	cmd.AddCommand(c.presetShowCommand())

	return cmd
}

// presetInitCommand writes a preset from the defaults and any widget flags.
func (c *CLI) presetInitCommand() *cobra.Command {
	var (
		name  string
		force bool
	)
	widgets := newWidgetFlags()

	cmd := &cobra.Command{
		Use:   "init [file.toml]",
		Short: "Write a preset with the node defaults and the given flags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := widgets.resolve(cmd)
			if err != nil {
				return err
			}
			if name != "" {
				p.Name = name
			}
			if len(args) == 0 {
				return config.Save(cmd.OutOrStdout(), p)
			}

			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s exists (use --force to overwrite)", path)
			}
			if err := writePreset(path, p); err != nil {
				return err
			}
			printSuccess("Wrote preset")
			printFile(path)
			printNextStep("Render with it", "guides render <image> --preset "+path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "preset name")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	widgets.register(cmd)

	return cmd
}

// presetShowCommand prints a preset after normalization.
func (c *CLI) presetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file.toml>",
		Short: "Print a preset with defaults filled in and values clamped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if p.Name != "" {
				printKeyValue("Preset", StyleHighlight.Render(p.Name))
			}
			printKeyValue("Guides", guideSummary(p))
			printNewline()
			return config.Save(cmd.OutOrStdout(), p)
		},
	}
}

func writePreset(path string, p config.Preset) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := config.Save(f, p); err != nil {
		f.Close()
		return err
	}
	return closeFile(f, path)
}

func closeFile(f io.Closer, path string) error {
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}

// guideSummary names the guides a preset enables.
func guideSummary(p config.Preset) string {
	enabled := p.Params().Enabled()
	if len(enabled) == 0 {
		return StyleDim.Render("none")
	}
	return strings.Join(enabled, ", ")
}
