package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/preview"
)

// messageCommand encodes an image as a preview message, the way the node's
// server half publishes it after a workflow run.
func (c *CLI) messageCommand() *cobra.Command {
	var (
		nodeID     string
		promptPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "message <image>",
		Short: "Encode an image as a preview message",
		Long: `Encode an image as a preview message.

The image is downscaled to the preview resolution limit, encoded as a base64
PNG and printed as one JSON line that 'guides preview' accepts. The node id
comes from --node or from the first ` + preview.ClassType + ` node of a
workflow prompt (--prompt). Without an id no message is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if nodeID == "" && promptPath != "" {
				id, err := nodeIDFromPromptFile(promptPath)
				if err != nil {
					return err
				}
				nodeID = id
			}
			if nodeID == "" {
				logger.Warn("no node id, nothing to send", "class", preview.ClassType)
				return nil
			}
			if err := errors.ValidateNodeID(nodeID); err != nil {
				return err
			}
			if err := errors.ValidatePreviewLimit(limit); err != nil {
				return err
			}

			img, format, err := preview.Open(args[0])
			if err != nil {
				return err
			}
			msg, err := preview.Prepare(nodeID, img, limit)
			if err != nil {
				return err
			}
			logger.Debug("encoded preview", "node", nodeID, "format", format, "bytes", len(msg.ImageData))
			return json.NewEncoder(cmd.OutOrStdout()).Encode(msg)
		},
	}

	cmd.Flags().StringVarP(&nodeID, "node", "n", "", "node id the message is addressed to")
	cmd.Flags().StringVar(&promptPath, "prompt", "", "workflow prompt JSON to take the node id from")
	cmd.Flags().IntVar(&limit, "limit", preview.DefaultLimit, "longest preview side in pixels (256-8192)")

	return cmd
}

// nodeIDFromPromptFile reads a workflow prompt and returns the guide node's
// id, or "" when the prompt has none.
func nodeIDFromPromptFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "prompt %s", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read prompt %s", path)
	}
	var prompt map[string]preview.PromptNode
	if err := json.Unmarshal(data, &prompt); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPayload, err, "parse prompt %s", path)
	}
	id, _ := preview.NodeIDFromPrompt(prompt, preview.ClassType)
	return id, nil
}
