package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/node"
	"github.com/quasiblob/compositionguides/pkg/pipeline"
	"github.com/quasiblob/compositionguides/pkg/preview"
)

// maxMessageSize bounds one JSON line. An 8192px PNG preview encoded as
// base64 fits comfortably.
const maxMessageSize = 256 << 20

// previewOpts holds the flags of the preview command.
type previewOpts struct {
	outDir  string
	nodes   []string
	auto    bool
	formats string
	widgets *widgetFlags
}

// previewCommand replays preview messages through the node hub.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{widgets: newWidgetFlags()}

	cmd := &cobra.Command{
		Use:   "preview [messages.jsonl]",
		Short: "Repaint nodes from a stream of preview messages",
		Long: `Repaint nodes from a stream of preview messages.

Each input line is a preview message as published under the
` + preview.EventName + ` event:

  {"node_id": "17", "image_data": "<base64 PNG>"}

Messages are routed to the node with the matching id. Every accepted message
updates the node's preview, resizes the node to the image's aspect ratio and
repaints it into --dir as node-<id>-<n>.<format>. Messages for unknown nodes
are dropped unless --auto is set. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if os.IsNotExist(err) {
					return errors.Wrap(errors.ErrCodeFileNotFound, err, "messages %s", args[0])
				}
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return c.runPreview(cmd, in, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "dir", "d", ".", "directory repaints are written to")
	cmd.Flags().StringSliceVarP(&opts.nodes, "node", "n", nil, "register a node id (repeatable)")
	cmd.Flags().BoolVar(&opts.auto, "auto", false, "register nodes on their first message")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "repaint format(s): png (default), svg, json (comma-separated)")
	opts.widgets.register(cmd)

	return cmd
}

// previewStats counts what happened to the input lines.
type previewStats struct {
	read     int
	invalid  int
	repaints atomic.Int64
}

// runPreview feeds every message in r to a hub and waits for the repaints.
func (c *CLI) runPreview(cmd *cobra.Command, r io.Reader, opts previewOpts) error {
	ctx := cmd.Context()
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	preset, err := opts.widgets.resolve(cmd)
	if err != nil {
		return err
	}
	if len(opts.nodes) == 0 && !opts.auto {
		return errors.New(errors.ErrCodeInvalidInput, "register at least one --node or pass --auto")
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", opts.outDir)
	}

	stats := &previewStats{}
	repaint := newRepainter(opts.outDir, formats, preset.Widgets(), c.Logger, stats)

	hubOpts := []node.HubOption{node.WithLogger(c.Logger)}
	if opts.auto {
		hubOpts = append(hubOpts, node.WithAutoRegister())
	}
	hub := node.NewHub(repaint, hubOpts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()

	for _, id := range opts.nodes {
		if err := errors.ValidateNodeID(id); err != nil {
			hub.Close()
			<-done
			return err
		}
		n := node.New(id)
		n.Size = [2]float64{preset.Node.Width, preset.Node.Height}
		if opts.widgets.fixedSize() {
			n.OnResize(preset.Node.Width, preset.Node.Height)
		}
		if err := hub.Register(ctx, n); err != nil {
			return err
		}
	}

	feedErr := feedMessages(ctx, r, hub, c.Logger, stats)
	hub.Close()
	if err := <-done; err != nil {
		return err
	}
	if feedErr != nil {
		return feedErr
	}

	printSuccess("Replayed %d message(s)", stats.read)
	printDetail("%d repaint(s), %d invalid message(s)", stats.repaints.Load(), stats.invalid)
	printFile(opts.outDir)
	return nil
}

// feedMessages decodes one message per line and delivers it. Malformed lines
// are logged and skipped.
func feedMessages(ctx context.Context, r io.Reader, hub *node.Hub, logger *log.Logger, stats *previewStats) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		stats.read++

		d, err := decodeDelivery(raw)
		if err != nil {
			stats.invalid++
			logger.Warn("skipped message", "line", line, "err", errors.UserMessage(err))
			continue
		}
		if err := hub.Deliver(ctx, d); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPayload, err, "read messages")
	}
	return nil
}

// decodeDelivery parses one JSON line into a delivery with a decoded image.
func decodeDelivery(raw []byte) (node.Delivery, error) {
	var msg preview.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return node.Delivery{}, errors.Wrap(errors.ErrCodeInvalidPayload, err, "parse message")
	}
	if err := msg.Validate(); err != nil {
		return node.Delivery{}, err
	}
	img, err := msg.Image()
	if err != nil {
		return node.Delivery{}, err
	}
	return node.Delivery{NodeID: msg.NodeID, Image: img}, nil
}

// newRepainter returns a repaint callback writing one file per format for
// every repaint. It runs on the hub goroutine only.
func newRepainter(dir string, formats []string, widgets map[string]any, logger *log.Logger, stats *previewStats) node.RepaintFunc {
	seq := make(map[string]int)
	return func(ctx context.Context, n *node.Node) error {
		seq[n.ID]++
		plan := n.Plan(widgets)
		artifacts, err := pipeline.Render(plan, n.Preview, n.CanvasSize(), formats, nil, logger)
		if err != nil {
			return err
		}
		for _, f := range formats {
			path := filepath.Join(dir, fmt.Sprintf("node-%s-%d.%s", n.ID, seq[n.ID], f))
			if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
			}
			logger.Debug("repainted node", "node", n.ID, "path", path)
		}
		stats.repaints.Add(1)
		return nil
	}
}
