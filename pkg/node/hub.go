package node

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/quasiblob/compositionguides/pkg/observability"
)

// ErrClosed is returned by Deliver and Register after Close.
var ErrClosed = errors.New("hub closed")

// Delivery is one decoded preview image addressed to a node.
type Delivery struct {
	NodeID string
	Image  image.Image
}

// RepaintFunc draws a node after its preview changed. It runs on the hub's
// goroutine and must not retain the node past the call.
type RepaintFunc func(ctx context.Context, n *Node) error

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithLogger sets the hub's logger. The default is log.Default().
func WithLogger(l *log.Logger) HubOption {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithAutoRegister makes the hub create a node the first time an unknown id
// is delivered instead of dropping the delivery.
func WithAutoRegister() HubOption {
	return func(h *Hub) { h.autoRegister = true }
}

// WithBuffer sets the delivery channel capacity. The default is 16.
func WithBuffer(n int) HubOption {
	return func(h *Hub) {
		if n >= 0 {
			h.buffer = n
		}
	}
}

// Hub routes preview deliveries to registered nodes. Run owns the node
// registry; every other method only talks to it over channels, so a Hub is
// safe for concurrent use.
type Hub struct {
	repaint      RepaintFunc
	logger       *log.Logger
	autoRegister bool
	buffer       int

	deliveries chan Delivery
	registers  chan *Node
	lookups    chan lookup
	quit       chan struct{}
	closeOnce  sync.Once
}

type lookup struct {
	id    string
	reply chan *Node
}

// NewHub creates a hub that calls repaint after each accepted delivery.
func NewHub(repaint RepaintFunc, opts ...HubOption) *Hub {
	h := &Hub{
		repaint: repaint,
		logger:  log.Default(),
		buffer:  16,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.deliveries = make(chan Delivery, h.buffer)
	h.registers = make(chan *Node)
	h.lookups = make(chan lookup)
	h.quit = make(chan struct{})
	return h
}

// Register adds a copy of n to the registry, so later deliveries never
// touch the caller's node; read the hub's state back with [Hub.Node].
// Registering an id twice replaces the earlier node.
func (h *Hub) Register(ctx context.Context, n *Node) error {
	owned := *n
	select {
	case h.registers <- &owned:
		return nil
	case <-h.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Deliver queues d for the consumer. It blocks while the buffer is full.
func (h *Hub) Deliver(ctx context.Context, d Delivery) error {
	select {
	case <-h.quit:
		return ErrClosed
	default:
	}
	select {
	case h.deliveries <- d:
		return nil
	case <-h.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Node returns a snapshot copy of the registered node with the given id.
// It must be called while Run is active.
func (h *Hub) Node(ctx context.Context, id string) (Node, bool, error) {
	reply := make(chan *Node, 1)
	select {
	case h.lookups <- lookup{id: id, reply: reply}:
	case <-h.quit:
		return Node{}, false, ErrClosed
	case <-ctx.Done():
		return Node{}, false, ctx.Err()
	}
	n := <-reply
	if n == nil {
		return Node{}, false, nil
	}
	return *n, true, nil
}

// Close stops Run after it has drained the deliveries already queued.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}

// Run consumes deliveries until ctx is cancelled or Close is called. A
// repaint error is logged and does not stop the hub.
func (h *Hub) Run(ctx context.Context) error {
	nodes := make(map[string]*Node)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-h.registers:
			nodes[n.ID] = n
			h.logger.Debug("registered node", "node", n.ID)
		case l := <-h.lookups:
			l.reply <- nodes[l.id]
		case d := <-h.deliveries:
			h.apply(ctx, nodes, d)
		case <-h.quit:
			for {
				select {
				case d := <-h.deliveries:
					h.apply(ctx, nodes, d)
				default:
					return nil
				}
			}
		}
	}
}

func (h *Hub) apply(ctx context.Context, nodes map[string]*Node, d Delivery) {
	if d.NodeID == "" {
		h.logger.Warn("dropped preview without node id", "correlation", uuid.NewString())
		observability.Delivery().OnDropped(ctx, "")
		return
	}
	n, ok := nodes[d.NodeID]
	if !ok {
		if !h.autoRegister {
			h.logger.Warn("dropped preview for unknown node", "node", d.NodeID)
			observability.Delivery().OnDropped(ctx, d.NodeID)
			return
		}
		n = New(d.NodeID)
		nodes[d.NodeID] = n
		h.logger.Debug("registered node", "node", n.ID, "auto", true)
	}

	n.SetPreview(d.Image)
	var w, hgt int
	if d.Image != nil {
		w, hgt = d.Image.Bounds().Dx(), d.Image.Bounds().Dy()
	}
	observability.Delivery().OnDelivered(ctx, n.ID, w, hgt)
	h.logger.Debug("preview delivered", "node", n.ID, "width", w, "height", hgt, "size", n.Size)

	if h.repaint == nil {
		return
	}
	if err := h.repaint(ctx, n); err != nil {
		h.logger.Error("repaint failed", "node", n.ID, "err", err)
	}
}
