package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/quasiblob/compositionguides/pkg/pipeline"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates the current pipeline stage on one terminal line. It stops
// when Stop is called or its context is cancelled.
type Spinner struct {
	w       io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	message string
	width   int // widest line drawn, for clearing
}

// newSpinner creates a spinner drawing message to w.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		message: message,
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// SetMessage replaces the text shown after the frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// OnStage is a pipeline.Options.OnStage callback that shows the stage.
func (s *Spinner) OnStage(formats []string) func(pipeline.Stage, pipeline.Stats) {
	return func(stage pipeline.Stage, stats pipeline.Stats) {
		s.SetMessage(stageMessage(stage, stats, formats))
	}
}

// Stop ends the animation and clears the line. Calling it again is a no-op.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

// StopWithError stops the spinner and prints message as an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := frame + " " + s.message
	if n := len([]rune(line)); n > s.width {
		s.width = n
	}
	// pad so a shorter stage message hides the tail of a longer one
	pad := strings.Repeat(" ", s.width-len([]rune(line)))
	fmt.Fprintf(s.w, "\r%s %s%s", styleIconSpinner.Render(frame), StyleDim.Render(s.message), pad)
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
}

// stageMessage describes a pipeline stage with the stats known when it starts.
func stageMessage(stage pipeline.Stage, stats pipeline.Stats, formats []string) string {
	switch stage {
	case pipeline.StagePrepare:
		return "Preparing preview..."
	case pipeline.StagePlan:
		if stats.PreviewSize.X > 0 {
			return fmt.Sprintf("Computing plan for %s preview...", formatSize(stats.PreviewSize))
		}
		return "Computing plan..."
	case pipeline.StageRender:
		if len(formats) == 0 {
			formats = pipeline.DefaultFormats
		}
		return fmt.Sprintf("Rendering %s (%d segments)...", strings.Join(formats, ", "), stats.Segments)
	}
	return string(stage)
}
