package render

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives display directives. Emit must not block the game loop for
// long and never reports failure back to the caller.
type Sink interface {
	Emit(d Directive)
}

// Discard drops every directive.
type Discard struct{}

func (Discard) Emit(Directive) {}

// --- Recorder: stores directives in memory for test assertions ---

type Recorder struct {
	mu         sync.Mutex
	directives []Directive
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(d Directive) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.directives = append(r.directives, d)
}

// Directives returns a copy of everything recorded so far.
func (r *Recorder) Directives() []Directive {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Directive, len(r.directives))
	copy(out, r.directives)
	return out
}

// OfKind returns all recorded directives of the given kind.
func (r *Recorder) OfKind(k Kind) []Directive {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []Directive
	for _, d := range r.directives {
		if d.Kind == k {
			result = append(result, d)
		}
	}
	return result
}

// Notifications returns the text of every notification, oldest first.
func (r *Recorder) Notifications() []string {
	var texts []string
	for _, d := range r.OfKind(KindNotification) {
		texts = append(texts, d.Text)
	}
	return texts
}

// Drain returns the recorded directives and clears the buffer.
func (r *Recorder) Drain() []Directive {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.directives
	r.directives = nil
	return out
}

// Reset clears the buffer.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.directives = nil
	r.mu.Unlock()
}

// --- TextSink: one line per directive, for terminals ---

type TextSink struct {
	w io.Writer
	// Verbose includes tile redraws, which are otherwise skipped.
	Verbose bool
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Emit(d Directive) {
	if d.Kind == KindDrawTile && !s.Verbose {
		return
	}
	fmt.Fprintln(s.w, d.String())
}

// Multi fans a directive out to several sinks in order.
type Multi []Sink

func (m Multi) Emit(d Directive) {
	for _, s := range m {
		s.Emit(d)
	}
}
