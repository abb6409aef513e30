// Package audittest provides an in-memory audit sink.
package audittest

import (
	"sync"

	"github.com/BruksfildServices01/home-listing/internal/audit"
)

type Recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *Recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

var _ audit.Sink = (*Recorder)(nil)
