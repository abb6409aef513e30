package audit

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	ActionUserSignedUp = "user_signed_up"
	ActionHomeCreated  = "home_created"
	ActionHomeUpdated  = "home_updated"
	ActionHomeDeleted  = "home_deleted"
	ActionInquirySent  = "inquiry_sent"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink accepts audit events without blocking the caller.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			logrus.WithFields(logrus.Fields{
				"action": ev.Action,
				"entity": ev.Entity,
				"error":  err.Error(),
			}).Warn("audit write failed")
		}
	}
}

// Dispatch drops the event when the queue is full; auditing never fails a request.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

var _ Sink = (*Dispatcher)(nil)

// Discard is a Sink that ignores every event.
type Discard struct{}

func (Discard) Dispatch(Event) {}
