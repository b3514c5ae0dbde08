package audit

import "github.com/sirupsen/logrus"

type Event struct {
	GarageID *uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives events off the queue. *Logger is the production sink.
type Sink interface {
	Log(garageID *uint, userID *uint, action string, entity string, entityID *uint, metadata any) error
}

// Dispatcher decouples request handling from audit writes: events go through
// a buffered queue and a single worker, and are dropped rather than ever
// blocking a request.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.GarageID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logrus.WithError(err).Error("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logrus.Warn("audit queue full, dropping event")
	}
}
