package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/service"
)

// NotificationWorker moves notification delivery off the request path. Events
// arrive through dispatcher subscriptions, queue into a bounded channel and
// drain on a single background goroutine. A full queue drops the event rather
// than blocking the publishing request.
type NotificationWorker struct {
	notifications *service.NotificationService
	logger        *zap.Logger
	queue         chan events.Event
	quit          chan struct{}
	done          chan struct{}
}

// NewNotificationWorker builds the worker with a bounded queue.
func NewNotificationWorker(notifications *service.NotificationService, logger *zap.Logger, queueSize int) *NotificationWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &NotificationWorker{
		notifications: notifications,
		logger:        logger,
		queue:         make(chan events.Event, queueSize),
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start subscribes to the domain events and launches the drain loop.
func (w *NotificationWorker) Start(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		close(w.done)
		return
	}
	for _, eventType := range []events.EventType{
		events.EventEmployeePromoted,
		events.EventEmployeeDeleted,
		events.EventSalaryChanged,
		events.EventDepartmentDeleted,
	} {
		dispatcher.Subscribe(eventType, w.enqueue)
	}
	go w.run()
}

// Stop signals the drain loop and waits for it to exit. Queued events that
// were not yet processed are discarded.
func (w *NotificationWorker) Stop() {
	close(w.quit)
	<-w.done
}

func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("notification queue full, dropping event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}
	return nil
}

func (w *NotificationWorker) run() {
	defer close(w.done)
	for {
		select {
		case event := <-w.queue:
			if err := w.notifications.Handle(context.Background(), event); err != nil {
				w.logger.Error("notification delivery failed",
					zap.String("event_id", event.ID), zap.Error(err))
			}
		case <-w.quit:
			return
		}
	}
}
