package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

// Enqueuer is the part of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier hands booking events to background workers.
type AsynqNotifier struct {
	client Enqueuer
	queue  string
	clock  timezone.Clock
	log    *zap.Logger
}

func NewAsynqNotifier(client Enqueuer, queue string, clock timezone.Clock, log *zap.Logger) *AsynqNotifier {
	if queue == "" {
		queue = "default"
	}
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AsynqNotifier{client: client, queue: queue, clock: clock, log: log}
}

func (n *AsynqNotifier) AppointmentConfirmed(ctx context.Context, ap domain.Appointment) error {
	if err := n.enqueue(ctx, TypeAppointmentConfirmed, ap); err != nil {
		return err
	}

	task, opts, err := NewReminderTask(ap, n.clock.Now())
	if err != nil {
		return fmt.Errorf("build reminder: %w", err)
	}

	opts = append(opts, asynq.Queue(n.queue))
	if _, err := n.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}

func (n *AsynqNotifier) AppointmentCancelled(ctx context.Context, ap domain.Appointment) error {
	return n.enqueue(ctx, TypeAppointmentCancelled, ap)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, typ string, ap domain.Appointment) error {
	task, err := newTask(typ, ap)
	if err != nil {
		return fmt.Errorf("build %s: %w", typ, err)
	}

	info, err := n.client.EnqueueContext(ctx, task, asynq.Queue(n.queue), asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", typ, err)
	}

	n.log.Debug("task enqueued",
		zap.String("type", typ),
		zap.String("task_id", info.ID),
		zap.String("appointment_id", ap.ID),
	)
	return nil
}

// LogNotifier only logs. Used when redis is not configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) AppointmentConfirmed(_ context.Context, ap domain.Appointment) error {
	n.log.Info("appointment confirmed",
		zap.String("appointment_id", ap.ID),
		zap.String("provider_id", ap.ProviderID),
		zap.Time("start", ap.Start),
	)
	return nil
}

func (n *LogNotifier) AppointmentCancelled(_ context.Context, ap domain.Appointment) error {
	n.log.Info("appointment cancelled",
		zap.String("appointment_id", ap.ID),
		zap.String("provider_id", ap.ProviderID),
	)
	return nil
}

var (
	_ domain.Notifier = (*AsynqNotifier)(nil)
	_ domain.Notifier = (*LogNotifier)(nil)
	_ Enqueuer        = (*asynq.Client)(nil)
)
