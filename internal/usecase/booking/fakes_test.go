package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/infra/memory"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

// sunday is 2025-06-01, a Sunday.
var sunday = domain.Date{Year: 2025, Month: time.June, Day: 1}

func mondayRow() *domain.DaySchedule {
	return &domain.DaySchedule{
		Hours:       domain.Hours{Start: domain.MustClock("09:00"), End: domain.MustClock("18:00")},
		IsAvailable: true,
	}
}

type fixture struct {
	store *memory.Store
	clock *timezone.FixedClock
	cal   *Calendar
}

func newFixture(now time.Time) *fixture {
	store := memory.NewStore()
	store.PutProvider(domain.Provider{ID: "p1", Name: "Ana", Timezone: "UTC"})

	var w domain.WeeklyAvailability
	w[time.Monday] = mondayRow()
	_ = store.ReplaceWeeklyAvailability(context.Background(), "p1", w)

	clock := timezone.NewFixedClock(now)
	return &fixture{
		store: store,
		clock: clock,
		cal:   NewCalendar(store, store, clock, 30, "UTC"),
	}
}

// plainLedger hides the memory store's conditional insert so commits take
// the read-again-then-write path.
type plainLedger struct {
	inner   *memory.Store
	mu      sync.Mutex
	reads   int
	writes  int
	readErr error
	onRead  func()
	writeFn func(ctx context.Context) error
}

func (l *plainLedger) GetAppointmentsForDate(ctx context.Context, providerID string, date domain.Date) ([]domain.Appointment, error) {
	l.mu.Lock()
	l.reads++
	l.mu.Unlock()

	if l.readErr != nil {
		return nil, l.readErr
	}
	if l.onRead != nil {
		l.onRead()
	}
	return l.inner.GetAppointmentsForDate(ctx, providerID, date)
}

func (l *plainLedger) CreateAppointment(ctx context.Context, in domain.NewAppointment) (string, error) {
	l.mu.Lock()
	l.writes++
	l.mu.Unlock()

	if l.writeFn != nil {
		if err := l.writeFn(ctx); err != nil {
			return "", err
		}
	}
	return l.inner.CreateAppointment(ctx, in)
}

type recordingNotifier struct {
	mu        sync.Mutex
	confirmed []domain.Appointment
	cancelled []domain.Appointment
	err       error
}

func (n *recordingNotifier) AppointmentConfirmed(_ context.Context, ap domain.Appointment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, ap)
	return n.err
}

func (n *recordingNotifier) AppointmentCancelled(_ context.Context, ap domain.Appointment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelled = append(n.cancelled, ap)
	return n.err
}

type mutexLocker struct {
	mu    sync.Mutex
	calls int
}

func (l *mutexLocker) Lock(ctx context.Context, _ string) (func(), error) {
	l.mu.Lock()
	l.calls++
	return l.mu.Unlock, nil
}

type failingLocker struct{}

func (failingLocker) Lock(context.Context, string) (func(), error) {
	return nil, errors.New("redis down")
}
