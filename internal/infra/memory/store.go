package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// Store keeps every collaborator in process memory. It backs the memory
// storage driver and the HTTP tests.
type Store struct {
	mu sync.RWMutex

	providers    map[string]domain.Provider
	weekly       map[string]domain.WeeklyAvailability
	overrides    map[string]map[domain.Date]domain.DateOverride
	appointments map[string]domain.Appointment
	waitlist     map[string]domain.WaitlistEntry

	now func() time.Time
}

var (
	_ domain.ProviderDirectory     = (*Store)(nil)
	_ domain.AvailabilityStore     = (*Store)(nil)
	_ domain.AvailabilityAdmin     = (*Store)(nil)
	_ domain.AppointmentRepository = (*Store)(nil)
	_ domain.ConditionalLedger     = (*Store)(nil)
	_ domain.WaitlistStore         = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		providers:    map[string]domain.Provider{},
		weekly:       map[string]domain.WeeklyAvailability{},
		overrides:    map[string]map[domain.Date]domain.DateOverride{},
		appointments: map[string]domain.Appointment{},
		waitlist:     map[string]domain.WaitlistEntry{},
		now:          time.Now,
	}
}

// -------- Provider --------

func (s *Store) PutProvider(p domain.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[p.ID] = p
}

func (s *Store) GetProvider(_ context.Context, providerID string) (*domain.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.providers[providerID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
	}
	return &p, nil
}

// -------- Availability --------

func (s *Store) GetWeeklyAvailability(_ context.Context, providerID string) (domain.WeeklyAvailability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneWeekly(s.weekly[providerID]), nil
}

func (s *Store) GetDateOverride(_ context.Context, providerID string, date domain.Date) (*domain.DateOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.overrides[providerID][date]
	if !ok {
		return nil, nil
	}
	o = cloneOverride(o)
	return &o, nil
}

func (s *Store) ListDateOverrides(_ context.Context, providerID string, from, to domain.Date) (map[domain.Date]domain.DateOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[domain.Date]domain.DateOverride{}
	for d, o := range s.overrides[providerID] {
		if d.Before(from) || to.Before(d) {
			continue
		}
		out[d] = cloneOverride(o)
	}
	return out, nil
}

func (s *Store) ReplaceWeeklyAvailability(_ context.Context, providerID string, weekly domain.WeeklyAvailability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekly[providerID] = cloneWeekly(weekly)
	return nil
}

func (s *Store) UpsertDateOverride(_ context.Context, providerID string, override domain.DateOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, ok := s.overrides[providerID]
	if !ok {
		byDate = map[domain.Date]domain.DateOverride{}
		s.overrides[providerID] = byDate
	}
	byDate[override.Date] = cloneOverride(override)
	return nil
}

func (s *Store) DeleteDateOverride(_ context.Context, providerID string, date domain.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides[providerID], date)
	return nil
}

// -------- Appointments --------

func (s *Store) GetAppointmentsForDate(_ context.Context, providerID string, date domain.Date) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointmentsFor(providerID, date), nil
}

func (s *Store) CreateAppointment(_ context.Context, in domain.NewAppointment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(in), nil
}

// CreateAppointmentIfFree checks and inserts under one write lock.
func (s *Store) CreateAppointmentIfFree(_ context.Context, in domain.NewAppointment, guard domain.OverlapGuard) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if guard.Conflicts(in.Start, in.End(), s.appointmentsFor(in.ProviderID, in.Date)) {
		return "", httperr.ErrBusiness(httperr.CodeSlotTaken)
	}
	return s.insert(in), nil
}

func (s *Store) GetAppointment(_ context.Context, providerID, appointmentID string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[appointmentID]
	if !ok || ap.ProviderID != providerID {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentMissing)
	}
	return &ap, nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeAppointmentMissing)
	}
	s.appointments[ap.ID] = *ap
	return nil
}

func (s *Store) appointmentsFor(providerID string, date domain.Date) []domain.Appointment {
	out := []domain.Appointment{}
	for _, ap := range s.appointments {
		if ap.ProviderID == providerID && ap.Date == date {
			out = append(out, ap)
		}
	}
	slices.SortFunc(out, func(a, b domain.Appointment) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

func (s *Store) insert(in domain.NewAppointment) string {
	id := uuid.NewString()
	s.appointments[id] = domain.Appointment{
		ID:              id,
		ProviderID:      in.ProviderID,
		ClientID:        in.ClientID,
		ServiceID:       in.ServiceID,
		Date:            in.Date,
		Start:           in.Start,
		DurationMinutes: in.DurationMinutes,
		Status:          domain.InitialStatus(),
		CreatedAt:       s.now(),
	}
	return id
}

// -------- Waitlist --------

func (s *Store) CreateWaitlistEntry(_ context.Context, entry domain.WaitlistEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.waitlist[entry.ID] = entry
	return entry.ID, nil
}

func (s *Store) GetWaitlistEntry(_ context.Context, entryID string) (*domain.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.waitlist[entryID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeWaitlistMissing)
	}
	return &e, nil
}

func (s *Store) ListWaitlist(_ context.Context, providerID string, date domain.Date, status domain.WaitlistStatus) ([]domain.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.WaitlistEntry{}
	for _, e := range s.waitlist {
		if e.ProviderID == providerID && e.RequestedDate == date && e.Status == status {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b domain.WaitlistEntry) int {
		if a.Priority != b.Priority {
			return cmp.Compare(a.Priority, b.Priority)
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateWaitlistEntry(_ context.Context, entry *domain.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.waitlist[entry.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeWaitlistMissing)
	}
	s.waitlist[entry.ID] = *entry
	return nil
}

func (s *Store) WaitingProviders(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []string{}
	for _, e := range s.waitlist {
		if e.Status == domain.WaitlistWaiting && !slices.Contains(out, e.ProviderID) {
			out = append(out, e.ProviderID)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (s *Store) RemoveExpiredWaiting(_ context.Context, providerID string, before domain.Date) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.waitlist {
		if e.ProviderID == providerID && e.Status == domain.WaitlistWaiting && e.RequestedDate.Before(before) {
			e.Status = domain.WaitlistRemoved
			s.waitlist[id] = e
			n++
		}
	}
	return n, nil
}

// -------- copies --------

func cloneWeekly(w domain.WeeklyAvailability) domain.WeeklyAvailability {
	var out domain.WeeklyAvailability
	for i, row := range w {
		if row == nil {
			continue
		}
		r := *row
		r.Hours = cloneHours(row.Hours)
		out[i] = &r
	}
	return out
}

func cloneOverride(o domain.DateOverride) domain.DateOverride {
	if o.Hours != nil {
		h := cloneHours(*o.Hours)
		o.Hours = &h
	}
	return o
}

func cloneHours(h domain.Hours) domain.Hours {
	if h.Break != nil {
		b := *h.Break
		h.Break = &b
	}
	return h
}
