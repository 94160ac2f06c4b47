package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentsForDate(
	ctx context.Context,
	providerID string,
	date domain.Date,
) ([]domain.Appointment, error) {

	rows, err := listForDate(r.db.WithContext(ctx), providerID, date)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, appointmentFromRow(row))
	}
	return out, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	in domain.NewAppointment,
) (string, error) {

	row := newAppointmentRow(in)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", translateWriteErr(err)
	}
	return row.ID, nil
}

// CreateAppointmentIfFree serialises writers of one provider with a
// transaction-scoped advisory lock, re-reads the day under FOR UPDATE and
// inserts only when guard finds no conflict. The exclusion constraint on
// appointments rejects anything that slips past.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	in domain.NewAppointment,
	guard domain.OverlapGuard,
) (string, error) {

	row := newAppointmentRow(in)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", in.ProviderID).Error; err != nil {
			return err
		}

		rows, err := listForDate(tx.Clauses(clause.Locking{Strength: "UPDATE"}), in.ProviderID, in.Date)
		if err != nil {
			return err
		}

		existing := make([]domain.Appointment, 0, len(rows))
		for _, cur := range rows {
			existing = append(existing, appointmentFromRow(cur))
		}

		if guard.Conflicts(in.Start, in.End(), existing) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(&row).Error
	})
	if err != nil {
		return "", translateWriteErr(err)
	}

	return row.ID, nil
}

// --------------------------------------------------
// Appointment (Cancel / Complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	providerID string,
	appointmentID string,
) (*domain.Appointment, error) {

	if _, err := uuid.Parse(appointmentID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentMissing)
	}

	var row models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", appointmentID, providerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentMissing)
	}
	if err != nil {
		return nil, err
	}

	ap := appointmentFromRow(row)
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *domain.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND provider_id = ?", ap.ID, ap.ProviderID).
		Updates(map[string]any{
			"status":       string(ap.Status),
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentMissing)
	}
	return nil
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func listForDate(db *gorm.DB, providerID string, date domain.Date) ([]models.Appointment, error) {
	var rows []models.Appointment
	if err := db.
		Where("provider_id = ? AND date = ?", providerID, date.String()).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func newAppointmentRow(in domain.NewAppointment) models.Appointment {
	return models.Appointment{
		ID:              uuid.NewString(),
		ProviderID:      in.ProviderID,
		ClientID:        in.ClientID,
		ServiceID:       in.ServiceID,
		Date:            in.Date.Midnight(),
		StartTime:       in.Start,
		EndTime:         in.End(),
		DurationMinutes: in.DurationMinutes,
		Status:          string(domain.InitialStatus()),
	}
}

func translateWriteErr(err error) error {
	if httperr.IsExclusionConflict(err) {
		return httperr.Wrap(httperr.CodeSlotTaken, err)
	}
	return err
}

// Compile-time check
var (
	_ domain.AppointmentRepository = (*AppointmentGormRepository)(nil)
	_ domain.ConditionalLedger     = (*AppointmentGormRepository)(nil)
)
