package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type WaitlistGormRepository struct {
	db *gorm.DB
}

func NewWaitlistGormRepository(db *gorm.DB) *WaitlistGormRepository {
	return &WaitlistGormRepository{db: db}
}

func (r *WaitlistGormRepository) CreateWaitlistEntry(
	ctx context.Context,
	entry domain.WaitlistEntry,
) (string, error) {

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	row := models.WaitlistEntry{
		ID:            id,
		ProviderID:    entry.ProviderID,
		ClientID:      entry.ClientID,
		ServiceID:     entry.ServiceID,
		RequestedDate: entry.RequestedDate.Midnight(),
		TimeStart:     entry.TimeStart.String(),
		TimeEnd:       entry.TimeEnd.String(),
		Status:        string(entry.Status),
		Priority:      entry.Priority,
		Notes:         entry.Notes,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *WaitlistGormRepository) GetWaitlistEntry(
	ctx context.Context,
	entryID string,
) (*domain.WaitlistEntry, error) {

	if _, err := uuid.Parse(entryID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeWaitlistMissing)
	}

	var row models.WaitlistEntry
	err := r.db.WithContext(ctx).First(&row, "id = ?", entryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeWaitlistMissing)
	}
	if err != nil {
		return nil, err
	}

	e, err := waitlistFromRow(row)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *WaitlistGormRepository) ListWaitlist(
	ctx context.Context,
	providerID string,
	date domain.Date,
	status domain.WaitlistStatus,
) ([]domain.WaitlistEntry, error) {

	var rows []models.WaitlistEntry
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND requested_date = ? AND status = ?", providerID, date.String(), string(status)).
		Order("priority ASC").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.WaitlistEntry, 0, len(rows))
	for _, row := range rows {
		e, err := waitlistFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *WaitlistGormRepository) UpdateWaitlistEntry(
	ctx context.Context,
	entry *domain.WaitlistEntry,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"status": string(entry.Status),
			"notes":  entry.Notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeWaitlistMissing)
	}
	return nil
}

func (r *WaitlistGormRepository) WaitingProviders(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("status = ?", string(domain.WaitlistWaiting)).
		Distinct().
		Order("provider_id").
		Pluck("provider_id", &ids).Error
	return ids, err
}

func (r *WaitlistGormRepository) RemoveExpiredWaiting(
	ctx context.Context,
	providerID string,
	before domain.Date,
) (int, error) {

	res := r.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("provider_id = ? AND status = ? AND requested_date < ?", providerID, string(domain.WaitlistWaiting), before.String()).
		Update("status", string(domain.WaitlistRemoved))
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

var _ domain.WaitlistStore = (*WaitlistGormRepository)(nil)
