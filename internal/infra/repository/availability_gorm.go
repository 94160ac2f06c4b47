package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Weekly
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetWeeklyAvailability(
	ctx context.Context,
	providerID string,
) (domain.WeeklyAvailability, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return domain.WeeklyAvailability{}, err
	}

	return weeklyFromRows(rows)
}

// ReplaceWeeklyAvailability swaps every weekly row of the provider in one
// transaction.
func (r *AvailabilityGormRepository) ReplaceWeeklyAvailability(
	ctx context.Context,
	providerID string,
	weekly domain.WeeklyAvailability,
) error {

	rows := weeklyToRows(providerID, weekly)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ?", providerID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// --------------------------------------------------
// Overrides
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetDateOverride(
	ctx context.Context,
	providerID string,
	date domain.Date,
) (*domain.DateOverride, error) {

	var row models.DateOverride
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date.String()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o, err := overrideFromRow(row)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *AvailabilityGormRepository) ListDateOverrides(
	ctx context.Context,
	providerID string,
	from, to domain.Date,
) (map[domain.Date]domain.DateOverride, error) {

	var rows []models.DateOverride
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date BETWEEN ? AND ?", providerID, from.String(), to.String()).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[domain.Date]domain.DateOverride, len(rows))
	for _, row := range rows {
		o, err := overrideFromRow(row)
		if err != nil {
			return nil, err
		}
		out[o.Date] = o
	}
	return out, nil
}

func (r *AvailabilityGormRepository) UpsertDateOverride(
	ctx context.Context,
	providerID string,
	override domain.DateOverride,
) error {

	row := overrideToRow(providerID, override)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_available", "start_time", "end_time",
				"has_break", "break_start_time", "break_end_time", "updated_at",
			}),
		}).
		Create(&row).Error
}

func (r *AvailabilityGormRepository) DeleteDateOverride(
	ctx context.Context,
	providerID string,
	date domain.Date,
) error {
	return r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date.String()).
		Delete(&models.DateOverride{}).Error
}

var (
	_ domain.AvailabilityStore = (*AvailabilityGormRepository)(nil)
	_ domain.AvailabilityAdmin = (*AvailabilityGormRepository)(nil)
)
