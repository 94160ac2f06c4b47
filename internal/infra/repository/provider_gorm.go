package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type ProviderGormRepository struct {
	db *gorm.DB
}

func NewProviderGormRepository(db *gorm.DB) *ProviderGormRepository {
	return &ProviderGormRepository{db: db}
}

func (r *ProviderGormRepository) GetProvider(
	ctx context.Context,
	providerID string,
) (*domain.Provider, error) {

	var p models.Provider
	err := r.db.WithContext(ctx).First(&p, "id = ?", providerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Provider{ID: p.ID, Name: p.Name, Timezone: p.Timezone}, nil
}

var _ domain.ProviderDirectory = (*ProviderGormRepository)(nil)
