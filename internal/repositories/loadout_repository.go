package repositories

import (
	"github.com/wfxclan/clanbot/internal/models"
	"github.com/wfxclan/clanbot/pkg/errors"
	"gorm.io/gorm"
)

type LoadoutRepository struct {
	db *gorm.DB
}

func NewLoadoutRepository(db *gorm.DB) *LoadoutRepository {
	return &LoadoutRepository{db: db}
}

// CreateLoadout appends a loadout to the catalog. The catalog is
// append-only; no update or delete is exposed.
func (r *LoadoutRepository) CreateLoadout(loadout *models.Loadout) error {
	result := r.db.Create(loadout)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create loadout")
	}
	return nil
}

// ListLoadouts returns the full catalog in insertion order
func (r *LoadoutRepository) ListLoadouts() ([]models.Loadout, error) {
	var loadouts []models.Loadout
	result := r.db.Order("id ASC").Find(&loadouts)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list loadouts")
	}
	return loadouts, nil
}
