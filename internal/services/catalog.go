package services

import (
	"github.com/wfxclan/clanbot/internal/models"
	"github.com/wfxclan/clanbot/pkg/errors"
)

type loadoutSource interface {
	Loadouts() []models.Loadout
}

// CatalogPage is one rendered page of the loadout catalog.
type CatalogPage struct {
	Entries    []models.Loadout
	Index      int
	TotalPages int

	// One image slot per page: the last entry carrying an image wins.
	ImageURL string

	HasPrev bool
	HasNext bool
}

// CatalogService computes stateless pagination views over the loadout
// snapshot. Every navigation interaction re-derives its page from the
// current snapshot.
type CatalogService struct {
	source   loadoutSource
	pageSize int
}

func NewCatalogService(source loadoutSource, pageSize int) *CatalogService {
	return &CatalogService{
		source:   source,
		pageSize: pageSize,
	}
}

// Page returns the zero-based page at index. Out-of-range indices are
// clamped: button payloads come from the platform and cannot be trusted
// to stay in range.
func (s *CatalogService) Page(index int) (*CatalogPage, error) {
	loadouts := s.source.Loadouts()
	if len(loadouts) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no loadouts in the catalog yet")
	}

	totalPages := (len(loadouts) + s.pageSize - 1) / s.pageSize
	if index < 0 {
		index = 0
	}
	if index >= totalPages {
		index = totalPages - 1
	}

	start := index * s.pageSize
	end := start + s.pageSize
	if end > len(loadouts) {
		end = len(loadouts)
	}

	page := &CatalogPage{
		Entries:    loadouts[start:end],
		Index:      index,
		TotalPages: totalPages,
		HasPrev:    index > 0,
		HasNext:    index < totalPages-1,
	}

	for _, l := range page.Entries {
		if l.WeaponImage != "" {
			page.ImageURL = l.WeaponImage
		}
	}

	return page, nil
}
