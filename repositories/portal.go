package repositories

import (
	"context"
	"fmt"
	"portal-chat/contract"
	"portal-chat/domain"
	"portal-chat/errors"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type PortalRecord struct {
	ID        string `gorm:"primaryKey"`
	URI       string `gorm:"uniqueIndex;not null"`
	Name      string
	ProjectID string `gorm:"index"`
	CreatedAt time.Time
}

func (PortalRecord) TableName() string { return "portals" }

type PageRecord struct {
	ID        string `gorm:"primaryKey"`
	PortalID  string `gorm:"uniqueIndex:portal_page_uri;not null"`
	URI       string `gorm:"uniqueIndex:portal_page_uri;not null"`
	CreatedAt time.Time
}

func (PageRecord) TableName() string { return "pages" }

type PortalRepository struct {
	db *gorm.DB
}

func NewPortalRepository(db *gorm.DB) PortalRepository {
	return PortalRepository{db: db}
}

var _ contract.PortalDirectory = PortalRepository{}

// FindPortalByURI resolves a tenant together with the emails of its owners.
func (r PortalRepository) FindPortalByURI(ctx context.Context, uri string) (domain.Portal, bool, error) {
	var record PortalRecord
	if err := r.db.WithContext(ctx).Where("uri = ?", uri).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Portal{}, false, nil
		}
		return domain.Portal{}, false, fmt.Errorf("failed to find portal: %w", err)
	}
	var owners []string
	err := r.db.WithContext(ctx).Model(&OwnerRecord{}).
		Where("portal_id = ?", record.ID).
		Order("email ASC").
		Pluck("email", &owners).Error
	if err != nil {
		return domain.Portal{}, false, fmt.Errorf("failed to list owners: %w", err)
	}
	return toPortal(record, owners), true, nil
}

func (r PortalRepository) FindPageByURI(ctx context.Context, portal domain.Portal, uri string) (domain.Page, bool, error) {
	var record PageRecord
	err := r.db.WithContext(ctx).
		Where("portal_id = ? AND uri = ?", portal.ID, uri).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Page{}, false, nil
		}
		return domain.Page{}, false, fmt.Errorf("failed to find page: %w", err)
	}
	return domain.Page{ID: record.ID, PortalID: record.PortalID, URI: record.URI}, true, nil
}

func (r PortalRepository) CreatePortal(ctx context.Context, portal domain.Portal) error {
	record := PortalRecord{ID: portal.ID, URI: portal.URI, Name: portal.Name, ProjectID: portal.ProjectID}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create portal: %w", err)
	}
	return nil
}

func (r PortalRepository) CreatePage(ctx context.Context, page domain.Page) error {
	record := PageRecord{ID: page.ID, PortalID: page.PortalID, URI: page.URI}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

// ListPortals returns every portal ordered by uri, without owners.
func (r PortalRepository) ListPortals(ctx context.Context) ([]domain.Portal, error) {
	var records []PortalRecord
	if err := r.db.WithContext(ctx).Order("uri ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list portals: %w", err)
	}
	return lo.Map(records, func(item PortalRecord, _ int) domain.Portal {
		return toPortal(item, nil)
	}), nil
}

func toPortal(record PortalRecord, owners []string) domain.Portal {
	return domain.Portal{
		ID:        record.ID,
		URI:       record.URI,
		Name:      record.Name,
		ProjectID: record.ProjectID,
		Owners:    owners,
	}
}
