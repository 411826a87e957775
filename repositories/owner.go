//go:generate go run go.uber.org/mock/mockgen -source=owner.go -destination=../mocks/mock_owner_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"portal-chat/domain"
	"portal-chat/errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IOwnerRepository interface {
	CreateOwner(ctx context.Context, portalID, email, hashedPassword string) (string, error)
	GetOwnerByEmail(ctx context.Context, email string) (domain.Owner, bool, error)
}

type OwnerRecord struct {
	ID           string `gorm:"primaryKey"`
	PortalID     string `gorm:"index;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (OwnerRecord) TableName() string { return "owners" }

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return OwnerRepository{db: db}
}

// CreateOwner persists an operator account and returns its generated id.
// The password must already be hashed.
func (r OwnerRepository) CreateOwner(ctx context.Context, portalID, email, hashedPassword string) (string, error) {
	email = strings.ToLower(email)
	newID := uuid.NewString()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&OwnerRecord{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrOwnerAlreadyExists
		}
		return tx.Create(&OwnerRecord{
			ID:           newID,
			PortalID:     portalID,
			Email:        email,
			PasswordHash: hashedPassword,
		}).Error
	})
	if err != nil {
		return "", fmt.Errorf("failed to create owner: %w", err)
	}
	return newID, nil
}

func (r OwnerRepository) GetOwnerByEmail(ctx context.Context, email string) (domain.Owner, bool, error) {
	var record OwnerRecord
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Owner{}, false, nil
		}
		return domain.Owner{}, false, fmt.Errorf("failed to find owner: %w", err)
	}
	return domain.Owner{
		ID:           record.ID,
		PortalID:     record.PortalID,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		CreatedAt:    record.CreatedAt,
	}, true, nil
}
