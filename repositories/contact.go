package repositories

import (
	"context"
	"fmt"
	"portal-chat/contract"
	"portal-chat/domain"
	"portal-chat/errors"
	"strings"

	"gorm.io/gorm"
)

type ContactRecord struct {
	ID          string `gorm:"primaryKey"`
	PortalID    string `gorm:"uniqueIndex:portal_contact_name;not null"`
	UserName    string `gorm:"uniqueIndex:portal_contact_name;not null"` // stored lower-cased
	DisplayName string
}

func (ContactRecord) TableName() string { return "contacts" }

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return ContactRepository{db: db}
}

var _ contract.ContactDirectory = ContactRepository{}

// FindContactByUserName matches user names case-insensitively within the portal of the room.
func (r ContactRepository) FindContactByUserName(ctx context.Context, room domain.Room, userName string) (domain.Contact, bool, error) {
	var record ContactRecord
	err := r.db.WithContext(ctx).
		Where("portal_id = ? AND user_name = ?", room.PortalID, strings.ToLower(userName)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Contact{}, false, nil
		}
		return domain.Contact{}, false, fmt.Errorf("failed to find contact: %w", err)
	}
	return domain.Contact{
		ID:          record.ID,
		PortalID:    record.PortalID,
		UserName:    record.UserName,
		DisplayName: record.DisplayName,
	}, true, nil
}

func (r ContactRepository) CreateContact(ctx context.Context, contact domain.Contact) error {
	record := ContactRecord{
		ID:          contact.ID,
		PortalID:    contact.PortalID,
		UserName:    strings.ToLower(contact.UserName),
		DisplayName: contact.DisplayName,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}
