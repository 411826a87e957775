package repositories

import (
	"context"
	"path/filepath"
	"portal-chat/domain"
	"portal-chat/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "portal.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseSQLite(db) })
	return db
}

func seedAcme(t *testing.T, db *gorm.DB) {
	t.Helper()
	req := require.New(t)
	ctx := context.Background()
	portals := NewPortalRepository(db)
	owners := NewOwnerRepository(db)
	req.NoError(portals.CreatePortal(ctx, domain.Portal{ID: "acme", URI: "acme.example", Name: "Acme", ProjectID: "proj-1"}))
	req.NoError(portals.CreatePage(ctx, domain.Page{ID: "home-id", PortalID: "acme", URI: "home"}))
	_, err := owners.CreateOwner(ctx, "acme", "Zoe@acme.example", "hash-1")
	req.NoError(err)
	_, err = owners.CreateOwner(ctx, "acme", "adam@acme.example", "hash-2")
	req.NoError(err)
}

func TestPortalRepository_FindPortalByURI_Loads_Owners(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	seedAcme(t, db)
	portals := NewPortalRepository(db)

	portal, ok, err := portals.FindPortalByURI(context.Background(), "acme.example")

	req.NoError(err)
	req.True(ok)
	req.Equal("acme", portal.ID)
	req.Equal("proj-1", portal.ProjectID)
	req.Equal([]string{"adam@acme.example", "zoe@acme.example"}, portal.Owners)
}

func TestPortalRepository_Unknown_Portal_And_Page(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	seedAcme(t, db)
	portals := NewPortalRepository(db)

	_, ok, err := portals.FindPortalByURI(ctx, "nowhere.example")
	req.NoError(err)
	req.False(ok)

	portal, _, err := portals.FindPortalByURI(ctx, "acme.example")
	req.NoError(err)
	page, ok, err := portals.FindPageByURI(ctx, portal, "home")
	req.NoError(err)
	req.True(ok)
	req.Equal("home-id", page.ID)

	_, ok, err = portals.FindPageByURI(ctx, portal, "pricing")
	req.NoError(err)
	req.False(ok)

	// A page uri only resolves within its own portal
	_, ok, err = portals.FindPageByURI(ctx, domain.Portal{ID: "other"}, "home")
	req.NoError(err)
	req.False(ok)
}

func TestPortalRepository_ListPortals(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	seedAcme(t, db)
	portals := NewPortalRepository(db)
	req.NoError(portals.CreatePortal(ctx, domain.Portal{ID: "beta", URI: "beta.example"}))

	list, err := portals.ListPortals(ctx)

	req.NoError(err)
	req.Len(list, 2)
	req.Equal("acme.example", list[0].URI)
	req.Equal("beta.example", list[1].URI)
}

func TestContactRepository_FindContactByUserName_Is_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	contacts := NewContactRepository(db)
	req.NoError(contacts.CreateContact(ctx, domain.Contact{ID: "c-1", PortalID: "acme", UserName: "Jdoe", DisplayName: "John Doe"}))
	room := domain.Room{ID: "acme", PortalID: "acme"}

	contact, ok, err := contacts.FindContactByUserName(ctx, room, "JDOE")
	req.NoError(err)
	req.True(ok)
	req.Equal("c-1", contact.ID)
	req.Equal("jdoe", contact.UserName)
	req.Equal("John Doe", contact.DisplayName)

	// Contacts of another portal are not visible
	_, ok, err = contacts.FindContactByUserName(ctx, domain.Room{ID: "beta", PortalID: "beta"}, "jdoe")
	req.NoError(err)
	req.False(ok)
}

func TestOwnerRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	owners := NewOwnerRepository(db)

	id, err := owners.CreateOwner(ctx, "acme", "Owner@Acme.example", "hash")
	req.NoError(err)
	req.NotEmpty(id)

	owner, ok, err := owners.GetOwnerByEmail(ctx, "owner@acme.example")
	req.NoError(err)
	req.True(ok)
	req.Equal(id, owner.ID)
	req.Equal("acme", owner.PortalID)
	req.Equal("hash", owner.PasswordHash)

	// When the same email registers again
	_, err = owners.CreateOwner(ctx, "acme", "owner@acme.example", "other")
	req.ErrorIs(err, errors.ErrOwnerAlreadyExists)

	_, ok, err = owners.GetOwnerByEmail(ctx, "ghost@acme.example")
	req.NoError(err)
	req.False(ok)
}
