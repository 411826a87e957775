package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"portal-chat/auth"
	"portal-chat/domain"
	"portal-chat/repositories"
	"portal-chat/services"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const commandTimeout = 10 * time.Second

// withDirectory opens and migrates the sqlite directory for one command.
func withDirectory(fn func(ctx context.Context, db *gorm.DB) error) error {
	db, err := repositories.OpenSQLite(viper.GetString(sqlitePathKey), false)
	if err != nil {
		return err
	}
	defer func() { _ = repositories.CloseSQLite(db) }()
	if err := repositories.Migrate(db); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return fn(ctx, db)
}

func success(format string, args ...any) {
	fmt.Println(color.FgGreen.Render("✔ ") + fmt.Sprintf(format, args...))
}

var portalCmd = &cobra.Command{Use: "portal", Short: "Manage tenant portals"}

var portalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a portal, its id becomes the chat room id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		portal := domain.Portal{
			ID:        flagString(cmd, "id"),
			URI:       flagString(cmd, "uri"),
			Name:      flagString(cmd, "name"),
			ProjectID: flagString(cmd, "project"),
		}
		if portal.ID == "" || portal.URI == "" {
			return fmt.Errorf("--id and --uri are required")
		}
		return withDirectory(func(ctx context.Context, db *gorm.DB) error {
			if err := repositories.NewPortalRepository(db).CreatePortal(ctx, portal); err != nil {
				return err
			}
			success("portal %s registered at %s", portal.ID, portal.URI)
			return nil
		})
	},
}

var portalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered portals",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withDirectory(func(ctx context.Context, db *gorm.DB) error {
			portals, err := repositories.NewPortalRepository(db).ListPortals(ctx)
			if err != nil {
				return err
			}
			table := newTable([]string{"ID", "URI", "Name", "Project"})
			for _, p := range portals {
				table.Append([]string{p.ID, p.URI, p.Name, p.ProjectID})
			}
			table.Render()
			return nil
		})
	},
}

var pageCmd = &cobra.Command{Use: "page", Short: "Manage portal pages"}

var pageAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a page of a portal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page := domain.Page{ID: uuid.NewString(), PortalID: flagString(cmd, "portal"), URI: flagString(cmd, "uri")}
		if page.PortalID == "" || page.URI == "" {
			return fmt.Errorf("--portal and --uri are required")
		}
		return withDirectory(func(ctx context.Context, db *gorm.DB) error {
			if err := repositories.NewPortalRepository(db).CreatePage(ctx, page); err != nil {
				return err
			}
			success("page %s added to %s", page.URI, page.PortalID)
			return nil
		})
	},
}

var ownerCmd = &cobra.Command{Use: "owner", Short: "Manage portal owners"}

var ownerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an owner account, owners log in as the room admin",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDirectory(func(ctx context.Context, db *gorm.DB) error {
			// the token issuer is unused by Register
			svc := services.NewAuthService(repositories.NewOwnerRepository(db), auth.NewTokenIssuer("", 0))
			id, err := svc.Register(ctx, flagString(cmd, "portal"), flagString(cmd, "email"), flagString(cmd, "password"))
			if err != nil {
				return err
			}
			success("owner %s created (%s)", flagString(cmd, "email"), id)
			return nil
		})
	},
}

var contactCmd = &cobra.Command{Use: "contact", Short: "Manage CRM contacts"}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a contact matched from a visitor name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		contact := domain.Contact{
			ID:          uuid.NewString(),
			PortalID:    flagString(cmd, "portal"),
			UserName:    flagString(cmd, "user"),
			DisplayName: flagString(cmd, "display"),
		}
		if contact.PortalID == "" || contact.UserName == "" {
			return fmt.Errorf("--portal and --user are required")
		}
		return withDirectory(func(ctx context.Context, db *gorm.DB) error {
			if err := repositories.NewContactRepository(db).CreateContact(ctx, contact); err != nil {
				return err
			}
			success("contact %s added to %s", contact.UserName, contact.PortalID)
			return nil
		})
	},
}

func init() {
	portalAddCmd.Flags().String("id", "", "Portal id")
	portalAddCmd.Flags().String("uri", "", "Portal uri")
	portalAddCmd.Flags().String("name", "", "Display name")
	portalAddCmd.Flags().String("project", "", "Project id used to key transcripts")
	portalCmd.AddCommand(portalAddCmd, portalListCmd)

	pageAddCmd.Flags().String("portal", "", "Portal id")
	pageAddCmd.Flags().String("uri", "", "Page uri")
	pageCmd.AddCommand(pageAddCmd)

	ownerAddCmd.Flags().String("portal", "", "Portal id")
	ownerAddCmd.Flags().String("email", "", "Owner email")
	ownerAddCmd.Flags().String("password", "", "Owner password")
	ownerCmd.AddCommand(ownerAddCmd)

	contactAddCmd.Flags().String("portal", "", "Portal id")
	contactAddCmd.Flags().String("user", "", "Visitor user name")
	contactAddCmd.Flags().String("display", "", "Display name")
	contactCmd.AddCommand(contactAddCmd)
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
