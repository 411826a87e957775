package main

import (
	"context"
	"fmt"
	"log/slog"

	"portal-chat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var auditCmd = &cobra.Command{Use: "audit", Short: "Read the audit log"}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audited messages of a project, or the transcript of one visitor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		project := flagString(cmd, "project")
		client := flagString(cmd, "client")
		limit, _ := cmd.Flags().GetInt("limit")
		if project == "" {
			return fmt.Errorf("--project is required")
		}

		// read-only and lock-free so that it works next to a running server
		db, err := badger.Open(badger.DefaultOptions(viper.GetString(badgerFilepathKey)).
			WithReadOnly(true).
			WithBypassLockGuard(true).
			WithLogger(nil))
		if err != nil {
			return fmt.Errorf("failed to open audit log: %w", err)
		}
		defer func() { _ = db.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		audit := repositories.NewAuditRepository(db, slog.New(slog.DiscardHandler))

		table := newTable([]string{"At", "Direction", "From", "To", "Lang", "Text"})
		if client != "" {
			messages, err := audit.FindAllMessages(ctx, project, client, 0, limit)
			if err != nil {
				return err
			}
			for _, m := range messages {
				table.Append([]string{m.At.Format("2006-01-02 15:04:05"), string(m.Direction), m.From, m.To, "", m.Text})
			}
		} else {
			records, err := audit.ListRecent(ctx, project, limit)
			if err != nil {
				return err
			}
			for _, r := range records {
				e := r.Entry
				table.Append([]string{e.At.Format("2006-01-02 15:04:05"), string(e.Direction), e.From, e.To, e.Lang, e.Text})
			}
		}
		table.Render()
		return nil
	},
}

func init() {
	auditListCmd.Flags().String("project", "", "Project id")
	auditListCmd.Flags().String("client", "", "Client id of a visitor")
	auditListCmd.Flags().Int("limit", 50, "Maximum number of lines")
	auditCmd.AddCommand(auditListCmd)
}
