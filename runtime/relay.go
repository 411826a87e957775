package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"

	"github.com/abadojack/whatlanggo"
)

// AuditRelay packages a message and forwards it to the audit log right away.
// Nothing is kept in memory.
type AuditRelay struct {
	audit contract.AuditLog
	log   *slog.Logger
}

func NewAuditRelay(audit contract.AuditLog, log *slog.Logger) AuditRelay {
	return AuditRelay{audit: audit, log: log.With(slog.String("component", "relay"))}
}

var _ contract.MessageRelay = AuditRelay{}

// Relay logs the tagged message with the room owners as audience.
func (r AuditRelay) Relay(ctx context.Context, room domain.Room, msg domain.Message) (domain.AuditEntry, error) {
	entry := ToAuditEntry(room, msg)
	if err := r.audit.Log(ctx, entry, room.Owners); err != nil {
		return entry, fmt.Errorf("audit log: %w", err)
	}
	r.log.Debug("Message relayed", "roomID", room.ID, "eventID", entry.EventID, "direction", entry.Direction)
	return entry, nil
}

func ToAuditEntry(room domain.Room, msg domain.Message) domain.AuditEntry {
	return domain.AuditEntry{
		EventID:   msg.ID.String(),
		RoomID:    room.ID,
		ProjectID: room.ProjectID,
		ClientID:  msg.Visitor().ClientID,
		From:      msg.From.Name,
		To:        msg.To.Name,
		Direction: msg.Direction(),
		Text:      msg.TaggedBody(),
		Lang:      detectLang(msg.Body),
		At:        msg.CreatedAt,
	}
}

func detectLang(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
