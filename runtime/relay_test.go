package runtime_test

import (
	"context"
	"log/slog"
	"portal-chat/domain"
	"portal-chat/mocks"
	"portal-chat/runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditRelay_Relay_Logs_Tagged_Entry_To_Owners(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditLog(ctrl)
	relay := runtime.NewAuditRelay(audit, slog.New(slog.DiscardHandler))

	room := domain.NewRoom(acme, home)
	admin := domain.NewAdmin(room, "Support")
	visitor := domain.NewVisitor(room.ID, "73110302", "73110302", "203.0.113.7", "Visitor")
	body := "Could you please tell me when my order will be delivered to my house in the countryside"
	msg := domain.NewMessage(room.ID, visitor, admin, body)

	audit.EXPECT().Log(gomock.Any(), gomock.Any(), []string{"owner@acme.example"}).Return(nil)

	// When a visitor message is relayed
	entry, err := relay.Relay(context.Background(), room, msg)

	// Then the entry is tagged inbound and keyed by the visitor client id
	req.NoError(err)
	req.Equal(msg.ID.String(), entry.EventID)
	req.Equal("acme", entry.RoomID)
	req.Equal("proj-1", entry.ProjectID)
	req.Equal("73110302", entry.ClientID)
	req.Equal(domain.InboundMarker+body, entry.Text)
	req.Equal(domain.DirectionInbound, entry.Direction)
	req.Equal("en", entry.Lang)
	req.Equal(msg.CreatedAt, entry.At)
}
