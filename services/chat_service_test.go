package services

import (
	"context"
	"log/slog"
	"portal-chat/domain"
	"portal-chat/errors"
	"portal-chat/mocks"
	"portal-chat/moderation"
	"portal-chat/runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	acme = domain.Portal{ID: "acme", URI: "acme.example", Name: "Acme", ProjectID: "proj-1", Owners: []string{"owner@acme.example"}}
	home = domain.Page{ID: "home-id", PortalID: "acme", URI: "home"}
)

type chatFixture struct {
	svc     *ChatService
	audit   *mocks.MockAuditLog
	history *mocks.MockHistoryQuery
	search  *mocks.MockTranscriptSearch
}

func newChatFixture(t *testing.T) chatFixture {
	ctrl := gomock.NewController(t)
	log := slog.New(slog.DiscardHandler)
	portals := mocks.NewMockPortalDirectory(ctrl)
	portals.EXPECT().FindPortalByURI(gomock.Any(), acme.URI).Return(acme, true, nil).AnyTimes()
	portals.EXPECT().FindPortalByURI(gomock.Any(), gomock.Any()).Return(domain.Portal{}, false, nil).AnyTimes()
	portals.EXPECT().FindPageByURI(gomock.Any(), acme, home.URI).Return(home, true, nil).AnyTimes()
	contacts := mocks.NewMockContactDirectory(ctrl)
	contacts.EXPECT().FindContactByUserName(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Contact{}, false, nil).AnyTimes()

	f := chatFixture{
		audit:   mocks.NewMockAuditLog(ctrl),
		history: mocks.NewMockHistoryQuery(ctrl),
		search:  mocks.NewMockTranscriptSearch(ctrl),
	}
	moderator, err := moderation.NewModerator([]string{"idiot"}, '*', log)
	require.NoError(t, err)
	orch := runtime.NewOrchestrator(log, runtime.NewMemoryStore(log), runtime.NewAuditRelay(f.audit, log), portals, contacts)
	f.svc = NewChatService(log, orch, &moderator, f.history, f.search, 50)
	return f
}

func (f chatFixture) joinVisitor(t *testing.T, connID, ip string) runtime.Presence {
	p, err := f.svc.Join(context.Background(), JoinRequest{PortalURI: acme.URI, PageURI: home.URI, ConnectionID: connID, IPAddress: ip})
	require.NoError(t, err)
	return p
}

func (f chatFixture) joinAdmin(t *testing.T, connID string) runtime.Presence {
	p, err := f.svc.Join(context.Background(), JoinRequest{
		PortalURI: acme.URI, PageURI: home.URI, ConnectionID: connID,
		Identity: domain.AdminUserName(acme.ID), NickName: "Support",
	})
	require.NoError(t, err)
	return p
}

func TestChatService_Join_Validates_Request(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	t.Run("missing portal is an invalid room reference", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Join(ctx, JoinRequest{PageURI: home.URI, ConnectionID: "c"})
		req.ErrorIs(err, errors.ErrInvalidRoomReference)
	})

	t.Run("missing connection id", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Join(ctx, JoinRequest{PortalURI: acme.URI, PageURI: home.URI})
		req.ErrorIs(err, errors.ErrEmptyConnectionID)
	})

	t.Run("malformed ip address", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Join(ctx, JoinRequest{PortalURI: acme.URI, PageURI: home.URI, ConnectionID: "c", IPAddress: "not-an-ip"})
		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("unknown portal", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Join(ctx, JoinRequest{PortalURI: "ghost.example", PageURI: home.URI, ConnectionID: "c"})
		req.ErrorIs(err, errors.ErrPortalNotFound)
	})
}

func TestChatService_Send_Censors_Visitor_Messages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t)

	// Given a visitor and the admin in the same room
	visitor := f.joinVisitor(t, "v-1", "203.0.113.7")
	f.joinAdmin(t, "a-1")
	f.audit.EXPECT().Log(gomock.Any(), gomock.Any(), acme.Owners).Return(nil).Times(2)

	// When the visitor insults the admin
	delivery, err := f.svc.Send(ctx, "v-1", domain.AdminUserName(acme.ID), "you idiot")

	// Then the body is censored and both sides are recipients
	req.NoError(err)
	req.NotContains(delivery.Message.Body, "idiot")
	req.Equal(visitor.User.Name, delivery.Message.From.Name)
	req.ElementsMatch([]string{"v-1", "a-1"}, delivery.Recipients)

	// When the admin uses the same word
	delivery, err = f.svc.Send(ctx, "a-1", visitor.User.Name, "idiot is a censored word")

	// Then it is relayed untouched
	req.NoError(err)
	req.Equal("idiot is a censored word", delivery.Message.Body)
}

func TestChatService_Send_Rejects_Bad_Input(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	f.joinVisitor(t, "v-1", "203.0.113.7")

	t.Run("empty body", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Send(ctx, "v-1", "portal-acme", "   ")
		req.ErrorIs(err, errors.ErrEmptyMessage)
	})

	t.Run("unknown connection", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Send(ctx, "ghost", "portal-acme", "hello")
		req.ErrorIs(err, errors.ErrUnknownConnection)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Send(ctx, "v-1", "nobody", "hello")
		req.ErrorIs(err, errors.ErrRecipientNotFound)
	})
}

func TestChatService_ChangeState_Reaches_Admin(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t)
	f.joinVisitor(t, "v-1", "203.0.113.7")
	f.joinAdmin(t, "a-1")

	// When the visitor starts typing
	conns, err := f.svc.ChangeState(ctx, "v-1", domain.StateTyping, "")

	// Then the admin connections are notified
	req.NoError(err)
	req.Contains(conns, "a-1")
}

func TestChatService_History_Access(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	visitor := f.joinVisitor(t, "v-1", "203.0.113.7")
	other := f.joinVisitor(t, "v-2", "198.51.100.9")
	f.joinAdmin(t, "a-1")
	transcript := []domain.HistoryMessage{{EventID: "e1", From: visitor.User.Name, To: "portal-acme", Text: "<< hi"}}

	t.Run("visitor reads its own transcript with a capped limit", func(t *testing.T) {
		req := require.New(t)
		f.history.EXPECT().FindAllMessages(gomock.Any(), "proj-1", visitor.User.ClientID, 0, 50).Return(transcript, nil).Times(1)

		got, err := f.svc.History(ctx, "v-1", "", -3, 1000)

		req.NoError(err)
		req.Equal(transcript, got)
	})

	t.Run("visitor cannot read another transcript", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.History(ctx, "v-1", other.User.Name, 0, 10)
		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("admin reads any visitor transcript", func(t *testing.T) {
		req := require.New(t)
		f.history.EXPECT().FindAllMessages(gomock.Any(), "proj-1", other.User.ClientID, 5, 10).Return(nil, nil).Times(1)

		_, err := f.svc.History(ctx, "a-1", other.User.Name, 5, 10)

		req.NoError(err)
	})

	t.Run("admin targeting an unknown user", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.History(ctx, "a-1", "ghost", 0, 10)
		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}

func TestChatService_Search_Is_Admin_Only(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	f.joinVisitor(t, "v-1", "203.0.113.7")
	f.joinAdmin(t, "a-1")

	t.Run("visitor is forbidden", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Search(ctx, "v-1", "refund", 10)
		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("empty query", func(t *testing.T) {
		req := require.New(t)
		_, err := f.svc.Search(ctx, "a-1", " ", 10)
		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("admin searches its project", func(t *testing.T) {
		req := require.New(t)
		hits := []domain.HistoryMessage{{EventID: "e1", Text: "refund please"}}
		f.search.EXPECT().Search(gomock.Any(), "proj-1", "refund", 50).Return(hits, nil).Times(1)

		got, err := f.svc.Search(ctx, "a-1", "refund", 0)

		req.NoError(err)
		req.Equal(hits, got)
	})
}

func TestChatService_Leave_Reports_Departure(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t)
	f.joinVisitor(t, "v-1", "203.0.113.7")
	f.joinAdmin(t, "a-1")

	// When the visitor leaves
	dep, err := f.svc.Leave(ctx, "v-1")

	// Then the admin is told and the room stays
	req.NoError(err)
	req.True(dep.UserLeft)
	req.False(dep.RoomDeleted)
	req.Equal([]string{"a-1"}, dep.Notify)

	stats, err := f.svc.Stats(ctx)
	req.NoError(err)
	req.Equal(1, stats.Rooms)
	req.Equal(1, stats.Connections)
}
