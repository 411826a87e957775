package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"portal-chat/auth"
	"portal-chat/domain"
	"portal-chat/mocks"
	"portal-chat/moderation"
	"portal-chat/observability"
	"portal-chat/runtime"
	"portal-chat/services"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	acme = domain.Portal{ID: "acme", URI: "acme.example", Name: "Acme", ProjectID: "proj-1", Owners: []string{"owner@acme.example"}}
	home = domain.Page{ID: "home-id", PortalID: "acme", URI: "home"}
)

type counters struct{ messages, connections, errors atomic.Int64 }

func (c *counters) IncrMessages()    { c.messages.Add(1) }
func (c *counters) IncrConnections() { c.connections.Add(1) }
func (c *counters) IncrErrors()      { c.errors.Add(1) }

type hubFixture struct {
	server   *httptest.Server
	tokens   auth.TokenIssuer
	audit    *mocks.MockAuditLog
	owners   *mocks.MockIOwnerRepository
	counters *counters
}

func newHubFixture(t *testing.T, trustedProxies ...string) hubFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	log := slog.New(slog.DiscardHandler)

	portals := mocks.NewMockPortalDirectory(ctrl)
	portals.EXPECT().FindPortalByURI(gomock.Any(), acme.URI).Return(acme, true, nil).AnyTimes()
	portals.EXPECT().FindPortalByURI(gomock.Any(), gomock.Any()).Return(domain.Portal{}, false, nil).AnyTimes()
	portals.EXPECT().FindPageByURI(gomock.Any(), acme, home.URI).Return(home, true, nil).AnyTimes()
	contacts := mocks.NewMockContactDirectory(ctrl)
	contacts.EXPECT().FindContactByUserName(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Contact{}, false, nil).AnyTimes()

	f := hubFixture{
		tokens:   auth.NewTokenIssuer("secret", time.Hour),
		audit:    mocks.NewMockAuditLog(ctrl),
		owners:   mocks.NewMockIOwnerRepository(ctrl),
		counters: &counters{},
	}
	moderator, err := moderation.NewModerator(nil, '*', log)
	require.NoError(t, err)
	orch := runtime.NewOrchestrator(log, runtime.NewMemoryStore(log), runtime.NewAuditRelay(f.audit, log), portals, contacts)
	chat := services.NewChatService(log, orch, &moderator, mocks.NewMockHistoryQuery(ctrl), mocks.NewMockTranscriptSearch(ctrl), 50)
	monitor, err := observability.NewMonitor(log, chat)
	require.NoError(t, err)

	hub := NewHub(log, chat, f.tokens, f.counters, Settings{
		WriteWait:      time.Second,
		PongWait:       time.Minute,
		PingPeriod:     30 * time.Second,
		MaxMessageSize: 4096,
		SendBufferSize: 16,
	})
	router, err := NewRouter(log, hub, services.NewAuthService(f.owners, f.tokens), f.tokens, monitor, trustedProxies)
	require.NoError(t, err)
	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func (f hubFixture) dial(t *testing.T, query string) *websocket.Conn {
	return f.dialWithHeader(t, query, nil)
}

func (f hubFixture) dialWithHeader(t *testing.T, query string, header http.Header) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func (f hubFixture) adminToken(t *testing.T) string {
	token, err := f.tokens.GenerateToken(domain.AdminUserName(acme.ID), acme.ID, "owner@acme.example", []string{"owner"})
	require.NoError(t, err)
	return token
}

// next reads frames until one of the wanted type shows up, skipping pings.
func next(t *testing.T, conn *websocket.Conn, frameType string, payload any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var f Frame
		require.NoError(t, conn.ReadJSON(&f))
		if f.Type == TypePing {
			continue
		}
		require.Equal(t, frameType, f.Type, "payload: %s", f.Payload)
		if payload != nil {
			require.NoError(t, json.Unmarshal(f.Payload, payload))
		}
		return
	}
}

func send(t *testing.T, conn *websocket.Conn, frameType string, payload any) {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Frame{Type: frameType, Payload: raw}))
}

func TestHub_Visitor_And_Admin_Chat(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t)
	f.audit.EXPECT().Log(gomock.Any(), gomock.Any(), acme.Owners).Return(nil).Times(1)

	// Given a visitor on the home page
	visitor := f.dial(t, "portal=acme.example&page=home")
	var welcome WelcomePayload
	next(t, visitor, TypeWelcome, &welcome)
	req.Equal(acme.ID, welcome.RoomID)
	req.Equal("visitor", welcome.User.Role)

	// When the operator joins with its token
	admin := f.dial(t, "portal=acme.example&page=home&nick=Support&token="+f.adminToken(t))
	var adminWelcome WelcomePayload
	next(t, admin, TypeWelcome, &adminWelcome)

	// Then the visitor is told
	req.Equal("admin", adminWelcome.User.Role)
	var joined UserView
	next(t, visitor, TypeJoined, &joined)
	req.Equal(adminWelcome.User.Name, joined.Name)

	// When the visitor writes to the admin
	send(t, visitor, TypeMessage, messageRequest{To: adminWelcome.User.Name, Body: "hello"})

	// Then both sides receive the message
	var got MessagePayload
	next(t, admin, TypeMessage, &got)
	req.Equal("hello", got.Body)
	req.Equal(welcome.User.Name, got.From)
	req.Equal(string(domain.DirectionInbound), got.Direction)
	next(t, visitor, TypeMessage, &got)
	req.Equal(int64(1), f.counters.messages.Load())

	// When the visitor leaves
	req.NoError(visitor.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = visitor.Close()

	// Then the admin sees the departure
	var left LeftPayload
	next(t, admin, TypeLeft, &left)
	req.Equal(welcome.User.Name, left.User)
	req.False(left.RoomDeleted)
}

func TestHub_Errors_Go_To_The_Originating_Socket(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t)

	// Given a connected visitor
	visitor := f.dial(t, "portal=acme.example&page=home")
	next(t, visitor, TypeWelcome, nil)

	// When sending to an unknown user then an unknown frame type
	send(t, visitor, TypeMessage, messageRequest{To: "nobody", Body: "hi"})
	send(t, visitor, "dance", map[string]string{})

	// Then each failure is reported back with its code
	var e ErrorPayload
	next(t, visitor, TypeError, &e)
	req.Equal("NotFound", e.Code)
	next(t, visitor, TypeError, &e)
	req.Equal("InvalidArgument", e.Code)

	// When a visitor searches transcripts
	send(t, visitor, TypeSearch, searchRequest{Query: "refund"})
	next(t, visitor, TypeError, &e)
	req.Equal("PermissionDenied", e.Code)
}

func TestHub_Rejects_Unknown_Portal_And_Bad_Token(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t)

	// Unknown portal: the socket opens, reports and closes
	conn := f.dial(t, "portal=ghost.example&page=home")
	var e ErrorPayload
	next(t, conn, TypeError, &e)
	req.Equal("NotFound", e.Code)

	// Forged token: the upgrade is refused
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?portal=acme.example&page=home&token=forged"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	req.Error(err)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_Login_And_Stats(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t)
	hash, err := auth.HashPassword("ComplexPass123!")
	req.NoError(err)
	f.owners.EXPECT().GetOwnerByEmail(gomock.Any(), "owner@acme.example").
		Return(domain.Owner{ID: "o1", PortalID: acme.ID, Email: "owner@acme.example", PasswordHash: hash}, true, nil).Times(2)

	// Wrong password
	resp, err := http.Post(f.server.URL+"/auth/login", "application/json",
		bytes.NewBufferString(`{"email":"owner@acme.example","password":"nope"}`))
	req.NoError(err)
	_ = resp.Body.Close()
	req.Equal(http.StatusUnauthorized, resp.StatusCode)

	// Right password
	resp, err = http.Post(f.server.URL+"/auth/login", "application/json",
		bytes.NewBufferString(`{"email":"owner@acme.example","password":"ComplexPass123!"}`))
	req.NoError(err)
	var login loginResponse
	req.NoError(json.NewDecoder(resp.Body).Decode(&login))
	_ = resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)
	req.NotEmpty(login.Token)

	// Stats without then with the token
	resp, err = http.Get(f.server.URL + "/debug/stats")
	req.NoError(err)
	_ = resp.Body.Close()
	req.Equal(http.StatusUnauthorized, resp.StatusCode)

	r, err := http.NewRequestWithContext(context.Background(), http.MethodGet, f.server.URL+"/debug/stats", nil)
	req.NoError(err)
	r.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = http.DefaultClient.Do(r)
	req.NoError(err)
	var snapshot observability.Snapshot
	req.NoError(json.NewDecoder(resp.Body).Decode(&snapshot))
	_ = resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal(0, snapshot.Rooms)
}

func TestHub_Ignores_Forwarded_Address_From_Untrusted_Peer(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t)

	// Given a socket claiming a forwarded address without any trusted proxy
	header := http.Header{"X-Forwarded-For": []string{"203.0.113.7"}}
	conn := f.dialWithHeader(t, "portal=acme.example&page=home", header)
	var welcome WelcomePayload
	next(t, conn, TypeWelcome, &welcome)

	// Then the identity comes from the socket peer, not from the header
	req.Equal(domain.GenerateClientID("127.0.0.1"), welcome.User.Name)
	req.NotEqual(domain.GenerateClientID("203.0.113.7"), welcome.User.Name)
}

func TestHub_Honours_Forwarded_Address_From_Trusted_Proxy(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t, "127.0.0.1")

	// Given a socket relayed by a trusted proxy
	header := http.Header{"X-Forwarded-For": []string{"203.0.113.7"}}
	conn := f.dialWithHeader(t, "portal=acme.example&page=home", header)
	var welcome WelcomePayload
	next(t, conn, TypeWelcome, &welcome)

	// Then the forwarded client address is the visitor identity
	req.Equal(domain.GenerateClientID("203.0.113.7"), welcome.User.Name)
}

func TestNewRouter_Rejects_Invalid_Trusted_Proxy(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)

	// When a trusted proxy is not an IP nor a CIDR
	_, err := NewRouter(log, nil, nil, auth.NewTokenIssuer("secret", time.Hour), nil, []string{"not-an-ip"})

	// Then the router is refused
	req.Error(err)
}
