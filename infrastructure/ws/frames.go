package ws

import (
	"encoding/json"
	"portal-chat/domain"
	"portal-chat/errors"
	"time"

	"google.golang.org/grpc/status"
)

// Frame types exchanged over the socket.
const (
	TypeWelcome = "welcome"
	TypeJoined  = "joined"
	TypeLeft    = "left"
	TypeMessage = "message"
	TypeState   = "state"
	TypeHistory = "history"
	TypeSearch  = "search"
	TypeError   = "error"
	TypePing    = "ping"
	TypePong    = "pong"
)

// Frame is the envelope of every event, in both directions.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type messageRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

type stateRequest struct {
	State string `json:"state"`
	To    string `json:"to"`
}

type historyRequest struct {
	Target string `json:"target"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type UserView struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Role     string `json:"role"`
	Contact  bool   `json:"contact,omitempty"`
}

type WelcomePayload struct {
	ConnectionID string     `json:"connection_id"`
	RoomID       string     `json:"room_id"`
	User         UserView   `json:"user"`
	Users        []UserView `json:"users"`
}

type LeftPayload struct {
	User        string `json:"user"`
	RoomDeleted bool   `json:"room_deleted,omitempty"`
}

type MessagePayload struct {
	EventID   string    `json:"event_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Direction string    `json:"direction"`
	At        time.Time `json:"at"`
}

type StatePayload struct {
	From  string `json:"from"`
	State string `json:"state"`
}

type TranscriptPayload struct {
	Target   string           `json:"target,omitempty"`
	Query    string           `json:"query,omitempty"`
	Messages []MessagePayload `json:"messages"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func encode(frameType string, payload any) ([]byte, error) {
	frame := Frame{Type: frameType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		frame.Payload = raw
	}
	return json.Marshal(frame)
}

func toUserView(u domain.User) UserView {
	return UserView{Name: u.Name, Nickname: u.Nickname, Role: u.Role.String(), Contact: u.ContactID != ""}
}

func toUserViews(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return views
}

func toMessagePayloads(messages []domain.HistoryMessage) []MessagePayload {
	payloads := make([]MessagePayload, 0, len(messages))
	for _, m := range messages {
		payloads = append(payloads, MessagePayload{
			EventID:   m.EventID,
			From:      m.From,
			To:        m.To,
			Body:      m.Text,
			Direction: string(m.Direction),
			At:        m.At,
		})
	}
	return payloads
}

// toErrorPayload reuses the gRPC mapping so that both surfaces report the same codes.
func toErrorPayload(err error) ErrorPayload {
	st := status.Convert(errors.MapToGRPCError(err))
	return ErrorPayload{Code: st.Code().String(), Message: st.Message()}
}
