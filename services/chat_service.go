package services

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"portal-chat/errors"
	"portal-chat/moderation"
	"portal-chat/runtime"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// JoinRequest is what a hub transport knows about a new connection.
// Identity must already be authenticated by the transport.
type JoinRequest struct {
	PortalURI    string `validate:"required,max=512"`
	PageURI      string `validate:"required,max=512"`
	ConnectionID string `validate:"required,max=128"`
	UserName     string `validate:"omitempty,max=64"`
	NickName     string `validate:"omitempty,max=64"`
	IPAddress    string `validate:"omitempty,ip"`
	Identity     string
}

// ChatService is the entry point of the hub. Every call but Join is keyed
// by connection id, the sender is never taken from the client.
type ChatService struct {
	orchestrator *runtime.Orchestrator
	moderator    *moderation.Moderator
	history      contract.HistoryQuery
	search       contract.TranscriptSearch
	historyLimit int
	log          *slog.Logger
}

func NewChatService(log *slog.Logger, o *runtime.Orchestrator, moderator *moderation.Moderator,
	history contract.HistoryQuery, search contract.TranscriptSearch, historyLimit int) *ChatService {
	return &ChatService{
		orchestrator: o,
		moderator:    moderator,
		history:      history,
		search:       search,
		historyLimit: historyLimit,
		log:          log.With(slog.String("component", "chat_service")),
	}
}

func (s *ChatService) Join(ctx context.Context, r JoinRequest) (runtime.Presence, error) {
	if err := validate.Struct(r); err != nil {
		return runtime.Presence{}, toDomainError(err)
	}
	return s.orchestrator.OnConnect(ctx, runtime.ConnectRequest{
		PortalURI:         r.PortalURI,
		PageURI:           r.PageURI,
		ConnectionID:      r.ConnectionID,
		UserNameHint:      r.UserName,
		AdminNickNameHint: r.NickName,
		IPAddress:         r.IPAddress,
		Identity:          r.Identity,
	})
}

// toDomainError reports the first failing field as the matching domain error.
func toDomainError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	switch fe := fieldErrors[0]; fe.Field() {
	case "PortalURI", "PageURI":
		return fmt.Errorf("%s: %w", fe.Field(), errors.ErrInvalidRoomReference)
	case "ConnectionID":
		return fmt.Errorf("%s: %w", fe.Field(), errors.ErrEmptyConnectionID)
	default:
		return fmt.Errorf("%s failed on %s: %w", fe.Field(), fe.Tag(), errors.ErrInvalidRequest)
	}
}

func (s *ChatService) Leave(ctx context.Context, connID string) (runtime.Departure, error) {
	return s.orchestrator.OnDisconnect(ctx, connID)
}

// Send relays a message from the user owning connID. Visitor messages are
// censored first.
func (s *ChatService) Send(ctx context.Context, connID, to, body string) (runtime.Delivery, error) {
	if strings.TrimSpace(body) == "" {
		return runtime.Delivery{}, errors.ErrEmptyMessage
	}
	conn, sender, err := s.resolve(ctx, connID)
	if err != nil {
		return runtime.Delivery{}, err
	}
	if !sender.IsAdmin() && s.moderator != nil {
		var words []string
		if body, words = s.moderator.Censor(body); len(words) > 0 {
			s.log.Info("Visitor message censored", "roomID", conn.RoomID, "user", sender.Name, "words", len(words))
		}
	}
	return s.orchestrator.SendMessage(ctx, runtime.SendRequest{
		RoomID: conn.RoomID,
		From:   sender.Name,
		To:     to,
		Body:   body,
	})
}

func (s *ChatService) ChangeState(ctx context.Context, connID string, state domain.PresenceState, target string) ([]string, error) {
	conn, sender, err := s.resolve(ctx, connID)
	if err != nil {
		return nil, err
	}
	return s.orchestrator.NotifyStateChanged(ctx, runtime.StateRequest{
		RoomID: conn.RoomID,
		From:   sender.Name,
		State:  state,
		Target: target,
	})
}

// History returns a visitor transcript. Visitors can only read their own,
// the admin reads the transcript of any user of the room.
func (s *ChatService) History(ctx context.Context, connID, target string, offset, limit int) ([]domain.HistoryMessage, error) {
	conn, caller, err := s.resolve(ctx, connID)
	if err != nil {
		return nil, err
	}
	room, ok, err := s.orchestrator.FindRoom(ctx, conn.RoomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrRoomNotFound
	}

	subject := caller
	if target != "" && !caller.SameName(target) {
		if !caller.IsAdmin() {
			return nil, errors.ErrForbidden
		}
		if subject, ok, err = s.orchestrator.FindUser(ctx, room.ID, target); err != nil {
			return nil, err
		} else if !ok {
			return nil, fmt.Errorf("%s: %w", target, errors.ErrUserNotFound)
		}
	}
	if subject.IsAdmin() {
		return nil, fmt.Errorf("admin has no transcript of its own: %w", errors.ErrInvalidRequest)
	}
	return s.history.FindAllMessages(ctx, room.ProjectID, subject.ClientID, max(offset, 0), s.capLimit(limit))
}

// Search is reserved to the admin and scoped to the project of its room.
func (s *ChatService) Search(ctx context.Context, connID, query string, limit int) ([]domain.HistoryMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty query: %w", errors.ErrInvalidRequest)
	}
	conn, caller, err := s.resolve(ctx, connID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, errors.ErrForbidden
	}
	room, ok, err := s.orchestrator.FindRoom(ctx, conn.RoomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	return s.search.Search(ctx, room.ProjectID, query, s.capLimit(limit))
}

func (s *ChatService) Stats(ctx context.Context) (runtime.Stats, error) {
	return s.orchestrator.Stats(ctx)
}

func (s *ChatService) capLimit(limit int) int {
	if limit <= 0 || limit > s.historyLimit {
		return s.historyLimit
	}
	return limit
}

func (s *ChatService) resolve(ctx context.Context, connID string) (domain.Connection, domain.User, error) {
	if connID == "" {
		return domain.Connection{}, domain.User{}, errors.ErrEmptyConnectionID
	}
	conn, ok, err := s.orchestrator.FindConnectionByID(ctx, connID)
	if err != nil {
		return domain.Connection{}, domain.User{}, err
	}
	if !ok {
		return domain.Connection{}, domain.User{}, fmt.Errorf("%s: %w", connID, errors.ErrUnknownConnection)
	}
	user, ok, err := s.orchestrator.FindUser(ctx, conn.RoomID, conn.UserName)
	if err != nil {
		return domain.Connection{}, domain.User{}, err
	}
	if !ok {
		return domain.Connection{}, domain.User{}, fmt.Errorf("%s: %w", conn.UserName, errors.ErrSenderNotFound)
	}
	return conn, user, nil
}
