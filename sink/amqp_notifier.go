//go:generate go run go.uber.org/mock/mockgen -source=amqp_notifier.go -destination=../mocks/mock_publisher.go -package=mocks
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of *amqp091.Channel the notifier needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// OwnerNotification is the event owners receive for operator conversations.
type OwnerNotification struct {
	EventID   string    `json:"event_id"`
	RoomID    string    `json:"room_id"`
	ProjectID string    `json:"project_id,omitempty"`
	ClientID  string    `json:"client_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Direction string    `json:"direction"`
	Text      string    `json:"text"`
	Lang      string    `json:"lang,omitempty"`
	At        time.Time `json:"at"`
	Audience  []string  `json:"audience"`
}

// AMQPNotifier publishes admin-routed messages on a topic exchange, routed
// by "chat.{room}.{direction}", so that owner mailers can subscribe.
type AMQPNotifier struct {
	publisher Publisher
	exchange  string
	log       *slog.Logger
}

func NewAMQPNotifier(publisher Publisher, exchange string, log *slog.Logger) AMQPNotifier {
	return AMQPNotifier{
		publisher: publisher,
		exchange:  exchange,
		log:       log.With(slog.String("component", "notifier_amqp")),
	}
}

var _ contract.AuditLog = AMQPNotifier{}

// DeclareExchange makes sure the durable topic exchange exists.
func DeclareExchange(ch *amqp091.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("cannot declare exchange %q: %w", exchange, err)
	}
	return nil
}

// Log skips messages between visitors and messages without audience.
func (n AMQPNotifier) Log(ctx context.Context, entry domain.AuditEntry, audience []string) error {
	if entry.Direction == domain.DirectionNone || len(audience) == 0 {
		return nil
	}
	body, err := json.Marshal(OwnerNotification{
		EventID:   entry.EventID,
		RoomID:    entry.RoomID,
		ProjectID: entry.ProjectID,
		ClientID:  entry.ClientID,
		From:      entry.From,
		To:        entry.To,
		Direction: string(entry.Direction),
		Text:      entry.Text,
		Lang:      entry.Lang,
		At:        entry.At,
		Audience:  audience,
	})
	if err != nil {
		return err
	}
	key := RoutingKey(entry.RoomID, entry.Direction)
	err = n.publisher.PublishWithContext(ctx, n.exchange, key, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    entry.EventID,
		Timestamp:    entry.At,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("cannot publish owner notification: %w", err)
	}
	n.log.Debug("Owner notification published", "eventID", entry.EventID, "routingKey", key)
	return nil
}

// topicEscaper percent-encodes the characters a topic exchange interprets,
// so that one room never matches the bindings of another.
var topicEscaper = strings.NewReplacer("%", "%25", ".", "%2E", "*", "%2A", "#", "%23")

// RoutingKey is chat.{room}.{direction}; bind chat.*.admin-inbound to follow
// every visitor writing to a portal.
func RoutingKey(roomID string, direction domain.Direction) string {
	return "chat." + topicEscaper.Replace(roomID) + "." + string(direction)
}
