package repositories

import (
	"fmt"
	"portal-chat/domain"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// AuditRecord is one stored audit entry with the owners it was addressed to.
type AuditRecord struct {
	Entry    domain.AuditEntry
	Audience []string
}

// Timestamps are kept as RFC3339 strings: a struct number is a float64 and
// cannot hold nanoseconds since the epoch.
func marshalAuditRecord(record AuditRecord) ([]byte, error) {
	e := record.Entry
	value, err := structpb.NewStruct(map[string]any{
		"event_id":   e.EventID,
		"room_id":    e.RoomID,
		"project_id": e.ProjectID,
		"client_id":  e.ClientID,
		"from":       e.From,
		"to":         e.To,
		"direction":  string(e.Direction),
		"text":       e.Text,
		"lang":       e.Lang,
		"at":         e.At.UTC().Format(time.RFC3339Nano),
		"audience":   lo.ToAnySlice(record.Audience),
	})
	if err != nil {
		return nil, fmt.Errorf("audit record to struct: %w", err)
	}
	return proto.Marshal(value)
}

func DecodeAuditRecord(data []byte) (AuditRecord, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(data, &value); err != nil {
		return AuditRecord{}, err
	}
	fields := value.GetFields()
	str := func(key string) string { return fields[key].GetStringValue() }

	at, err := time.Parse(time.RFC3339Nano, str("at"))
	if err != nil {
		return AuditRecord{}, fmt.Errorf("audit record timestamp: %w", err)
	}
	audience := lo.Map(fields["audience"].GetListValue().GetValues(), func(item *structpb.Value, _ int) string {
		return item.GetStringValue()
	})
	return AuditRecord{
		Entry: domain.AuditEntry{
			EventID:   str("event_id"),
			RoomID:    str("room_id"),
			ProjectID: str("project_id"),
			ClientID:  str("client_id"),
			From:      str("from"),
			To:        str("to"),
			Direction: domain.Direction(str("direction")),
			Text:      str("text"),
			Lang:      str("lang"),
			At:        at,
		},
		Audience: audience,
	}, nil
}

func toHistoryMessage(entry domain.AuditEntry) domain.HistoryMessage {
	return domain.HistoryMessage{
		EventID:   entry.EventID,
		From:      entry.From,
		To:        entry.To,
		Text:      entry.Text,
		Direction: entry.Direction,
		At:        entry.At,
	}
}
