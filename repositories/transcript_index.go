package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"

	"github.com/blugelabs/bluge"
)

const (
	fieldProject   = "project"
	fieldClient    = "client"
	fieldFrom      = "from"
	fieldTo        = "to"
	fieldDirection = "direction"
	fieldText      = "text"
	fieldAt        = "at"
)

// TranscriptIndex keeps a full-text index of audited messages so that an
// operator can search the conversations of a project.
type TranscriptIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewTranscriptIndex(writer *bluge.Writer, log *slog.Logger) TranscriptIndex {
	return TranscriptIndex{writer: writer, log: log.With(slog.String("component", "transcript_bluge"))}
}

var (
	_ contract.AuditLog         = TranscriptIndex{}
	_ contract.TranscriptSearch = TranscriptIndex{}
)

// Log indexes the entry. The audience is not indexed.
func (t TranscriptIndex) Log(ctx context.Context, entry domain.AuditEntry, _ []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := bluge.NewDocument(entry.EventID).
		AddField(bluge.NewKeywordField(fieldProject, entry.ProjectID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldClient, entry.ClientID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldFrom, entry.From).StoreValue()).
		AddField(bluge.NewKeywordField(fieldTo, entry.To).StoreValue()).
		AddField(bluge.NewKeywordField(fieldDirection, string(entry.Direction)).StoreValue()).
		AddField(bluge.NewTextField(fieldText, entry.Text).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldAt, entry.At).StoreValue().Sortable())
	if err := t.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("failed to index transcript entry: %w", err)
	}
	return nil
}

// Search matches the query against message texts of one project, newest first.
func (t TranscriptIndex) Search(ctx context.Context, projectID, query string, limit int) ([]domain.HistoryMessage, error) {
	reader, err := t.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField(fieldText)).
		AddMust(bluge.NewTermQuery(projectID).SetField(fieldProject))
	request := bluge.NewTopNSearch(limit, q).SortBy([]string{"-" + fieldAt})

	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("bluge search: %w", err)
	}

	results := make([]domain.HistoryMessage, 0)
	match, err := matches.Next()
	for err == nil && match != nil {
		var msg domain.HistoryMessage
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				msg.EventID = string(value)
			case fieldFrom:
				msg.From = string(value)
			case fieldTo:
				msg.To = string(value)
			case fieldText:
				msg.Text = string(value)
			case fieldDirection:
				msg.Direction = domain.Direction(value)
			case fieldAt:
				msg.At, visitErr = bluge.DecodeDateTime(value)
			}
			return true
		})
		if err == nil && visitErr != nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		results = append(results, msg)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("bluge iterate: %w", err)
	}
	return results, nil
}
