package repositories

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// AuditRepository is the durable audit log. It also answers history queries
// since transcripts are rebuilt from audited messages.
type AuditRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAuditRepository(db *badger.DB, log *slog.Logger) AuditRepository {
	return AuditRepository{db: db, log: log.With(slog.String("component", "audit_badger"))}
}

var (
	_ contract.AuditLog     = AuditRepository{}
	_ contract.HistoryQuery = AuditRepository{}
)

// Log persists an entry under "audit:{project}:{client}:{timestamp_padded}:{event}".
// The 19-digit padding keeps keys of one visitor in chronological order and
// the event id separates entries of the same nanosecond.
func (a AuditRepository) Log(ctx context.Context, entry domain.AuditEntry, audience []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bytes, err := marshalAuditRecord(AuditRecord{Entry: entry, Audience: audience})
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%019d:%s", visitorPrefix(entry.ProjectID, entry.ClientID), entry.At.UnixNano(), entry.EventID)
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// FindAllMessages returns the transcript of a visitor, oldest first.
// A limit of zero or less means no limit.
func (a AuditRepository) FindAllMessages(ctx context.Context, projectID, clientID string, offset, limit int) ([]domain.HistoryMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := a.scan(visitorPrefix(projectID, clientID), offset, limit)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.HistoryMessage, 0, len(records))
	for _, r := range records {
		messages = append(messages, toHistoryMessage(r.Entry))
	}
	return messages, nil
}

// ListRecent returns the latest audit records of a project, newest first.
func (a AuditRepository) ListRecent(ctx context.Context, projectID string, limit int) ([]AuditRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := a.scan(projectPrefix(projectID), 0, 0)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(x, y AuditRecord) int {
		return cmp.Compare(y.Entry.At.UnixNano(), x.Entry.At.UnixNano())
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (a AuditRepository) scan(prefixStr string, offset, limit int) ([]AuditRecord, error) {
	var byteRecords [][]byte
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		skipped := 0
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(byteRecords) == limit {
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			byteRecords = append(byteRecords, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]AuditRecord, 0, len(byteRecords))
	for _, b := range byteRecords {
		record, err := DecodeAuditRecord(b)
		if err != nil {
			a.log.Warn("Skipping unreadable audit record", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// keyEscaper keeps ':' a separator: a project named "a:b" cannot prefix-match
// the keys of project "a".
var keyEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

func projectPrefix(projectID string) string {
	return "audit:" + keyEscaper.Replace(projectID) + ":"
}

func visitorPrefix(projectID, clientID string) string {
	return projectPrefix(projectID) + keyEscaper.Replace(clientID) + ":"
}
