package main

import (
	"fmt"
	"portal-chat/repositories"

	"github.com/mama165/sdk-go/database"
)

// AuditMapper renders audit records in the badger inspector.
func AuditMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	record, err := repositories.DecodeAuditRecord(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = string(record.Entry.Direction)
	row.Detail = fmt.Sprintf("%s -> %s: %s", record.Entry.From, record.Entry.To, record.Entry.Text)
	return row
}
