package domain

import "time"

// Portal is a tenant as resolved by the portal directory.
type Portal struct {
	ID        string
	URI       string
	Name      string
	ProjectID string
	Owners    []string
}

type Page struct {
	ID       string
	PortalID string
	URI      string
}

// Contact is a CRM contact matched from a visitor name. The chat never owns it.
type Contact struct {
	ID          string
	PortalID    string
	UserName    string
	DisplayName string
}

// AuditEntry is what the relay hands to the audit log for one message.
type AuditEntry struct {
	EventID   string
	RoomID    string
	ProjectID string
	ClientID  string
	From      string
	To        string
	Direction Direction
	Text      string
	Lang      string
	At        time.Time
}

// HistoryMessage is one line of a reconstructed transcript.
type HistoryMessage struct {
	EventID   string
	From      string
	To        string
	Text      string
	Direction Direction
	At        time.Time
}

// Owner is an operator account of a portal. Owners log in as the room admin
// and are the audience of audited messages.
type Owner struct {
	ID           string
	PortalID     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
