package domain

// Connection links one transport session to a (room, user) pair, by value.
type Connection struct {
	ID       string
	RoomID   string
	UserName string
}

func NewConnection(id, roomID, userName string) Connection {
	return Connection{ID: id, RoomID: roomID, UserName: userName}
}

func (c Connection) SameOwner(other Connection) bool {
	return c.RoomID == other.RoomID && c.UserName == other.UserName
}
