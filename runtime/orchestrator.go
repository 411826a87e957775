// Package runtime holds the in-memory presence store and the orchestrator
// that keeps its indices consistent across connect, disconnect and messaging.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"portal-chat/errors"

	"github.com/samber/lo"
)

// Orchestrator drives the presence store. Every mutation of a room runs under
// the lock of that room, so the registry, both indices and the directory
// move together. Lookups take no lock.
type Orchestrator struct {
	log      *slog.Logger
	store    contract.Store
	relay    contract.MessageRelay
	portals  contract.PortalDirectory
	contacts contract.ContactDirectory
	rooms    *keyedMutex // one lock per room id
}

// NewOrchestrator wires the store with the portal and contact directories.
// relay receives every message before it is delivered.
func NewOrchestrator(log *slog.Logger, store contract.Store, relay contract.MessageRelay,
	portals contract.PortalDirectory, contacts contract.ContactDirectory) *Orchestrator {
	return &Orchestrator{
		log:      log.With(slog.String("component", "orchestrator")),
		store:    store,
		relay:    relay,
		portals:  portals,
		contacts: contacts,
		rooms:    newKeyedMutex(),
	}
}

// ConnectRequest describes a transport session joining the chat of a page.
// Identity is the authenticated user name, if any.
type ConnectRequest struct {
	PortalURI         string
	PageURI           string
	ConnectionID      string
	UserNameHint      string
	AdminNickNameHint string
	IPAddress         string
	Identity          string
}

// Presence is what the hub pushes after a join.
type Presence struct {
	Room             domain.Room
	User             domain.User
	OtherUsers       []domain.User
	OtherConnections []string
}

// Departure is what the hub pushes after a disconnect. Notify is only
// filled when the user left the room.
type Departure struct {
	Connection  domain.Connection
	User        domain.User
	UserLeft    bool
	RoomDeleted bool
	Notify      []string
}

// SendRequest is a message from one user of a room to another, both given
// by user name.
type SendRequest struct {
	RoomID string
	From   string
	To     string
	Body   string
}

// Delivery is a relayed message and the connections it must be pushed to:
// every connection of the sender and of the recipient.
type Delivery struct {
	Message    domain.Message
	Entry      domain.AuditEntry
	Recipients []string
}

// StateRequest announces a presence state of From to the room admin, and to
// Target when set.
type StateRequest struct {
	RoomID string
	From   string
	State  domain.PresenceState
	Target string // optional
}

// OnConnect resolves the room and the user of a new connection and registers
// the connection in every index. External lookups all happen before the room
// lock is taken so that nothing is mutated when one of them fails.
func (o *Orchestrator) OnConnect(ctx context.Context, req ConnectRequest) (Presence, error) {
	if err := ctx.Err(); err != nil {
		return Presence{}, err
	}
	if req.PortalURI == "" || req.PageURI == "" {
		return Presence{}, errors.ErrInvalidRoomReference
	}
	if req.ConnectionID == "" {
		return Presence{}, errors.ErrEmptyConnectionID
	}

	// 1. Resolve portal, page and visitor outside of the lock
	portal, ok, err := o.portals.FindPortalByURI(ctx, req.PortalURI)
	if err != nil {
		return Presence{}, fmt.Errorf("find portal %s: %w", req.PortalURI, err)
	}
	if !ok {
		return Presence{}, fmt.Errorf("%s: %w", req.PortalURI, errors.ErrPortalNotFound)
	}
	page, ok, err := o.portals.FindPageByURI(ctx, portal, req.PageURI)
	if err != nil {
		return Presence{}, fmt.Errorf("find page %s: %w", req.PageURI, err)
	}
	if !ok {
		return Presence{}, fmt.Errorf("%s: %w", req.PageURI, errors.ErrPageNotFound)
	}

	candidate := domain.NewRoom(portal, page)
	visitor, err := o.resolveVisitor(ctx, candidate, req)
	if err != nil {
		return Presence{}, err
	}

	// 2. A reused connection id leaves its previous room first
	if err := o.detachStale(ctx, req.ConnectionID, candidate.ID, visitor.Name); err != nil {
		return Presence{}, err
	}
	if err := ctx.Err(); err != nil {
		return Presence{}, err
	}

	// 3. Room, admin, user and indices change together under the room lock
	unlock := o.rooms.Lock(candidate.ID)
	defer unlock()

	room, err := o.findOrCreateRoom(ctx, candidate)
	if err != nil {
		return Presence{}, err
	}
	admin, err := o.ensureAdmin(ctx, room, req.AdminNickNameHint)
	if err != nil {
		return Presence{}, err
	}

	var user domain.User
	if room.IsAdminName(req.Identity) {
		user = admin
	} else if user, err = o.findOrAddUser(ctx, room.ID, visitor); err != nil {
		return Presence{}, err
	}

	conn := domain.NewConnection(req.ConnectionID, room.ID, user.Name)
	if err := o.attach(ctx, conn); err != nil {
		return Presence{}, err
	}

	// 4. Snapshot of the others for the welcome frame
	users, err := o.store.ListUsers(ctx, room.ID)
	if err != nil {
		return Presence{}, err
	}
	roomConns, err := o.store.RoomConnections(ctx, room.ID)
	if err != nil {
		return Presence{}, err
	}
	o.log.Debug("Connection joined", "roomID", room.ID, "user", user.Name, "connectionID", conn.ID)

	return Presence{
		Room: room,
		User: user,
		OtherUsers: lo.Filter(users, func(u domain.User, _ int) bool {
			return !u.SameName(user.Name)
		}),
		OtherConnections: lo.Without(roomConns, conn.ID),
	}, nil
}

// resolveVisitor prefers a known contact and falls back to the client id
// derived from the ip address.
func (o *Orchestrator) resolveVisitor(ctx context.Context, room domain.Room, req ConnectRequest) (domain.User, error) {
	clientID := domain.GenerateClientID(req.IPAddress)
	if req.UserNameHint != "" && !room.IsAdminName(req.Identity) {
		contact, ok, err := o.contacts.FindContactByUserName(ctx, room, req.UserNameHint)
		if err != nil {
			return domain.User{}, fmt.Errorf("find contact %s: %w", req.UserNameHint, err)
		}
		if ok {
			user := domain.NewVisitor(room.ID, contact.UserName, clientID, req.IPAddress, contact.DisplayName)
			user.ContactID = contact.ID
			return user, nil
		}
	}
	if room.IsAdminName(req.Identity) {
		return domain.User{Name: room.AdminUserName}, nil
	}
	if clientID == "" {
		return domain.User{}, errors.ErrEmptyUserName
	}
	nickname := lo.Ternary(req.UserNameHint != "", req.UserNameHint, clientID)
	return domain.NewVisitor(room.ID, clientID, clientID, req.IPAddress, nickname), nil
}

// detachStale runs the disconnect path for a connection id that is being
// reused for another room or user.
func (o *Orchestrator) detachStale(ctx context.Context, connID, roomID, userName string) error {
	current, ok, err := o.store.GetConnection(ctx, connID)
	if err != nil || !ok {
		return err
	}
	if current.RoomID == roomID && current.UserName == userName {
		return nil
	}
	o.log.Debug("Connection reused, detaching previous owner", "connectionID", connID,
		"roomID", current.RoomID, "user", current.UserName)
	_, err = o.OnDisconnect(ctx, connID)
	return err
}

func (o *Orchestrator) findOrCreateRoom(ctx context.Context, candidate domain.Room) (domain.Room, error) {
	room, ok, err := o.store.FindRoom(ctx, candidate.ID)
	if err != nil {
		return domain.Room{}, err
	}
	if ok {
		return room, nil
	}
	if err := o.store.CreateRoom(ctx, candidate); err != nil {
		if !errors.Is(err, errors.ErrDuplicateRoom) {
			return domain.Room{}, err
		}
		room, _, err = o.store.FindRoom(ctx, candidate.ID)
		return room, err
	}
	return candidate, nil
}

// ensureAdmin creates the admin user of a room the first time it is needed.
func (o *Orchestrator) ensureAdmin(ctx context.Context, room domain.Room, nickname string) (domain.User, error) {
	admin, ok, err := o.store.FindUser(ctx, room.ID, room.AdminUserName)
	if err != nil || ok {
		return admin, err
	}
	admin = domain.NewAdmin(room, lo.Ternary(nickname != "", nickname, room.AdminUserName))
	return o.findOrAddUser(ctx, room.ID, admin)
}

func (o *Orchestrator) findOrAddUser(ctx context.Context, roomID string, user domain.User) (domain.User, error) {
	existing, ok, err := o.store.FindUser(ctx, roomID, user.Name)
	if err != nil || ok {
		return existing, err
	}
	if err := o.store.AddUser(ctx, roomID, user); err != nil {
		if !errors.Is(err, errors.ErrDuplicateUser) {
			return domain.User{}, err
		}
		existing, _, err = o.store.FindUser(ctx, roomID, user.Name)
		return existing, err
	}
	user.RoomID = roomID
	return user, nil
}

func (o *Orchestrator) attach(ctx context.Context, conn domain.Connection) error {
	if err := o.store.PutConnection(ctx, conn); err != nil {
		return err
	}
	if err := o.store.AddRoomConnection(ctx, conn.RoomID, conn.ID); err != nil {
		return err
	}
	return o.store.AddUserConnection(ctx, conn.RoomID, conn.UserName, conn.ID)
}

// OnDisconnect removes a connection from every index and cascades to the
// user and the room once they have no connection left. An unknown
// connection id is not an error.
func (o *Orchestrator) OnDisconnect(ctx context.Context, connID string) (Departure, error) {
	if err := ctx.Err(); err != nil {
		return Departure{}, err
	}
	if connID == "" {
		return Departure{}, errors.ErrEmptyConnectionID
	}
	conn, ok, err := o.store.GetConnection(ctx, connID)
	if err != nil || !ok {
		return Departure{}, err
	}

	unlock := o.rooms.Lock(conn.RoomID)
	defer unlock()

	// a concurrent disconnect may have won the race
	conn, ok, err = o.store.GetConnection(ctx, connID)
	if err != nil || !ok {
		return Departure{}, err
	}
	user, _, err := o.store.FindUser(ctx, conn.RoomID, conn.UserName)
	if err != nil {
		return Departure{}, err
	}
	if user.Name == "" {
		user = domain.User{Name: conn.UserName, RoomID: conn.RoomID}
	}

	if err := o.store.RemoveUserConnection(ctx, conn.RoomID, conn.UserName, conn.ID); err != nil {
		return Departure{}, err
	}
	if err := o.store.RemoveRoomConnection(ctx, conn.RoomID, conn.ID); err != nil {
		return Departure{}, err
	}
	if err := o.store.RemoveConnection(ctx, conn.ID); err != nil {
		return Departure{}, err
	}

	departure := Departure{Connection: conn, User: user}
	userConns, err := o.store.UserConnections(ctx, conn.RoomID, conn.UserName)
	if err != nil {
		return Departure{}, err
	}
	if len(userConns) > 0 {
		o.log.Debug("Connection left, user still present", "roomID", conn.RoomID,
			"user", conn.UserName, "connectionID", conn.ID, "remaining", len(userConns))
		return departure, nil
	}

	if err := o.store.RemoveUser(ctx, conn.RoomID, conn.UserName); err != nil {
		return Departure{}, err
	}
	roomConns, err := o.store.RoomConnections(ctx, conn.RoomID)
	if err != nil {
		return Departure{}, err
	}
	departure.UserLeft = true
	departure.Notify = lo.Union(userConns, roomConns)

	if len(roomConns) == 0 {
		if err := o.store.DeleteRoom(ctx, conn.RoomID); err != nil {
			return Departure{}, err
		}
		departure.RoomDeleted = true
	}
	o.log.Debug("User left", "roomID", conn.RoomID, "user", conn.UserName,
		"roomDeleted", departure.RoomDeleted)
	return departure, nil
}

// SendMessage relays a message and returns the connections of both sides.
func (o *Orchestrator) SendMessage(ctx context.Context, req SendRequest) (Delivery, error) {
	if err := ctx.Err(); err != nil {
		return Delivery{}, err
	}
	room, err := o.requireRoom(ctx, req.RoomID)
	if err != nil {
		return Delivery{}, err
	}
	if req.From == "" || req.To == "" {
		return Delivery{}, errors.ErrEmptyUserName
	}
	from, ok, err := o.store.FindUser(ctx, room.ID, req.From)
	if err != nil {
		return Delivery{}, err
	}
	if !ok {
		return Delivery{}, fmt.Errorf("%s: %w", req.From, errors.ErrSenderNotFound)
	}
	to, ok, err := o.store.FindUser(ctx, room.ID, req.To)
	if err != nil {
		return Delivery{}, err
	}
	if !ok {
		return Delivery{}, fmt.Errorf("%s: %w", req.To, errors.ErrRecipientNotFound)
	}

	fromConns, err := o.store.UserConnections(ctx, room.ID, from.Name)
	if err != nil {
		return Delivery{}, err
	}
	toConns, err := o.store.UserConnections(ctx, room.ID, to.Name)
	if err != nil {
		return Delivery{}, err
	}

	msg := domain.NewMessage(room.ID, from, to, req.Body)
	entry, err := o.relay.Relay(ctx, room, msg)
	if err != nil {
		return Delivery{}, err
	}
	return Delivery{
		Message:    msg,
		Entry:      entry,
		Recipients: lo.Union(fromConns, toConns),
	}, nil
}

// NotifyStateChanged returns the admin connections plus those of the target
// when it resolves.
func (o *Orchestrator) NotifyStateChanged(ctx context.Context, req StateRequest) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !req.State.IsValid() {
		return nil, fmt.Errorf("%q: %w", req.State, errors.ErrInvalidState)
	}
	room, err := o.requireRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if _, ok, err := o.store.FindUser(ctx, room.ID, req.From); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%s: %w", req.From, errors.ErrSenderNotFound)
	}

	recipients, err := o.store.UserConnections(ctx, room.ID, room.AdminUserName)
	if err != nil {
		return nil, err
	}
	if req.Target == "" {
		return recipients, nil
	}
	target, ok, err := o.store.FindUser(ctx, room.ID, req.Target)
	if err != nil || !ok {
		return recipients, err
	}
	targetConns, err := o.store.UserConnections(ctx, room.ID, target.Name)
	if err != nil {
		return nil, err
	}
	return lo.Union(recipients, targetConns), nil
}

func (o *Orchestrator) requireRoom(ctx context.Context, roomID string) (domain.Room, error) {
	if roomID == "" {
		return domain.Room{}, errors.ErrInvalidRoomReference
	}
	room, ok, err := o.store.FindRoom(ctx, roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !ok {
		return domain.Room{}, fmt.Errorf("%s: %w", roomID, errors.ErrRoomNotFound)
	}
	return room, nil
}

// FindRoom returns a copy of the room, ok is false when it does not exist.
func (o *Orchestrator) FindRoom(ctx context.Context, roomID string) (domain.Room, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Room{}, false, err
	}
	return o.store.FindRoom(ctx, roomID)
}

// ListUsers returns the users of a room, admin included.
func (o *Orchestrator) ListUsers(ctx context.Context, roomID string) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return o.store.ListUsers(ctx, roomID)
}

// FindUser looks a user up by name, ignoring case.
func (o *Orchestrator) FindUser(ctx context.Context, roomID, userName string) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, err
	}
	return o.store.FindUser(ctx, roomID, userName)
}

// FindConnectionByID returns the registered connection.
func (o *Orchestrator) FindConnectionByID(ctx context.Context, connID string) (domain.Connection, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Connection{}, false, err
	}
	return o.store.GetConnection(ctx, connID)
}

// Stats is a point-in-time view of the store size.
type Stats struct {
	Rooms       int
	Connections int
}

// Stats counts rooms and registered connections.
func (o *Orchestrator) Stats(ctx context.Context) (Stats, error) {
	rooms, err := o.store.ListRooms(ctx)
	if err != nil {
		return Stats{}, err
	}
	conns, err := o.store.CountConnections(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Rooms: len(rooms), Connections: conns}, nil
}
