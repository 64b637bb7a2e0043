// Package runtime owns the transient connection state of the system:
// who is online, through which connection, and in which rooms.
// Nothing here is durable; the whole registry is rebuilt from
// reconnects after a process restart.
package runtime

import (
	"sync"

	"tradepost/contract"
	"tradepost/domain"
)

type Set map[string]struct{}

type session struct {
	connID string
	sink   contract.EventSink
}

// Registry maps users to their single live connection and tracks room
// membership. One RWMutex guards both maps; they are never read
// mid-mutation.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]session    // user id -> live session
	users       map[string]string     // connection id -> user id
	roomMembers map[domain.RoomID]Set // room id -> member user ids
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[string]session),
		users:       make(map[string]string),
		roomMembers: make(map[domain.RoomID]Set),
	}
}

// Register binds a user to a new connection, last writer wins. A user
// with two simultaneous connections silently loses the first: its
// connection id stops resolving, so its deferred Unregister is a no-op.
func (r *Registry) Register(userID, connID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.sessions[userID]; ok {
		delete(r.users, prev.connID)
	}
	r.sessions[userID] = session{connID: connID, sink: sink}
	r.users[connID] = userID
}

// Unregister removes whichever user currently maps to connID, along
// with their room memberships. No-op if the connection was already
// superseded or never registered.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.users[connID]
	if !ok {
		return
	}
	delete(r.users, connID)
	delete(r.sessions, userID)

	for roomID, members := range r.roomMembers {
		delete(members, userID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
}

func (r *Registry) LookupConnection(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	return s.connID, ok
}

func (r *Registry) LookupUser(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.users[connID]
	return userID, ok
}

// SinkFor resolves the live sink of a user, if any.
func (r *Registry) SinkFor(userID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	if !ok {
		return nil, false
	}
	return s.sink, true
}

// JoinRoom adds a user to a room. Membership is keyed by user id, so a
// broadcast always reaches the member's *current* connection.
func (r *Registry) JoinRoom(userID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(Set)
	}
	r.roomMembers[roomID][userID] = struct{}{}
}

// LeaveRoom removes a user from a room, dropping the room entry when
// it empties so the map doesn't accumulate dead rooms.
func (r *Registry) LeaveRoom(userID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(r.roomMembers, roomID)
	}
}

// SinksForRoom resolves the sinks of every room member that currently
// holds a live connection. Two-step lookup: member ids first, then the
// session map, so reconnected members are reached through their new
// connection without touching membership.
func (r *Registry) SinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for userID := range members {
		if s, online := r.sessions[userID]; online {
			sinks = append(sinks, s.sink)
		}
	}
	return sinks
}
