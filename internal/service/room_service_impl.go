package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type roomService struct {
	store *Store
}

func NewRoomService(store *Store) RoomService {
	return &roomService{store: store}
}

func (s *roomService) Add(ctx context.Context, name string) (domain.Room, bool, error) {
	var room domain.Room
	added, err := s.store.mutateActive(ctx, "add-room", map[string]any{"room": name}, func(p *domain.Project) bool {
		if !p.AddRoom(s.store.id(), name) {
			return false
		}
		room = p.Rooms[len(p.Rooms)-1]
		return true
	})
	return room, added, err
}

func (s *roomService) Rename(ctx context.Context, roomID, name string) (bool, error) {
	return s.store.mutateActive(ctx, "rename-room", map[string]any{"room": roomID}, func(p *domain.Project) bool {
		return p.RenameRoom(roomID, name)
	})
}

// Remove deletes the room and its scope items. Other entities referring to
// the room are handled according to the store's room delete policy.
func (s *roomService) Remove(ctx context.Context, roomID string) (bool, error) {
	policy := s.store.roomPolicy
	return s.store.mutateActive(ctx, "remove-room", map[string]any{"room": roomID, "policy": string(policy)}, func(p *domain.Project) bool {
		return p.RemoveRoom(roomID, policy)
	})
}
