package repository

import (
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"salon-scheduler/internal/domain/appointment"

	"github.com/google/uuid"
)

// AppointmentStore keeps appointments sorted by ScheduledAt. Appointments sharing an
// instant stay in insertion order.
type AppointmentStore struct {
	mu    sync.RWMutex
	items []*appointment.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{}
}

func (s *AppointmentStore) InsertSorted(a *appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := a.ScheduledAt()
	// first index strictly after at, so equal instants keep arrival order
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].ScheduledAt().After(at)
	})
	s.items = slices.Insert(s.items, i, a)
}

func (s *AppointmentStore) RemoveByID(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *AppointmentStore) FindByID(id uuid.UUID) (*appointment.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.items[i], true
}

// ToOrderedList returns a snapshot; later store changes do not show up in it.
func (s *AppointmentStore) ToOrderedList() []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

func (s *AppointmentStore) Filter(keep func(*appointment.Appointment) bool) []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*appointment.Appointment, 0)
	for _, a := range s.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// HasConflict treats a conflict as the same client at the exact same instant.
func (s *AppointmentStore) HasConflict(clientID uuid.UUID, at time.Time) bool {
	return s.HasConflictExcluding(clientID, at, uuid.Nil)
}

func (s *AppointmentStore) HasConflictExcluding(clientID uuid.UUID, at time.Time, excludeID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// the slice is sorted, so only the run of equal instants needs checking
	i := sort.Search(len(s.items), func(i int) bool {
		return !s.items[i].ScheduledAt().Before(at)
	})
	for ; i < len(s.items) && s.items[i].ScheduledAt().Equal(at); i++ {
		a := s.items[i]
		if a.ID() == excludeID {
			continue
		}
		if a.Client().ID() == clientID {
			return true
		}
	}
	return false
}

// SearchByClientName matches case-insensitive substrings; an empty text matches everything.
func (s *AppointmentStore) SearchByClientName(text string) []*appointment.Appointment {
	needle := strings.ToLower(text)
	return s.Filter(func(a *appointment.Appointment) bool {
		return strings.Contains(strings.ToLower(a.Client().Name()), needle)
	})
}

func (s *AppointmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *AppointmentStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.items, func(a *appointment.Appointment) bool {
		return a.ID() == id
	})
}
