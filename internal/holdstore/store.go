// Package holdstore owns the in-memory table of active slot holds.
// The table is shared mutable state touched by every acquire, refresh,
// release and purge, so all access goes through a mutex. The store is a
// plain constructible object rather than a singleton, so tests can use
// isolated instances.
package holdstore

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Store держит таблицу активных hold'ов в памяти процесса.
// Hold'ы никогда не персистятся: время жизни таблицы — время жизни процесса.
type Store struct {
	mu    sync.Mutex
	holds map[string]domain.SlotHold
}

// New создает пустое хранилище hold'ов
func New() *Store {
	return &Store{
		holds: make(map[string]domain.SlotHold),
	}
}

// Purge удаляет все hold'ы с истёкшим ExpiresAt и возвращает количество удалённых.
// Вызывается лениво в начале каждой мутирующей операции: фоновый sweeper
// не нужен при коротких TTL, память ограничена следующим же вызовом.
func (s *Store) Purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, h := range s.holds {
		if h.IsExpired(now) {
			delete(s.holds, id)
			removed++
		}
	}
	return removed
}

// Get возвращает копию hold'а по ID. Истёкший hold считается отсутствующим,
// даже если физически ещё не удалён.
func (s *Store) Get(id string, now time.Time) (domain.SlotHold, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[id]
	if !ok || h.IsExpired(now) {
		return domain.SlotHold{}, false
	}
	return h, true
}

// Put сохраняет или обновляет hold
func (s *Store) Put(hold domain.SlotHold) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holds[hold.ID] = hold
}

// Delete удаляет hold по ID. Возвращает false, если hold не найден.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.holds[id]; !ok {
		return false
	}
	delete(s.holds, id)
	return true
}

// DeleteByOwner удаляет все hold'ы владельца, кроме hold'а с ID exceptID.
// Обеспечивает инвариант "не более одного активного hold'а на владельца":
// новый acquire без ссылки на существующий hold вытесняет предыдущий.
func (s *Store) DeleteByOwner(ownerID int64, exceptID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, h := range s.holds {
		if h.OwnerID == ownerID && id != exceptID {
			delete(s.holds, id)
			removed++
		}
	}
	return removed
}

// FindConflicting ищет живой hold другого владельца на том же помещении,
// пересекающийся с [start, end). Истёкшие hold'ы не блокируют.
// Линейный скан: при горстке одновременных hold'ов этого достаточно.
func (s *Store) FindConflicting(facilityID int64, start, end time.Time, excludeOwnerID int64, now time.Time) (domain.SlotHold, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.holds {
		if h.FacilityID != facilityID {
			continue
		}
		if h.OwnerID == excludeOwnerID {
			continue
		}
		if h.IsExpired(now) {
			continue
		}
		if h.OverlapsRange(start, end) {
			return h, true
		}
	}
	return domain.SlotHold{}, false
}

// Len возвращает текущий размер таблицы (включая ещё не вычищенные
// истёкшие hold'ы). Используется для метрик.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.holds)
}
