package cache

import (
	"sync/atomic"
	"time"

	"github.com/wfxclan/clanbot/internal/models"
	"github.com/wfxclan/clanbot/pkg/logger"
)

type memberLister interface {
	ListMembers() ([]models.Member, error)
}

type loadoutLister interface {
	ListLoadouts() ([]models.Loadout, error)
}

// Store holds read-only snapshots of the members and loadouts tables.
// Snapshots are replaced wholesale on refresh; readers never observe a
// partially rebuilt slice. A refresh failure keeps the stale snapshot.
type Store struct {
	memberRepo  memberLister
	loadoutRepo loadoutLister
	interval    time.Duration

	members  atomic.Value // []models.Member
	loadouts atomic.Value // []models.Loadout

	stop chan struct{}
	done chan struct{}
}

func New(memberRepo memberLister, loadoutRepo loadoutLister, interval time.Duration) *Store {
	s := &Store{
		memberRepo:  memberRepo,
		loadoutRepo: loadoutRepo,
		interval:    interval,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	s.members.Store([]models.Member{})
	s.loadouts.Store([]models.Loadout{})
	return s
}

// Members returns the current member snapshot. Callers must not mutate it.
func (s *Store) Members() []models.Member {
	return s.members.Load().([]models.Member)
}

// Loadouts returns the current loadout snapshot. Callers must not mutate it.
func (s *Store) Loadouts() []models.Loadout {
	return s.loadouts.Load().([]models.Loadout)
}

// RefreshMembers reloads the member snapshot from the store.
func (s *Store) RefreshMembers() error {
	members, err := s.memberRepo.ListMembers()
	if err != nil {
		logger.Error("Failed to refresh member cache", "error", err)
		return err
	}
	s.members.Store(members)
	logger.Debug("Member cache refreshed", "count", len(members))
	return nil
}

// RefreshLoadouts reloads the loadout snapshot from the store.
func (s *Store) RefreshLoadouts() error {
	loadouts, err := s.loadoutRepo.ListLoadouts()
	if err != nil {
		logger.Error("Failed to refresh loadout cache", "error", err)
		return err
	}
	s.loadouts.Store(loadouts)
	logger.Debug("Loadout cache refreshed", "count", len(loadouts))
	return nil
}

// RefreshAll reloads both snapshots and returns the first error.
func (s *Store) RefreshAll() error {
	memberErr := s.RefreshMembers()
	loadoutErr := s.RefreshLoadouts()
	if memberErr != nil {
		return memberErr
	}
	return loadoutErr
}

// StartRefreshing launches the periodic resynchronization loop.
func (s *Store) StartRefreshing() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Errors are already logged; stale snapshots keep serving reads.
				_ = s.RefreshAll()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the refresh loop and waits for it to exit.
func (s *Store) Stop() {
	close(s.stop)
	<-s.done
}
