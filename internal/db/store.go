// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/minaret-labs/minaret/internal/model"
)

type Store interface {
	// admin credential functions
	CreateAdmin(username, passwordHash string) (int, error)
	GetAdminByUsername(username string) (*model.Admin, error)

	// mosque directory functions
	ListMosques(filter model.MosqueFilter) ([]model.Mosque, error)
	GetMosqueByID(id int) (model.Mosque, error)
	CreateMosque(m model.NewMosque) (model.Mosque, error)
	UpdateMosque(id int, changes model.MosqueChanges) (model.Mosque, error)
	DeleteMosque(id int) (model.Mosque, error)
	SeedMosques() error

	// prayer time functions
	GetPrayerTimesByMosqueID(mosqueID int) (model.PrayerTime, error)
	UpsertPrayerTimes(mosqueID int, changes model.PrayerTimeChanges) (model.PrayerTime, error)

	// health check
	Health() (time.Time, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}

// runs a trivial query against the store so /health can tell a live
// database from a dead one; returns the store's clock reading.
func (s *pgStore) Health() (time.Time, error) {
	var now time.Time
	if err := s.db.Get(&now, `SELECT now()`); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
