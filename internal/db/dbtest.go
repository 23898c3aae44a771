package db

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/minaret-labs/minaret/internal/model"
)

// TestStore is an in-memory Store used by handler tests. It mirrors
// pgStore semantics: sql.ErrNoRows for missing rows, COALESCE behavior
// on partial updates, substring city/country matching.
type TestStore struct {
	mu        sync.Mutex
	mosques   map[int]model.Mosque
	nextID    int
	admins    map[string]model.Admin
	adminID   int
	prayers   map[int]model.PrayerTime // keyed by mosque id
	prayerID  int
	HealthErr error
}

var _ Store = (*TestStore)(nil)

func NewTestStore() *TestStore {
	return &TestStore{
		mosques: make(map[int]model.Mosque),
		admins:  make(map[string]model.Admin),
		prayers: make(map[int]model.PrayerTime),
	}
}

func (s *TestStore) CreateAdmin(username, passwordHash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminID++
	s.admins[username] = model.Admin{
		ID:           s.adminID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return s.adminID, nil
}

func (s *TestStore) GetAdminByUsername(username string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &a, nil
}

func matches(field *string, needle *string) bool {
	if needle == nil {
		return true
	}
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), strings.ToLower(*needle))
}

func (s *TestStore) ListMosques(filter model.MosqueFilter) ([]model.Mosque, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Mosque{}
	for _, m := range s.mosques {
		if len(out) >= filter.Limit {
			break
		}
		if matches(m.City, filter.City) && matches(m.Country, filter.Country) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *TestStore) GetMosqueByID(id int) (model.Mosque, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mosques[id]
	if !ok {
		return model.Mosque{}, sql.ErrNoRows
	}
	return m, nil
}

func (s *TestStore) CreateMosque(nm model.NewMosque) (model.Mosque, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	m := model.Mosque{
		ID:          s.nextID,
		Name:        nm.Name,
		Description: nm.Description,
		Address:     nm.Address,
		City:        nm.City,
		Country:     nm.Country,
		Latitude:    nm.Latitude,
		Longitude:   nm.Longitude,
		Phone:       nm.Phone,
		Email:       nm.Email,
		Website:     nm.Website,
		Rating:      nm.Rating,
		ImageURL:    nm.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.mosques[m.ID] = m
	return m, nil
}

func (s *TestStore) UpdateMosque(id int, c model.MosqueChanges) (model.Mosque, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mosques[id]
	if !ok {
		return model.Mosque{}, sql.ErrNoRows
	}
	if c.Name != nil {
		m.Name = *c.Name
	}
	if c.Description != nil {
		m.Description = c.Description
	}
	if c.Address != nil {
		m.Address = *c.Address
	}
	if c.City != nil {
		m.City = c.City
	}
	if c.Country != nil {
		m.Country = c.Country
	}
	if c.Latitude != nil {
		m.Latitude = *c.Latitude
	}
	if c.Longitude != nil {
		m.Longitude = *c.Longitude
	}
	if c.Phone != nil {
		m.Phone = c.Phone
	}
	if c.Email != nil {
		m.Email = c.Email
	}
	if c.Website != nil {
		m.Website = c.Website
	}
	if c.Rating != nil {
		m.Rating = c.Rating
	}
	if c.ImageURL != nil {
		m.ImageURL = c.ImageURL
	}
	m.UpdatedAt = time.Now()
	s.mosques[id] = m
	return m, nil
}

func (s *TestStore) DeleteMosque(id int) (model.Mosque, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mosques[id]
	if !ok {
		return model.Mosque{}, sql.ErrNoRows
	}
	delete(s.mosques, id)
	return m, nil
}

func (s *TestStore) SeedMosques() error {
	city := func(v string) *string { return &v }
	_, _ = s.CreateMosque(model.NewMosque{
		Name: "Al-Haram Mosque", Address: "123 Main Street",
		City: city("New York"), Country: city("USA"),
		Latitude: 40.7128, Longitude: -74.0060,
	})
	_, _ = s.CreateMosque(model.NewMosque{
		Name: "Sultan Mosque", Address: "456 Central Ave",
		City: city("San Francisco"), Country: city("USA"),
		Latitude: 37.7749, Longitude: -122.4194,
	})
	_, _ = s.CreateMosque(model.NewMosque{
		Name: "Faisal Mosque", Address: "789 Park Boulevard",
		City: city("Los Angeles"), Country: city("USA"),
		Latitude: 34.0522, Longitude: -118.2437,
	})
	return nil
}

func (s *TestStore) GetPrayerTimesByMosqueID(mosqueID int) (model.PrayerTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pt, ok := s.prayers[mosqueID]
	if !ok {
		return model.PrayerTime{}, sql.ErrNoRows
	}
	return pt, nil
}

func (s *TestStore) UpsertPrayerTimes(mosqueID int, c model.PrayerTimeChanges) (model.PrayerTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pt, ok := s.prayers[mosqueID]
	if !ok {
		s.prayerID++
		pt = model.PrayerTime{ID: s.prayerID, MosqueID: mosqueID}
	}
	if c.Fajr != nil {
		pt.Fajr = c.Fajr
	}
	if c.Dhuhr != nil {
		pt.Dhuhr = c.Dhuhr
	}
	if c.Asr != nil {
		pt.Asr = c.Asr
	}
	if c.Maghrib != nil {
		pt.Maghrib = c.Maghrib
	}
	if c.Isha != nil {
		pt.Isha = c.Isha
	}
	pt.UpdatedAt = time.Now()
	s.prayers[mosqueID] = pt
	return pt, nil
}

func (s *TestStore) Health() (time.Time, error) {
	if s.HealthErr != nil {
		return time.Time{}, s.HealthErr
	}
	return time.Now(), nil
}
