package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/model"
)

const mosqueColumns = `
	id, name, description, address, city, country, latitude, longitude,
	phone, email, website, rating, image_url, created_at, updated_at`

// fetches mosques matching the filter. City and country are
// case-insensitive substring matches; the result count is capped at
// filter.Limit. Row order is whatever the store returns.
func (s *pgStore) ListMosques(filter model.MosqueFilter) ([]model.Mosque, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT` + mosqueColumns + ` FROM mosques WHERE 1=1`)
	args := []any{}

	if filter.City != nil {
		args = append(args, "%"+*filter.City+"%")
		fmt.Fprintf(&sb, " AND city ILIKE $%d", len(args))
	}
	if filter.Country != nil {
		args = append(args, "%"+*filter.Country+"%")
		fmt.Fprintf(&sb, " AND country ILIKE $%d", len(args))
	}
	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))

	mosques := []model.Mosque{}
	if err := s.db.Select(&mosques, sb.String(), args...); err != nil {
		log.Error().Err(err).Msg("failed to list mosques")
		return nil, err
	}
	return mosques, nil
}

func (s *pgStore) GetMosqueByID(id int) (model.Mosque, error) {
	var m model.Mosque
	err := s.db.Get(&m, `
		SELECT`+mosqueColumns+`
		FROM mosques
		WHERE id = $1
		`, id)
	return m, err
}

func (s *pgStore) CreateMosque(nm model.NewMosque) (model.Mosque, error) {
	var m model.Mosque
	q := `
	INSERT INTO mosques
	(name, description, address, city, country, latitude, longitude,
	 phone, email, website, rating, image_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
	RETURNING` + mosqueColumns + `;`
	if err := s.db.Get(&m, q,
		nm.Name,
		nm.Description,
		nm.Address,
		nm.City,
		nm.Country,
		nm.Latitude,
		nm.Longitude,
		nm.Phone,
		nm.Email,
		nm.Website,
		nm.Rating,
		nm.ImageURL,
	); err != nil {
		log.Error().Err(err).Msg("failed to create mosque")
		return model.Mosque{}, err
	}
	return m, nil
}

// applies a partial update: nil fields keep their stored value, and
// updated_at is bumped either way. Returns sql.ErrNoRows for an
// unknown id.
func (s *pgStore) UpdateMosque(id int, changes model.MosqueChanges) (model.Mosque, error) {
	var m model.Mosque
	err := s.db.Get(&m, `
		UPDATE mosques
		SET name = COALESCE($2, name),
		description = COALESCE($3, description),
		address = COALESCE($4, address),
		city = COALESCE($5, city),
		country = COALESCE($6, country),
		latitude = COALESCE($7, latitude),
		longitude = COALESCE($8, longitude),
		phone = COALESCE($9, phone),
		email = COALESCE($10, email),
		website = COALESCE($11, website),
		rating = COALESCE($12, rating),
		image_url = COALESCE($13, image_url),
		updated_at = now()
		WHERE id = $1
		RETURNING`+mosqueColumns+`
		`, id,
		changes.Name,
		changes.Description,
		changes.Address,
		changes.City,
		changes.Country,
		changes.Latitude,
		changes.Longitude,
		changes.Phone,
		changes.Email,
		changes.Website,
		changes.Rating,
		changes.ImageURL,
	)
	return m, err
}

// removes the row and returns its prior state. Returns sql.ErrNoRows
// for an unknown id.
func (s *pgStore) DeleteMosque(id int) (model.Mosque, error) {
	var m model.Mosque
	err := s.db.Get(&m, `
		DELETE FROM mosques
		WHERE id = $1
		RETURNING`+mosqueColumns+`
		`, id)
	return m, err
}

// inserts the sample directory entries used by the setup routine.
func (s *pgStore) SeedMosques() error {
	_, err := s.db.Exec(`
		INSERT INTO mosques
		(name, description, address, city, country, latitude, longitude,
		 phone, email, website, created_at, updated_at)
		VALUES
		('Al-Haram Mosque', 'Grand mosque in the heart of the city', '123 Main Street',
		 'New York', 'USA', 40.7128, -74.0060,
		 '+1-212-555-0100', 'info@alharam.org', 'https://alharam.org', now(), now()),
		('Sultan Mosque', 'Beautiful mosque with traditional architecture', '456 Central Ave',
		 'San Francisco', 'USA', 37.7749, -122.4194,
		 '+1-415-555-0200', 'contact@sultan.org', 'https://sultan.org', now(), now()),
		('Faisal Mosque', 'Large mosque serving the community', '789 Park Boulevard',
		 'Los Angeles', 'USA', 34.0522, -118.2437,
		 '+1-213-555-0300', 'admin@faisal.org', 'https://faisal.org', now(), now())
		ON CONFLICT DO NOTHING
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed mosques")
	}
	return err
}
