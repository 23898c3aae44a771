package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/model"
)

// inserts the admin account, returns its new ID.
func (s *pgStore) CreateAdmin(username, passwordHash string) (int, error) {
	query := `
	INSERT INTO admin (username, password_hash, created_at)
	VALUES ($1, $2, now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, username, passwordHash).Scan(&newID)
	if err != nil {
		log.Error().Err(err).Msg("failed to create admin")
		return 0, err
	}
	return newID, nil
}

// fetches the admin by username. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetAdminByUsername(username string) (*model.Admin, error) {
	var a model.Admin
	query := `
	SELECT id, username, password_hash, created_at
	FROM admin
	WHERE username = $1;
	`
	err := s.db.Get(&a, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get admin by username")
		return nil, err
	}
	return &a, nil
}
