package model

import "time"

// Mosque is one row in the public directory.
type Mosque struct {
	ID          int       `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description *string   `db:"description" json:"description"`
	Address     string    `db:"address"     json:"address"`
	City        *string   `db:"city"        json:"city"`
	Country     *string   `db:"country"     json:"country"`
	Latitude    float64   `db:"latitude"    json:"latitude"`
	Longitude   float64   `db:"longitude"   json:"longitude"`
	Phone       *string   `db:"phone"       json:"phone"`
	Email       *string   `db:"email"       json:"email"`
	Website     *string   `db:"website"     json:"website"`
	Rating      *float64  `db:"rating"      json:"rating"`
	ImageURL    *string   `db:"image_url"   json:"image_url"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

// NewMosque carries the fields accepted when inserting a mosque; the
// store assigns id and timestamps.
type NewMosque struct {
	Name        string
	Description *string
	Address     string
	City        *string
	Country     *string
	Latitude    float64
	Longitude   float64
	Phone       *string
	Email       *string
	Website     *string
	Rating      *float64
	ImageURL    *string
}

// MosqueFilter narrows a directory listing. Empty fields match everything.
type MosqueFilter struct {
	City    *string
	Country *string
	Limit   int
}

// MosqueChanges carries a partial update; nil fields keep their stored value.
type MosqueChanges struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Country     *string
	Latitude    *float64
	Longitude   *float64
	Phone       *string
	Email       *string
	Website     *string
	Rating      *float64
	ImageURL    *string
}
