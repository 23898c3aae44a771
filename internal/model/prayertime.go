package model

import "time"

// PrayerTime holds the five daily prayer times published for a mosque.
// Times are kept as display strings ("05:12") rather than timestamps.
type PrayerTime struct {
	ID        int       `db:"id"         json:"id"`
	MosqueID  int       `db:"mosque_id"  json:"mosque_id"`
	Fajr      *string   `db:"fajr"       json:"fajr"`
	Dhuhr     *string   `db:"dhuhr"      json:"dhuhr"`
	Asr       *string   `db:"asr"        json:"asr"`
	Maghrib   *string   `db:"maghrib"    json:"maghrib"`
	Isha      *string   `db:"isha"       json:"isha"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PrayerTimeChanges carries a partial upsert; nil fields keep their stored value.
type PrayerTimeChanges struct {
	Fajr    *string
	Dhuhr   *string
	Asr     *string
	Maghrib *string
	Isha    *string
}
