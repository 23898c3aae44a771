package db

import (
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/model"
)

const prayerTimeColumns = `
	id, mosque_id, fajr, dhuhr, asr, maghrib, isha, updated_at`

// fetches the published prayer times for a mosque. Returns
// sql.ErrNoRows when none have been recorded.
func (s *pgStore) GetPrayerTimesByMosqueID(mosqueID int) (model.PrayerTime, error) {
	var pt model.PrayerTime
	err := s.db.Get(&pt, `
		SELECT`+prayerTimeColumns+`
		FROM prayer_times
		WHERE mosque_id = $1
		`, mosqueID)
	return pt, err
}

// inserts or partially updates the prayer-time row for a mosque.
// nil fields keep their stored value on update.
func (s *pgStore) UpsertPrayerTimes(mosqueID int, changes model.PrayerTimeChanges) (model.PrayerTime, error) {
	var pt model.PrayerTime
	err := s.db.Get(&pt, `
		INSERT INTO prayer_times (mosque_id, fajr, dhuhr, asr, maghrib, isha, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (mosque_id) DO UPDATE
		SET fajr = COALESCE($2, prayer_times.fajr),
		dhuhr = COALESCE($3, prayer_times.dhuhr),
		asr = COALESCE($4, prayer_times.asr),
		maghrib = COALESCE($5, prayer_times.maghrib),
		isha = COALESCE($6, prayer_times.isha),
		updated_at = now()
		RETURNING`+prayerTimeColumns+`
		`, mosqueID,
		changes.Fajr,
		changes.Dhuhr,
		changes.Asr,
		changes.Maghrib,
		changes.Isha,
	)
	if err != nil {
		log.Error().Err(err).Int("mosque_id", mosqueID).Msg("failed to upsert prayer times")
		return model.PrayerTime{}, err
	}
	return pt, nil
}
