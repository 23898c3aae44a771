package packets

import (
	"time"

	"github.com/minaret-labs/minaret/internal/model"
)

type MosqueResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Address     string   `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"image_url"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func NewMosqueResponse(m model.Mosque) MosqueResponse {
	return MosqueResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Address:     m.Address,
		City:        m.City,
		Country:     m.Country,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Phone:       m.Phone,
		Email:       m.Email,
		Website:     m.Website,
		Rating:      m.Rating,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

type PrayerTimeResponse struct {
	ID        int     `json:"id"`
	MosqueID  int     `json:"mosque_id"`
	Fajr      *string `json:"fajr"`
	Dhuhr     *string `json:"dhuhr"`
	Asr       *string `json:"asr"`
	Maghrib   *string `json:"maghrib"`
	Isha      *string `json:"isha"`
	UpdatedAt string  `json:"updated_at"`
}

func NewPrayerTimeResponse(pt model.PrayerTime) PrayerTimeResponse {
	return PrayerTimeResponse{
		ID:        pt.ID,
		MosqueID:  pt.MosqueID,
		Fajr:      pt.Fajr,
		Dhuhr:     pt.Dhuhr,
		Asr:       pt.Asr,
		Maghrib:   pt.Maghrib,
		Isha:      pt.Isha,
		UpdatedAt: pt.UpdatedAt.Format(time.RFC3339),
	}
}
