package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/http/api"
	"github.com/minaret-labs/minaret/internal/http/api/directory/packets"
	"github.com/minaret-labs/minaret/internal/model"
)

// DirectoryAdminModule mounts the mutation side of the directory.
// Mount it behind the session middleware: every route here requires a
// valid admin session.
func DirectoryAdminModule(store db.Store) api.Module {
	ctl := newDirectoryController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/mosques", ctl.createMosque)
		c.PUT("/mosques/:id", ctl.updateMosque)
		c.DELETE("/mosques/:id", ctl.deleteMosque)
		c.PUT("/mosques/:id/prayer-times", ctl.updatePrayerTimes)
	})
}

// POST /mosques
func (d *DirectoryController) createMosque(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	mosque, err := d.store.CreateMosque(model.NewMosque{
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		City:        request.City,
		Country:     request.Country,
		Latitude:    *request.Latitude,
		Longitude:   *request.Longitude,
		Phone:       request.Phone,
		Email:       request.Email,
		Website:     request.Website,
		Rating:      request.Rating,
		ImageURL:    request.ImageURL,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to create mosque"}
	}

	return api.Created{Body: packets.NewMosqueResponse(mosque)}, nil
}

// PUT /mosques/:id
func (d *DirectoryController) updateMosque(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	mosque, err := d.store.UpdateMosque(id, model.MosqueChanges{
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		City:        request.City,
		Country:     request.Country,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Phone:       request.Phone,
		Email:       request.Email,
		Website:     request.Website,
		Rating:      request.Rating,
		ImageURL:    request.ImageURL,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Mosque not found"}
		}
		log.Error().Err(err).Int("mosque_id", id).Msg("failed to update mosque")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to update mosque"}
	}

	return packets.NewMosqueResponse(mosque), nil
}

// DELETE /mosques/:id
func (d *DirectoryController) deleteMosque(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := d.store.DeleteMosque(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Mosque not found"}
		}
		log.Error().Err(err).Int("mosque_id", id).Msg("failed to delete mosque")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to delete mosque"}
	}

	return gin.H{"message": "Mosque deleted successfully"}, nil
}

// PUT /mosques/:id/prayer-times
func (d *DirectoryController) updatePrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	// the upsert would happily invent a row for a ghost mosque, so
	// check existence first
	if _, err := d.store.GetMosqueByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Mosque not found"}
		}
		log.Error().Err(err).Int("mosque_id", id).Msg("failed to fetch mosque")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to update prayer times"}
	}

	var request packets.UpdatePrayerTimesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	pt, err := d.store.UpsertPrayerTimes(id, model.PrayerTimeChanges{
		Fajr:    request.Fajr,
		Dhuhr:   request.Dhuhr,
		Asr:     request.Asr,
		Maghrib: request.Maghrib,
		Isha:    request.Isha,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to update prayer times"}
	}

	return packets.NewPrayerTimeResponse(pt), nil
}
