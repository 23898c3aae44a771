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

const defaultListLimit = 100

// DirectoryPublicModule mounts the unauthenticated read side of the
// directory: search, detail, prayer times.
func DirectoryPublicModule(store db.Store) api.Module {
	ctl := newDirectoryController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/mosques", ctl.listMosques)
		c.GET("/mosques/:id", ctl.getMosque)
		c.GET("/mosques/:id/prayer-times", ctl.getPrayerTimes)
	})
}

type DirectoryController struct {
	store db.Store
}

func newDirectoryController(store db.Store) *DirectoryController {
	return &DirectoryController{store: store}
}

// GET /mosques?city=&country=&limit=
func (d *DirectoryController) listMosques(ctx *gin.Context) (any, *api.APIError) {
	filter := model.MosqueFilter{Limit: defaultListLimit}

	if city := ctx.Query("city"); city != "" {
		filter.City = &city
	}
	if country := ctx.Query("country"); country != "" {
		filter.Country = &country
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid limit"}
		}
		filter.Limit = limit
	}

	mosques, err := d.store.ListMosques(filter)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to fetch mosques"}
	}

	out := make([]packets.MosqueResponse, 0, len(mosques))
	for _, m := range mosques {
		out = append(out, packets.NewMosqueResponse(m))
	}
	return out, nil
}

// GET /mosques/:id
func (d *DirectoryController) getMosque(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	mosque, err := d.store.GetMosqueByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Mosque not found"}
		}
		log.Error().Err(err).Int("mosque_id", id).Msg("failed to fetch mosque")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to fetch mosque"}
	}

	return packets.NewMosqueResponse(mosque), nil
}

// GET /mosques/:id/prayer-times
func (d *DirectoryController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	pt, err := d.store.GetPrayerTimesByMosqueID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Prayer times not found"}
		}
		log.Error().Err(err).Int("mosque_id", id).Msg("failed to fetch prayer times")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Failed to fetch prayer times"}
	}

	return packets.NewPrayerTimeResponse(pt), nil
}
