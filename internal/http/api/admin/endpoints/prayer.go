package endpoints

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/admin/packets"
	"github.com/markaz-app/markaz/internal/http/middleware"
	"github.com/markaz-app/markaz/internal/model"
	"github.com/markaz-app/markaz/internal/prayer"
	"github.com/markaz-app/markaz/internal/redis"
)

type PrayerController struct {
	store db.Store
}

// PrayerModule mounts the authenticated prayer timetable management
// endpoints.
func PrayerModule(store db.Store) api.Module {
	ctl := &PrayerController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUT("/prayer-times/:city", ctl.updatePrayerTimes)
		c.POST("/prayer-times/import", ctl.importTimetable)
	})
}

// PUT /api/admin/prayer-times/:city
func (c *PrayerController) updatePrayerTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePrayerTimesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	city, err := c.store.GetCityByName(ctx.Param("city"))
	if err != nil || city == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown city"}
	}

	times := model.PrayerTimes{
		CityID:  city.ID,
		Fajr:    request.Fajr,
		Sunrise: request.Sunrise,
		Dhuhr:   request.Dhuhr,
		Asr:     request.Asr,
		Maghrib: request.Maghrib,
		Isha:    request.Isha,
	}
	if !prayer.Ordered(times) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "times must be valid clock values in ascending order"}
	}

	if err := c.store.UpdatePrayerTimes(city.ID, times); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update prayer times"}
	}

	invalidateAndNotify(c.store, city.Name)
	return times, nil
}

// POST /api/admin/prayer-times/import
func (c *PrayerController) importTimetable(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ImportTimetableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	html, err := prayer.FetchTimetable(request.URL)
	if err != nil {
		log.Error().Err(err).Str("url", request.URL).Msg("timetable import failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch timetable: " + err.Error()}
	}

	timetable, err := prayer.ParseTimetable(html)
	if err != nil {
		log.Error().Err(err).Str("url", request.URL).Msg("timetable parse failed")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "could not parse timetable: " + err.Error()}
	}

	report := packets.ImportReport{Updated: []string{}, Skipped: []string{}}
	for name, times := range timetable {
		city, err := c.store.GetCityByName(name)
		if err != nil || city == nil {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		times.CityID = city.ID
		if err := c.store.UpdatePrayerTimes(city.ID, times); err != nil {
			log.Error().Err(err).Str("city", city.Name).Msg("failed to store imported times")
			report.Skipped = append(report.Skipped, name)
			continue
		}
		redis.Delete(context.Background(), "prayer:times:"+strings.ToLower(city.Name))
		report.Updated = append(report.Updated, city.Name)
	}

	// an import touches many cities at once, so refresh every board in one go
	if len(report.Updated) > 0 && middleware.BrokerEnabled() {
		if err := middleware.SendMessageToAllBoards([]byte("times_update")); err != nil {
			log.Warn().Err(err).Msg("board broadcast failed")
		}
	}

	log.Info().Int("updated", len(report.Updated)).Int("skipped", len(report.Skipped)).Msg("timetable import complete")
	return report, nil
}

// invalidateAndNotify drops the cached public response for a city and tells
// that city's paired boards to redraw.
func invalidateAndNotify(store db.Store, cityName string) {
	redis.Delete(context.Background(), "prayer:times:"+strings.ToLower(cityName))

	if !middleware.BrokerEnabled() {
		return
	}
	boards, err := store.ListBoards()
	if err != nil {
		log.Warn().Err(err).Msg("could not list boards for notify")
		return
	}
	for _, board := range boards {
		if !board.Paired || board.DeviceID == nil || !strings.EqualFold(board.City, cityName) {
			continue
		}
		if err := middleware.SendMessageToBoard(*board.DeviceID, []byte("times_update")); err != nil {
			log.Warn().Err(err).Str("device", *board.DeviceID).Msg("board notify failed")
		}
	}
}
