package endpoints

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/hijri"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/public/packets"
	"github.com/markaz-app/markaz/internal/prayer"
	"github.com/markaz-app/markaz/internal/redis"
)

// defaultCity is served when the requested city is unknown or omitted.
const defaultCity = "Karachi"

// prayerCacheTTL keeps the assembled page briefly; the admin write path
// deletes the key so edits show up immediately.
const prayerCacheTTL = 15 * time.Minute

const timetableNote = "نوٹ: اوقات میں اپنی مقامی مسجد کے مطابق چند منٹ کا فرق ہو سکتا ہے۔"

type PrayerTimesController struct {
	store db.Store
	now   func() time.Time
}

// PublicPrayerModule serves the city list and the assembled prayer-times page.
func PublicPrayerModule(store db.Store) api.Module {
	ctl := &PrayerTimesController{store: store, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/cities", ctl.listCities)
		c.PUBLIC_GET("/prayer-times", ctl.getPrayerTimes)
	})
}

func (c *PrayerTimesController) listCities(ctx *gin.Context) (any, *api.APIError) {
	cities, err := c.store.ListCities()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list cities"}
	}
	return cities, nil
}

// GET /api/prayer-times?city=Lahore
func (c *PrayerTimesController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	requested := ctx.Query("city")
	if requested == "" {
		requested = defaultCity
	}

	city, err := c.store.GetCityByName(requested)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve city"}
	}
	if city == nil {
		// Unknown cities fall back to the default rather than erroring;
		// the response echoes the city actually served.
		city, err = c.store.GetCityByName(defaultCity)
		if err != nil || city == nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "default city missing"}
		}
	}

	cacheKey := "prayer:times:" + strings.ToLower(city.Name)
	var cached packets.PrayerTimesResponse
	if err := redis.GetJSON(ctx.Request.Context(), cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.ErrCacheMiss {
		log.Warn().Err(err).Str("key", cacheKey).Msg("prayer cache read failed")
	}

	times, err := c.store.GetPrayerTimes(city.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load prayer times"}
	}

	now := c.now()
	islamic := hijri.FromTime(now)
	response := packets.PrayerTimesResponse{
		City:          city.Name,
		GregorianDate: strings.ToUpper(now.Format("02 January, 2006")),
		HijriDate:     islamic.Format(),
		IslamicMonth:  hijri.MonthName(islamic.Month),
		Prayers:       prayer.Rows(times),
		Zawal:         prayer.Zawal(times.Dhuhr),
		Note:          timetableNote,
	}

	redis.SetJSON(ctx.Request.Context(), cacheKey, response, prayerCacheTTL)
	return response, nil
}
