package endpoints

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/public/packets"
	"github.com/markaz-app/markaz/internal/model"
	"github.com/markaz-app/markaz/internal/redis"
)

type LibraryController struct {
	store db.Store
	now   func() time.Time
}

// PublicLibraryModule serves the read side of the hadith and verse library,
// plus search and the rotating daily hadith.
func PublicLibraryModule(store db.Store) api.Module {
	ctl := &LibraryController{store: store, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/hadiths", ctl.listHadiths)
		c.PUBLIC_GET("/hadiths/daily", ctl.dailyHadith)
		c.PUBLIC_GET("/hadiths/:id", ctl.getHadith)
		c.PUBLIC_GET("/verses", ctl.listVerses)
		c.PUBLIC_GET("/verses/:id", ctl.getVerse)
		c.PUBLIC_GET("/search", ctl.search)
	})
}

func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}

func (c *LibraryController) listHadiths(ctx *gin.Context) (any, *api.APIError) {
	hadiths, err := c.store.ListHadiths()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list hadiths"}
	}
	return hadiths, nil
}

// GET /api/hadiths/daily — deterministic pick for the day, so every visitor
// sees the same hadith until midnight.
func (c *LibraryController) dailyHadith(ctx *gin.Context) (any, *api.APIError) {
	today := c.now().Format("2006-01-02")
	cacheKey := "hadith:daily:" + today

	var cached model.Hadith
	if err := redis.GetJSON(ctx.Request.Context(), cacheKey, &cached); err == nil {
		return cached, nil
	}

	hadiths, err := c.store.ListHadiths()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list hadiths"}
	}
	if len(hadiths) == 0 {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no hadiths available"}
	}

	pick := hadiths[c.now().YearDay()%len(hadiths)]
	redis.SetJSON(ctx.Request.Context(), cacheKey, pick, 24*time.Hour)
	return pick, nil
}

func (c *LibraryController) getHadith(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	h, err := c.store.GetHadithByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return h, nil
}

func (c *LibraryController) listVerses(ctx *gin.Context) (any, *api.APIError) {
	verses, err := c.store.ListVerses()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list verses"}
	}
	return verses, nil
}

func (c *LibraryController) getVerse(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	v, err := c.store.GetVerseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return v, nil
}

// GET /api/search?q=بخاری — case-insensitive substring match over both
// collections. No matches is still a 200 with empty lists.
func (c *LibraryController) search(ctx *gin.Context) (any, *api.APIError) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "q is required"}
	}

	hadiths, err := c.store.SearchHadiths(query)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "search failed"}
	}
	verses, err := c.store.SearchVerses(query)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "search failed"}
	}

	if hadiths == nil {
		hadiths = []model.Hadith{}
	}
	if verses == nil {
		verses = []model.Verse{}
	}
	return packets.SearchResponse{Query: query, Hadiths: hadiths, Verses: verses}, nil
}
