package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/admin/packets"
	"github.com/markaz-app/markaz/internal/model"
)

type LibraryController struct {
	store db.Store
}

func newLibraryController(store db.Store) *LibraryController {
	return &LibraryController{store: store}
}

// LibraryModule mounts the authenticated hadith and verse management
// endpoints.
func LibraryModule(store db.Store) api.Module {
	ctl := newLibraryController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/hadiths", ctl.createHadith)
		c.PUT("/hadiths/:id", ctl.updateHadith)
		c.DELETE("/hadiths/:id", ctl.deleteHadith)

		c.POST("/verses", ctl.createVerse)
		c.PUT("/verses/:id", ctl.updateVerse)
		c.DELETE("/verses/:id", ctl.deleteVerse)
	})
}

func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		log.Error().Str("id", ctx.Param("id")).Msg("invalid id in path")
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}

func (c *LibraryController) createHadith(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateHadithRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	h, err := c.store.CreateHadith(request.Arabic, request.Urdu, request.Reference)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create hadith"}
	}
	return h, nil
}

func (c *LibraryController) updateHadith(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateHadithRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := c.store.UpdateHadith(id, request.Arabic, request.Urdu, request.Reference); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	h, err := c.store.GetHadithByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch hadith"}
	}
	return h, nil
}

func (c *LibraryController) deleteHadith(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := c.store.DeleteHadith(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete hadith"}
	}
	return gin.H{"deleted": id}, nil
}

func (c *LibraryController) createVerse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateVerseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	v, err := c.store.CreateVerse(request.Arabic, request.Urdu, request.Surah, request.Ayah)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create verse"}
	}
	return v, nil
}

func (c *LibraryController) updateVerse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateVerseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := c.store.UpdateVerse(id, request.Arabic, request.Urdu, request.Surah, request.Ayah); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	v, err := c.store.GetVerseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch verse"}
	}
	return v, nil
}

func (c *LibraryController) deleteVerse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := c.store.DeleteVerse(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete verse"}
	}
	return gin.H{"deleted": id}, nil
}
