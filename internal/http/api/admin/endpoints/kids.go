package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/admin/packets"
	"github.com/markaz-app/markaz/internal/model"
)

type KidsController struct {
	store db.Store
}

// KidsModule mounts the authenticated kids-corner management endpoints.
func KidsModule(store db.Store) api.Module {
	ctl := &KidsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/kids/stories", ctl.createStory)
		c.DELETE("/kids/stories/:id", ctl.deleteStory)
		c.POST("/kids/duas", ctl.createDua)
	})
}

func (c *KidsController) createStory(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateStoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	story, err := c.store.CreateStory(request.Title, request.Body)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create story"}
	}
	return story, nil
}

func (c *KidsController) deleteStory(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := c.store.DeleteStory(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete story"}
	}
	return gin.H{"deleted": id}, nil
}

func (c *KidsController) createDua(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateDuaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	dua, err := c.store.CreateDua(request.Arabic, request.Urdu, request.Source)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create dua"}
	}
	return dua, nil
}
