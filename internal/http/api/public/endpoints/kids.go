package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
)

type KidsController struct {
	store db.Store
}

// PublicKidsModule serves the kids corner: stories, everyday duas and
// suggested activities.
func PublicKidsModule(store db.Store) api.Module {
	ctl := &KidsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/kids/stories", ctl.listStories)
		c.PUBLIC_GET("/kids/stories/:id", ctl.getStory)
		c.PUBLIC_GET("/kids/duas", ctl.listDuas)
		c.PUBLIC_GET("/kids/activities", ctl.listActivities)
	})
}

func (c *KidsController) listStories(ctx *gin.Context) (any, *api.APIError) {
	stories, err := c.store.ListStories()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list stories"}
	}
	return stories, nil
}

func (c *KidsController) getStory(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	story, err := c.store.GetStoryByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return story, nil
}

func (c *KidsController) listDuas(ctx *gin.Context) (any, *api.APIError) {
	duas, err := c.store.ListDuas()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list duas"}
	}
	return duas, nil
}

func (c *KidsController) listActivities(ctx *gin.Context) (any, *api.APIError) {
	activities, err := c.store.ListActivities()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list activities"}
	}
	return activities, nil
}
