package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
)

type MediaController struct {
	store db.Store
}

// PublicMediaModule serves the gallery. An optional type filter narrows the
// listing, e.g. /media?type=image or /media?type=image,video.
func PublicMediaModule(store db.Store) api.Module {
	ctl := &MediaController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/media", ctl.listMedia)
	})
}

func (c *MediaController) listMedia(ctx *gin.Context) (any, *api.APIError) {
	var types []string
	if raw := ctx.Query("type"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			t = strings.TrimSpace(strings.ToLower(t))
			if t != "image" && t != "video" {
				return nil, &api.APIError{Code: http.StatusBadRequest, Message: "type must be image or video"}
			}
			types = append(types, t)
		}
	}

	media, err := c.store.ListMedia(types)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list media"}
	}
	return media, nil
}
