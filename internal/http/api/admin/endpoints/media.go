package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/admin/packets"
	"github.com/markaz-app/markaz/internal/model"
	"github.com/markaz-app/markaz/internal/storage"
)

type MediaController struct {
	store   db.Store
	storage storage.Storage
}

// MediaModule mounts the authenticated media gallery management endpoints.
// Uploads go through the configured Storage backend (local disk or Spaces).
func MediaModule(store db.Store, fileStorage storage.Storage) api.Module {
	ctl := &MediaController{store: store, storage: fileStorage}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/media", ctl.uploadMedia)
		c.DELETE("/media/:id", ctl.deleteMedia)
	})
}

var allowedMediaTypes = map[string]bool{
	"image": true,
	"video": true,
}

// POST /api/admin/media — multipart form: file, title, type, caption?, location?
func (c *MediaController) uploadMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	title := ctx.PostForm("title")
	mediaType := ctx.PostForm("type")
	if title == "" || !allowedMediaTypes[mediaType] {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "title and type (image|video) are required"}
	}

	var caption, location *string
	if v := ctx.PostForm("caption"); v != "" {
		caption = &v
	}
	if v := ctx.PostForm("location"); v != "" {
		location = &v
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	url, err := c.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to save media file")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save file"}
	}

	media, err := c.store.CreateMedia(title, mediaType, url, caption, location)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create media record"}
	}

	return packets.MediaResponse{
		ID:        media.ID,
		Title:     media.Title,
		Type:      media.Type,
		URL:       media.URL,
		Caption:   media.Caption,
		Location:  media.Location,
		CreatedAt: media.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (c *MediaController) deleteMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := c.store.DeleteMedia(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete media"}
	}
	return gin.H{"deleted": id}, nil
}
