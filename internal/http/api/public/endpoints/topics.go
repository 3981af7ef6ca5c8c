package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/public/packets"
)

type TopicController struct {
	store db.Store
}

// PublicTopicsModule serves the teaching pages (tauheed, the pillars,
// taharat) assembled from their sections, items and linked verses.
func PublicTopicsModule(store db.Store) api.Module {
	ctl := &TopicController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/topics", ctl.listTopics)
		c.PUBLIC_GET("/topics/:slug", ctl.getTopic)
	})
}

func (c *TopicController) listTopics(ctx *gin.Context) (any, *api.APIError) {
	topics, err := c.store.ListTopics()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list topics"}
	}
	return topics, nil
}

func (c *TopicController) getTopic(ctx *gin.Context) (any, *api.APIError) {
	topic, err := c.store.GetTopicBySlug(ctx.Param("slug"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load topic"}
	}
	if topic == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown topic"}
	}

	sections, err := c.store.ListTopicSections(topic.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load sections"}
	}

	response := packets.TopicResponse{
		Slug:        topic.Slug,
		Title:       topic.Title,
		Description: topic.Description,
		Sections:    make([]packets.TopicSectionResponse, 0, len(sections)),
	}

	for _, section := range sections {
		items, err := c.store.ListSectionItems(section.ID)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load section items"}
		}
		texts := make([]string, 0, len(items))
		for _, item := range items {
			texts = append(texts, item.Text)
		}
		response.Sections = append(response.Sections, packets.TopicSectionResponse{
			Slug:    section.Slug,
			Heading: section.Heading,
			Kind:    section.Kind,
			Items:   texts,
		})
	}

	verses, err := c.store.ListVersesForTopic(topic.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load topic verses"}
	}
	response.Verses = verses

	return response, nil
}
