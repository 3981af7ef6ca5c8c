package endpoints

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/admin/packets"
	"github.com/markaz-app/markaz/internal/http/middleware"
	"github.com/markaz-app/markaz/internal/model"
	"github.com/markaz-app/markaz/internal/redis"
)

type BoardController struct {
	store db.Store
}

// BoardModule mounts the authenticated display board management endpoints.
// Boards are paired by consuming a short-lived code that the device itself
// requested through the public API.
func BoardModule(store db.Store) api.Module {
	ctl := &BoardController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/boards", ctl.listBoards)
		c.POST("/boards", ctl.createBoard)
		c.POST("/boards/:id/pair", ctl.pairBoard)
		c.DELETE("/boards/:id", ctl.deleteBoard)
	})
}

func boardResponse(board model.Board, online map[string]bool) packets.BoardResponse {
	isOnline := false
	if board.DeviceID != nil {
		isOnline = online[*board.DeviceID]
	}
	return packets.BoardResponse{
		ID:       board.ID,
		DeviceID: board.DeviceID,
		Name:     board.Name,
		City:     board.City,
		Location: board.Location,
		Paired:   board.Paired,
		Online:   isOnline,
	}
}

func (c *BoardController) listBoards(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	boards, err := c.store.ListBoards()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list boards"}
	}

	online := make(map[string]bool)
	for _, deviceID := range middleware.ConnectedBoards() {
		online[deviceID] = true
	}

	responses := make([]packets.BoardResponse, 0, len(boards))
	for _, board := range boards {
		responses = append(responses, boardResponse(board, online))
	}
	return responses, nil
}

func (c *BoardController) createBoard(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if city, err := c.store.GetCityByName(request.City); err != nil || city == nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown city"}
	}

	board, err := c.store.CreateBoard(request.Name, request.City, request.Location)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create board"}
	}
	return boardResponse(board, nil), nil
}

// POST /api/admin/boards/:id/pair
// Consumes the pairing code the device displayed; after this the device's
// MQTT commands are routed to the board's city.
func (c *BoardController) pairBoard(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.PairBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	deviceID, err := redis.GetString(ctx.Request.Context(), "pairing:"+request.Code)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "invalid or expired pairing code"}
	}

	if err := c.store.PairBoard(id, deviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "board not found"}
	}
	redis.Delete(context.Background(), "pairing:"+request.Code)

	board, err := c.store.GetBoardByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch board"}
	}
	log.Info().Int("board", id).Str("device", deviceID).Msg("board paired")
	return boardResponse(board, nil), nil
}

func (c *BoardController) deleteBoard(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	board, err := c.store.GetBoardByID(id)
	if err == nil && board.DeviceID != nil {
		middleware.DisconnectBoard(*board.DeviceID)
	}

	if err := c.store.DeleteBoard(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete board"}
	}
	return gin.H{"deleted": id}, nil
}
