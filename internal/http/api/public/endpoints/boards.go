package endpoints

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/hijri"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/public/packets"
	"github.com/markaz-app/markaz/internal/http/middleware"
	"github.com/markaz-app/markaz/internal/model"
	"github.com/markaz-app/markaz/internal/prayer"
	"github.com/markaz-app/markaz/internal/redis"
)

// pairingCodeTTL is how long a board's code stays claimable.
const pairingCodeTTL = 5 * time.Minute

// codeCharset avoids ambiguous characters (0/O, 1/I) since the code is
// typed off a screen.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

type BoardDeviceController struct {
	store db.Store
	now   func() time.Time
}

// BoardDeviceModule serves the device side of the board flow: requesting a
// pairing code, fetching config after pairing, and the rendered athan page.
func BoardDeviceModule(store db.Store) api.Module {
	ctl := &BoardDeviceController{store: store, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/boards/request-pairing", ctl.requestPairing)
		c.PUBLIC_POST("/boards/connect", ctl.connect)
		c.Raw(http.MethodGet, "/boards/:device_id/page", ctl.athanPage)
	})
}

func generatePairingCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeCharset[n.Int64()]
	}
	return string(code), nil
}

// POST /api/boards/request-pairing
func (c *BoardDeviceController) requestPairing(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RequestPairingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	deviceID := uuid.NewString()
	if request.DeviceID != nil && *request.DeviceID != "" {
		deviceID = *request.DeviceID
	}

	code, err := generatePairingCode()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate code"}
	}

	if err := redis.SetString(ctx.Request.Context(), "pairing:"+code, deviceID, pairingCodeTTL); err != nil {
		log.Error().Err(err).Msg("could not store pairing code")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store pairing code"}
	}

	return packets.PairingResponse{
		DeviceID:  deviceID,
		Code:      code,
		ExpiresIn: int(pairingCodeTTL.Seconds()),
	}, nil
}

// POST /api/boards/connect — a paired device learns its city and command
// topic; unpaired devices get 404 and keep showing their code.
func (c *BoardDeviceController) connect(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ConnectBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	board, err := c.store.GetBoardByDeviceID(request.DeviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not look up board"}
	}
	if board == nil || !board.Paired {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not paired"}
	}

	if middleware.BrokerEnabled() {
		client, err := middleware.CreateMQTTClient("board-" + request.DeviceID)
		if err != nil {
			log.Warn().Err(err).Str("device", request.DeviceID).Msg("board MQTT connect failed")
		} else {
			middleware.RegisterBoard(request.DeviceID, client)
		}
	}

	return packets.BoardConfigResponse{
		Name:         board.Name,
		City:         board.City,
		CommandTopic: fmt.Sprintf("boards/%s/commands", request.DeviceID),
	}, nil
}

// GET /api/boards/:device_id/page — the rendered athan page the board
// displays full screen.
func (c *BoardDeviceController) athanPage(ctx *gin.Context) {
	deviceID := ctx.Param("device_id")

	board, err := c.store.GetBoardByDeviceID(deviceID)
	if err != nil || board == nil || !board.Paired {
		ctx.String(http.StatusNotFound, "device not paired")
		return
	}

	city, err := c.store.GetCityByName(board.City)
	if err != nil || city == nil {
		ctx.String(http.StatusInternalServerError, "board city missing")
		return
	}

	times, err := c.store.GetPrayerTimes(city.ID)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "prayer times unavailable")
		return
	}

	now := c.now()
	data := model.BoardPageData{
		City:    city.Name,
		Date:    strings.ToUpper(now.Format("02 January, 2006")),
		Hijri:   hijri.FromTime(now).Format(),
		Zawal:   prayer.Zawal(times.Dhuhr),
		Next:    prayer.Next(times, now),
		Prayers: prayer.Rows(times),
	}
	ctx.HTML(http.StatusOK, "athan.html", data)
}
