package packets

// RequestPairingRequest starts the board pairing flow. DeviceID is optional;
// a fresh one is issued when the device does not have one yet.
type RequestPairingRequest struct {
	DeviceID *string `json:"device_id"`
}

type ConnectBoardRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}
