package middleware

import (
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Display boards subscribe to boards/<device>/commands and redraw when a
// times_update message arrives. The broker is optional: with no broker
// configured every publish is a silent no-op and boards poll instead.

var (
	boardClients = make(map[string]mqtt.Client)
	clientMutex  sync.RWMutex
	mqttClient   mqtt.Client
	brokerURL    string
)

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// SetBrokerURL configures the MQTT broker; empty disables publishing.
func SetBrokerURL(url string) {
	brokerURL = url
}

// BrokerEnabled reports whether a broker has been configured.
func BrokerEnabled() bool {
	return brokerURL != ""
}

// CreateMQTTClient connects a named client to the configured broker.
func CreateMQTTClient(clientName string) (mqtt.Client, error) {
	if brokerURL == "" {
		return nil, fmt.Errorf("no MQTT broker configured")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	return client, nil
}

// InitMQTT connects the server's own publishing client.
func InitMQTT(clientName string) error {
	client, err := CreateMQTTClient(clientName)
	if err != nil {
		return err
	}
	mqttClient = client
	log.Info().Str("broker", brokerURL).Msg("MQTT publisher initialized")
	return nil
}

// RegisterBoard records a connected board's client so targeted messages and
// cleanup work.
func RegisterBoard(deviceID string, client mqtt.Client) {
	clientMutex.Lock()
	boardClients[deviceID] = client
	clientMutex.Unlock()
}

// SendMessageToBoard publishes to one board's command topic.
func SendMessageToBoard(deviceID string, message []byte) error {
	if mqttClient == nil {
		return fmt.Errorf("MQTT publisher not initialized")
	}
	topic := fmt.Sprintf("boards/%s/commands", deviceID)
	token := mqttClient.Publish(topic, 1, false, message)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to send message to board %s: %v", deviceID, token.Error())
	}
	log.Debug().Str("device", deviceID).Msg("message sent to board")
	return nil
}

// SendMessageToAllBoards publishes to every registered board.
func SendMessageToAllBoards(message []byte) error {
	clientMutex.RLock()
	devices := make([]string, 0, len(boardClients))
	for deviceID := range boardClients {
		devices = append(devices, deviceID)
	}
	clientMutex.RUnlock()

	var failures []string
	for _, deviceID := range devices {
		if err := SendMessageToBoard(deviceID, message); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", deviceID, err))
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("failed to send messages to some boards: %v", failures)
	}
	return nil
}

// DisconnectBoard drops a board's registration and closes its client.
func DisconnectBoard(deviceID string) {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	if client, exists := boardClients[deviceID]; exists {
		client.Disconnect(250)
		delete(boardClients, deviceID)
		log.Info().Str("device", deviceID).Msg("board disconnected from MQTT")
	}
}

// ConnectedBoards lists registered board device IDs.
func ConnectedBoards() []string {
	clientMutex.RLock()
	defer clientMutex.RUnlock()

	devices := make([]string, 0, len(boardClients))
	for deviceID := range boardClients {
		devices = append(devices, deviceID)
	}
	return devices
}

// CleanupMQTT disconnects all board clients and the publisher.
func CleanupMQTT() {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	for deviceID, client := range boardClients {
		client.Disconnect(250)
		log.Info().Str("device", deviceID).Msg("disconnected board")
	}
	boardClients = make(map[string]mqtt.Client)

	if mqttClient != nil {
		mqttClient.Disconnect(250)
		log.Info().Msg("MQTT publisher disconnected")
	}
}
