package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokerDisabledWithoutURL(t *testing.T) {
	SetBrokerURL("")
	assert.False(t, BrokerEnabled())

	_, err := CreateMQTTClient("test-client")
	assert.Error(t, err)
}

func TestSendMessageToBoardRequiresPublisher(t *testing.T) {
	err := SendMessageToBoard("device-1", []byte("times_update"))
	assert.Error(t, err)
}

func TestBroadcastWithNoBoardsIsNoOp(t *testing.T) {
	// nothing registered, nothing published
	assert.Empty(t, ConnectedBoards())
	assert.NoError(t, SendMessageToAllBoards([]byte("times_update")))
}
