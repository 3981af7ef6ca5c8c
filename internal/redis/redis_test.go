package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr(), "", "")
	return mr
}

func TestJSONRoundTrip(t *testing.T) {
	setup(t)
	ctx := context.Background()

	type payload struct {
		City  string `json:"city"`
		Zawal string `json:"zawal"`
	}

	SetJSON(ctx, "prayer:times:Karachi", payload{City: "Karachi", Zawal: "12:25 PM"}, time.Hour)

	var got payload
	require.NoError(t, GetJSON(ctx, "prayer:times:Karachi", &got))
	assert.Equal(t, "Karachi", got.City)
	assert.Equal(t, "12:25 PM", got.Zawal)
}

func TestGetJSONMiss(t *testing.T) {
	setup(t)

	var out map[string]any
	err := GetJSON(context.Background(), "missing", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestPairingCodeExpiry(t *testing.T) {
	mr := setup(t)
	ctx := context.Background()

	require.NoError(t, SetString(ctx, "pairing:ABC123", "device-7", 5*time.Minute))

	v, err := GetString(ctx, "pairing:ABC123")
	require.NoError(t, err)
	assert.Equal(t, "device-7", v)

	mr.FastForward(6 * time.Minute)

	_, err = GetString(ctx, "pairing:ABC123")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDeleteConsumesCode(t *testing.T) {
	setup(t)
	ctx := context.Background()

	require.NoError(t, SetString(ctx, "pairing:XYZ789", "device-9", time.Minute))
	Delete(ctx, "pairing:XYZ789")

	_, err := GetString(ctx, "pairing:XYZ789")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
