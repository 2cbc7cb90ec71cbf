package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestGatewayBroadcaster_FrameEnvelope(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)
	readFrame(t, conn)
	joinBoard(t, conn, testBoardA)

	now := time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC)
	b := NewGatewayBroadcaster(g, clock.NewFake(now))

	b.CardCreated(testBoardA, CardCreatedPayload{
		BoardID: testBoardA,
		Card:    models.CardView{ID: "c1", BoardID: testBoardA, Content: "Deploys were smooth"},
	})

	frame := readFrame(t, conn)
	assert.Equal(t, EventCardCreated, frame["type"])
	assert.Equal(t, now.Format(time.RFC3339Nano), frame["timestamp"])

	data, ok := frame["data"].(map[string]any)
	require.True(t, ok)
	card, ok := data["card"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "c1", card["id"])
}

func TestGatewayBroadcaster_NoRoomIsDropped(t *testing.T) {
	g := NewGateway(16, time.Minute)
	b := NewGatewayBroadcaster(g, clock.System{})

	// Publishing into an empty room must not block or panic.
	b.BoardRenamed(testBoardB, BoardRenamedPayload{BoardID: testBoardB, Name: "Renamed"})
}
