package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(StartTransferEvent{AttemptID: "1"}))
	got := <-eb.UIToCore()
	assert.Equal(t, "1", got.(StartTransferEvent).AttemptID)

	require.NoError(t, eb.SendToUI(TransferCompletedEvent{AttemptID: "1", SavedPath: "/x"}))
	done := (<-eb.CoreToUI()).(TransferCompletedEvent)
	assert.Equal(t, "/x", done.SavedPath)
}

func TestEventBus_CircuitOpensWhenFull(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) { reported = append(reported, err) })

	for i := 0; i < cap(eb.uiToCore); i++ {
		require.NoError(t, eb.SendToCore(StartTransferEvent{}))
	}
	for i := 0; i < 5; i++ {
		assert.Error(t, eb.SendToCore(StartTransferEvent{}))
	}

	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.Len(t, reported, 5)
	assert.Error(t, eb.SendToUI(TransferCompletedEvent{}), "an open circuit rejects sends")
}

func TestEventBus_SendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(StartTransferEvent{}), ErrBusClosed)
	assert.ErrorIs(t, eb.SendToUI(TransferCompletedEvent{}), ErrBusClosed)
}

func TestEventBus_CallbackSeesBreakerState(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var states []CircuitBreakerState
	eb.SetErrorCallback(func(EventBusError) { states = append(states, eb.GetCircuitBreakerState()) })

	for i := 0; i < cap(eb.uiToCore); i++ {
		require.NoError(t, eb.SendToCore(StartTransferEvent{}))
	}
	for i := 0; i < 5; i++ {
		_ = eb.SendToCore(StartTransferEvent{})
	}

	require.Len(t, states, 5)
	assert.Equal(t, CircuitClosed, states[3])
	assert.Equal(t, CircuitOpen, states[4], "the failure that trips the breaker is reported as open")
}
