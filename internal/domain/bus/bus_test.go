package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ Name string }

type pong struct{ Greeting string }

func TestBus_DispatchCommand(t *testing.T) {
	b := New()
	err := RegisterCommand(b, func(_ context.Context, msg ping) (pong, error) {
		return pong{Greeting: "hello " + msg.Name}, nil
	})
	require.NoError(t, err)

	result, err := b.DispatchCommand(context.Background(), ping{Name: "world"})
	require.NoError(t, err)
	assert.Equal(t, pong{Greeting: "hello world"}, result)
}

func TestBus_DuplicateRegistration(t *testing.T) {
	b := New()
	handle := func(_ context.Context, msg ping) (pong, error) { return pong{}, nil }

	require.NoError(t, RegisterCommand(b, handle))
	assert.Error(t, RegisterCommand(b, handle))

	// The same message type may still back a query handler.
	assert.NoError(t, RegisterQuery(b, handle))
}

func TestBus_UnknownMessage(t *testing.T) {
	b := New()

	_, err := b.DispatchCommand(context.Background(), ping{})
	assert.Error(t, err)
}

func TestBus_CommandAndQueryTablesAreSeparate(t *testing.T) {
	b := New()
	require.NoError(t, RegisterQuery(b, func(_ context.Context, msg ping) (pong, error) {
		return pong{}, nil
	}))

	_, err := b.DispatchCommand(context.Background(), ping{})
	assert.Error(t, err)

	_, err = b.DispatchQuery(context.Background(), ping{})
	assert.NoError(t, err)
}
