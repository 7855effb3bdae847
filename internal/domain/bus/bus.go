package bus

import (
	"context"
	"fmt"
	"reflect"
)

// Bus routes command and query messages to exactly one registered handler
// per message type. Commands and queries live in separate tables so the
// write/read boundary stays enforceable: a query can never reach a handler
// that mutates state.
type Bus struct {
	commands map[reflect.Type]handlerFunc
	queries  map[reflect.Type]handlerFunc
}

type handlerFunc func(ctx context.Context, message any) (any, error)

func New() *Bus {
	return &Bus{
		commands: make(map[reflect.Type]handlerFunc),
		queries:  make(map[reflect.Type]handlerFunc),
	}
}

// RegisterCommand binds a message type to its single command handler.
// Registering a second handler for the same type is a wiring bug.
func RegisterCommand[M any, R any](b *Bus, handle func(ctx context.Context, message M) (R, error)) error {
	return register(b.commands, handle)
}

// RegisterQuery binds a message type to its single query handler.
func RegisterQuery[M any, R any](b *Bus, handle func(ctx context.Context, message M) (R, error)) error {
	return register(b.queries, handle)
}

func register[M any, R any](table map[reflect.Type]handlerFunc, handle func(ctx context.Context, message M) (R, error)) error {
	messageType := reflect.TypeOf(*new(M))
	if _, exists := table[messageType]; exists {
		return fmt.Errorf("handler already registered for %s", messageType)
	}
	table[messageType] = func(ctx context.Context, message any) (any, error) {
		return handle(ctx, message.(M))
	}
	return nil
}

// DispatchCommand routes a write message to its handler.
func (b *Bus) DispatchCommand(ctx context.Context, message any) (any, error) {
	return dispatch(ctx, b.commands, message)
}

// DispatchQuery routes a read message to its handler.
func (b *Bus) DispatchQuery(ctx context.Context, message any) (any, error) {
	return dispatch(ctx, b.queries, message)
}

func dispatch(ctx context.Context, table map[reflect.Type]handlerFunc, message any) (any, error) {
	handle, ok := table[reflect.TypeOf(message)]
	if !ok {
		return nil, fmt.Errorf("no handler registered for %T", message)
	}
	return handle(ctx, message)
}
