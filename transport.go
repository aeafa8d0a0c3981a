package racp

import "context"

// A Transport is the write half of a control-point characteristic,
// provided by the BLE layer. Write must be a write-with-response GATT
// write; a write error fails the exchange without waiting for a
// notification.
//
// The read half is push-based: the BLE layer feeds raw notification
// payloads to ControlPoint.HandleNotification and link loss to
// ControlPoint.HandleDisconnect.
type Transport interface {
	Write(ctx context.Context, p []byte) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, p []byte) error

func (f TransportFunc) Write(ctx context.Context, p []byte) error { return f(ctx, p) }
