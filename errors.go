package racp

import (
	"errors"
	"fmt"
)

var (
	// ErrOperationInProgress is returned by Send and its variants
	// when the control point already has an exchange awaiting its
	// response. Nothing is written in that case.
	ErrOperationInProgress = errors.New("racp: operation already in progress")

	// ErrExchangeCancelled resolves a pending exchange that was
	// cancelled explicitly or superseded by an abort.
	ErrExchangeCancelled = errors.New("racp: exchange cancelled")

	// ErrDisconnected resolves a pending exchange when the transport
	// reports the link is gone.
	ErrDisconnected = errors.New("racp: peripheral disconnected")
)

// A FormatReason classifies a protocol-shape failure.
type FormatReason int

const (
	// ReasonUnexpectedOpcode: the response opcode is neither the
	// expected value opcode nor responseCode.
	ReasonUnexpectedOpcode FormatReason = iota
	// ReasonUnexpectedOperator: the response operator is not null.
	ReasonUnexpectedOperator
	// ReasonUnexpectedOperand: the response operand is missing or of
	// the wrong variant.
	ReasonUnexpectedOperand
	// ReasonInvalidResponse: the response is well formed but does not
	// correlate with the request, e.g. a stale general response for a
	// different opcode, or a success ack where a value was required.
	ReasonInvalidResponse
)

func (r FormatReason) String() string {
	switch r {
	case ReasonUnexpectedOpcode:
		return "unexpected opcode"
	case ReasonUnexpectedOperator:
		return "unexpected operator"
	case ReasonUnexpectedOperand:
		return "unexpected operand"
	case ReasonInvalidResponse:
		return "invalid response"
	}
	return fmt.Sprintf("formatReason(%d)", int(r))
}

// A FormatError reports a response that violates the protocol shape.
// It carries the received wire content so callers can log what the
// peripheral actually sent. Format errors are never retried by the
// engine.
type FormatError struct {
	Reason   FormatReason
	OpCode   OpCode
	Operator Operator
	Operand  Operand // nil if the response carried none
}

func (e *FormatError) Error() string {
	if e.Operand != nil {
		return fmt.Sprintf("racp: %v: received %v/%v %+v", e.Reason, e.OpCode, e.Operator, e.Operand)
	}
	return fmt.Sprintf("racp: %v: received %v/%v", e.Reason, e.OpCode, e.Operator)
}

func formatErr(reason FormatReason, m Message) *FormatError {
	return &FormatError{Reason: reason, OpCode: m.OpCode, Operator: m.Operator, Operand: m.Operand}
}
