package racp

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// A ControlPoint drives request/response exchanges against one
// control-point characteristic. The underlying protocol is strictly
// serial: the peripheral processes one record access operation fully
// before accepting the next, so the engine admits at most one
// outstanding exchange and rejects further sends with
// ErrOperationInProgress before any bytes hit the transport.
//
// Requests are written through the Transport; responses arrive
// asynchronously through HandleNotification, on whatever goroutine
// the BLE layer delivers notifications from. The pending-exchange
// slot is the only shared mutable state and is guarded by a mutex.
type ControlPoint struct {
	t     Transport
	codec OperandCodec
	log   logrus.FieldLogger

	mu      sync.Mutex
	pending chan outcome // nil when idle; buffered, resolved at most once
}

type outcome struct {
	msg Message
	err error // cancellation or disconnect; msg is unset if non-nil
}

// NewControlPoint returns a control point writing through t. The
// operand codec defaults to GenericCodec and the logger to the logrus
// standard logger; see WithCodec and WithLogger.
func NewControlPoint(t Transport, opts ...ControlPointOption) *ControlPoint {
	cp := &ControlPoint{
		t:     t,
		codec: GenericCodec{},
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// begin claims the pending-exchange slot, or reports that another
// exchange holds it.
func (cp *ControlPoint) begin() (chan outcome, error) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if cp.pending != nil {
		return nil, ErrOperationInProgress
	}
	ch := make(chan outcome, 1)
	cp.pending = ch
	return ch, nil
}

// release clears the slot if ch still owns it. A concurrently
// delivered outcome stays buffered in ch and is dropped with it.
func (cp *ControlPoint) release(ch chan outcome) {
	cp.mu.Lock()
	if cp.pending == ch {
		cp.pending = nil
	}
	cp.mu.Unlock()
}

// take removes and returns the current pending slot, if any.
func (cp *ControlPoint) take() chan outcome {
	cp.mu.Lock()
	ch := cp.pending
	cp.pending = nil
	cp.mu.Unlock()
	return ch
}

// exchange writes req and waits for the one response notification
// correlated with it. Validation of the response shape is the
// caller's job; exchange only enforces the serial discipline.
func (cp *ControlPoint) exchange(ctx context.Context, req Message) (Message, error) {
	ch, err := cp.begin()
	if err != nil {
		return Message{}, err
	}
	if err := cp.t.Write(ctx, req.Marshal()); err != nil {
		cp.release(ch)
		return Message{}, err
	}
	select {
	case out := <-ch:
		return out.msg, out.err
	case <-ctx.Done():
		cp.release(ch)
		return Message{}, ctx.Err()
	}
}

// HandleNotification decodes a raw control-point payload and resolves
// the pending exchange with it. Payloads that do not decode, or that
// arrive while no exchange is pending, are logged and dropped; they
// never fail a future exchange.
func (cp *ControlPoint) HandleNotification(p []byte) {
	var m Message
	if err := m.Unmarshal(p, cp.codec); err != nil {
		cp.log.WithError(err).Debugf("racp: discarding undecodable notification % X", p)
		return
	}
	ch := cp.take()
	if ch == nil {
		cp.log.Debugf("racp: discarding response %v with no exchange pending", m)
		return
	}
	ch <- outcome{msg: m}
}

// Cancel resolves the pending exchange, if any, with
// ErrExchangeCancelled. Cancelling when nothing is pending, or twice,
// has no effect.
func (cp *ControlPoint) Cancel() {
	cp.resolveErr(ErrExchangeCancelled)
}

// HandleDisconnect resolves the pending exchange, if any, with
// ErrDisconnected. The BLE layer calls this when the link drops.
func (cp *ControlPoint) HandleDisconnect() {
	cp.resolveErr(ErrDisconnected)
}

func (cp *ControlPoint) resolveErr(err error) {
	if ch := cp.take(); ch != nil {
		ch <- outcome{err: err}
	}
}

// Send performs a general-response exchange: it writes req and
// succeeds only on a success ack correlated with req's opcode. A
// well-formed negative ack is returned as its ResponseCode; a
// malformed or miscorrelated response as *FormatError.
func (cp *ControlPoint) Send(ctx context.Context, req Message) error {
	resp, err := cp.exchange(ctx, req)
	if err != nil {
		return err
	}
	return validateGeneralResponse(req.OpCode, resp)
}

// validateGeneralResponse runs the ack validation chain against resp
// for a request issued with opcode reqOp.
func validateGeneralResponse(reqOp OpCode, resp Message) error {
	if resp.OpCode != OpResponseCode {
		return formatErr(ReasonUnexpectedOpcode, resp)
	}
	if resp.Operator != OperatorNull {
		return formatErr(ReasonUnexpectedOperator, resp)
	}
	gr, ok := resp.Operand.(GeneralResponse)
	if !ok {
		return formatErr(ReasonUnexpectedOperand, resp)
	}
	if gr.RequestOpCode != reqOp {
		// Stale or misrouted ack, e.g. left over from an aborted
		// exchange.
		return formatErr(ReasonInvalidResponse, resp)
	}
	if gr.Response != ResponseSuccess {
		return gr.Response
	}
	return nil
}

// SendExpecting performs a value-response exchange: the peripheral
// answers either with a message of opcode expect, handed to extract
// for the typed payload, or with a negative general ack. A success
// general ack in place of the value is a protocol anomaly and is
// reported as *FormatError with ReasonInvalidResponse.
func SendExpecting[T any](ctx context.Context, cp *ControlPoint, req Message, expect OpCode, extract func(Message) (T, error)) (T, error) {
	var zero T
	resp, err := cp.exchange(ctx, req)
	if err != nil {
		return zero, err
	}
	switch resp.OpCode {
	case expect:
		if resp.Operator != OperatorNull {
			return zero, formatErr(ReasonUnexpectedOperator, resp)
		}
		return extract(resp)
	case OpResponseCode:
		if err := validateGeneralResponse(req.OpCode, resp); err != nil {
			return zero, err
		}
		// A successful ack where the value response was required.
		return zero, formatErr(ReasonInvalidResponse, resp)
	default:
		return zero, formatErr(ReasonUnexpectedOpcode, resp)
	}
}

// ReportRecords asks the peripheral to notify the selected records
// and waits for the closing ack.
func (cp *ControlPoint) ReportRecords(ctx context.Context, content OperationContent) error {
	return cp.Send(ctx, ReportStoredRecords(content))
}

// DeleteRecords deletes the selected records and waits for the ack.
func (cp *ControlPoint) DeleteRecords(ctx context.Context, content OperationContent) error {
	return cp.Send(ctx, DeleteStoredRecords(content))
}

// RecordCount returns the number of records the selection matches.
func (cp *ControlPoint) RecordCount(ctx context.Context, content OperationContent) (uint16, error) {
	req := ReportNumberOfStoredRecords(content)
	return SendExpecting(ctx, cp, req, OpNumberOfStoredRecordsResponse, func(m Message) (uint16, error) {
		n, ok := m.Operand.(NumberOfRecords)
		if !ok {
			return 0, formatErr(ReasonUnexpectedOperand, m)
		}
		return uint16(n), nil
	})
}

// Abort cancels the operation executing on the peripheral. Any
// exchange pending locally is resolved with ErrExchangeCancelled
// first, freeing the slot for the abort itself; a late response to
// the aborted operation is then discarded by HandleNotification.
func (cp *ControlPoint) Abort(ctx context.Context) error {
	cp.Cancel()
	return cp.Send(ctx, AbortOperation())
}
