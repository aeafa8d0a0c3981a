package racp

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records every write and can respond to it
// synchronously, the way a loopback peripheral would.
type fakeTransport struct {
	mu      sync.Mutex
	writes  [][]byte
	err     error        // returned by Write when set
	respond func([]byte) // invoked after a successful write
}

func (f *fakeTransport) Write(_ context.Context, p []byte) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	f.writes = append(f.writes, append([]byte(nil), p...))
	f.mu.Unlock()
	if f.respond != nil {
		f.respond(p)
	}
	return nil
}

func (f *fakeTransport) written() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.writes...)
}

func respondWith(cp **ControlPoint, resp []byte) func([]byte) {
	return func([]byte) { (*cp).HandleNotification(resp) }
}

func TestSendGeneralResponseSuccess(t *testing.T) {
	var cp *ControlPoint
	ft := &fakeTransport{respond: respondWith(&cp, []byte{0x06, 0x00, 0x01, 0x01})}
	cp = NewControlPoint(ft)

	err := cp.ReportRecords(context.Background(), AllRecords())
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0x01, 0x01}}, ft.written())
}

func TestRecordCount(t *testing.T) {
	var cp *ControlPoint
	ft := &fakeTransport{respond: respondWith(&cp, []byte{0x05, 0x00, 0x2A, 0x00})}
	cp = NewControlPoint(ft)

	n, err := cp.RecordCount(context.Background(), AllRecords())
	require.NoError(t, err)
	assert.Equal(t, uint16(42), n)
	require.Equal(t, [][]byte{{0x04, 0x01}}, ft.written())
}

func TestSendDomainError(t *testing.T) {
	var cp *ControlPoint
	ft := &fakeTransport{respond: respondWith(&cp, []byte{0x06, 0x00, 0x02, 0x06})}
	cp = NewControlPoint(ft)

	err := cp.DeleteRecords(context.Background(), LessThanOrEqualTo(FilterBySequenceNumber(100)))
	var rc ResponseCode
	require.ErrorAs(t, err, &rc)
	assert.Equal(t, ResponseNoRecordsFound, rc)
	require.Equal(t, [][]byte{{0x02, 0x02, 0x01, 0x64, 0x00}}, ft.written())
}

func TestSendFormatErrors(t *testing.T) {
	cases := []struct {
		name   string
		resp   []byte
		reason FormatReason
	}{
		{name: "unexpected opcode", resp: []byte{0x05, 0x00, 0x2A, 0x00}, reason: ReasonUnexpectedOpcode},
		{name: "unexpected operator", resp: []byte{0x06, 0x01, 0x01, 0x01}, reason: ReasonUnexpectedOperator},
		{name: "miscorrelated ack", resp: []byte{0x06, 0x00, 0x02, 0x01}, reason: ReasonInvalidResponse},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var cp *ControlPoint
			ft := &fakeTransport{respond: respondWith(&cp, tt.resp)}
			cp = NewControlPoint(ft)

			err := cp.ReportRecords(context.Background(), AllRecords())
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.reason, fe.Reason)
		})
	}
}

func TestValueExchange(t *testing.T) {
	t.Run("domain error branch", func(t *testing.T) {
		var cp *ControlPoint
		ft := &fakeTransport{respond: respondWith(&cp, []byte{0x06, 0x00, 0x04, 0x0A})}
		cp = NewControlPoint(ft)

		_, err := cp.RecordCount(context.Background(), AllRecords())
		var rc ResponseCode
		require.ErrorAs(t, err, &rc)
		assert.Equal(t, ResponseServerBusy, rc)
	})

	t.Run("success ack instead of value", func(t *testing.T) {
		// A peripheral acking a count request with success instead of
		// the count is a protocol anomaly, not a result.
		var cp *ControlPoint
		ft := &fakeTransport{respond: respondWith(&cp, []byte{0x06, 0x00, 0x04, 0x01})}
		cp = NewControlPoint(ft)

		_, err := cp.RecordCount(context.Background(), AllRecords())
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, ReasonInvalidResponse, fe.Reason)
	})

	t.Run("unexpected opcode", func(t *testing.T) {
		var cp *ControlPoint
		ft := &fakeTransport{respond: respondWith(&cp, []byte{0x42, 0x00})}
		cp = NewControlPoint(ft)

		_, err := cp.RecordCount(context.Background(), AllRecords())
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, ReasonUnexpectedOpcode, fe.Reason)
	})

	t.Run("wrong operand variant", func(t *testing.T) {
		// A combined report exchange whose response carries no
		// operand; extraction reports the missing variant.
		var cp *ControlPoint
		ft := &fakeTransport{respond: respondWith(&cp, []byte{0x08, 0x00})}
		cp = NewControlPoint(ft)

		req := Message{OpCode: OpCombinedReport, Operator: OperatorAllRecords}
		_, err := SendExpecting(context.Background(), cp, req, OpCombinedReportResponse, func(m Message) (uint16, error) {
			n, ok := m.Operand.(NumberOfRecords)
			if !ok {
				return 0, formatErr(ReasonUnexpectedOperand, m)
			}
			return uint16(n), nil
		})
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, ReasonUnexpectedOperand, fe.Reason)
	})
}

func TestSingleOutstanding(t *testing.T) {
	ft := &fakeTransport{} // never responds
	cp := NewControlPoint(ft)

	first := make(chan error, 1)
	go func() {
		first <- cp.ReportRecords(context.Background(), AllRecords())
	}()

	// Wait for the first request to hit the wire.
	require.Eventually(t, func() bool { return len(ft.written()) == 1 }, time.Second, time.Millisecond)

	err := cp.DeleteRecords(context.Background(), AllRecords())
	require.ErrorIs(t, err, ErrOperationInProgress)
	assert.Len(t, ft.written(), 1, "rejected request must not be written")

	cp.Cancel()
	require.ErrorIs(t, <-first, ErrExchangeCancelled)
}

func TestCancelIdempotent(t *testing.T) {
	ft := &fakeTransport{}
	cp := NewControlPoint(ft)

	// Cancelling with nothing pending is a no-op.
	cp.Cancel()
	cp.HandleDisconnect()

	done := make(chan error, 1)
	go func() {
		done <- cp.ReportRecords(context.Background(), AllRecords())
	}()
	require.Eventually(t, func() bool { return len(ft.written()) == 1 }, time.Second, time.Millisecond)

	cp.Cancel()
	cp.Cancel() // second cancel must not panic or resolve twice
	require.ErrorIs(t, <-done, ErrExchangeCancelled)

	// The slot is free again.
	ft.respond = func([]byte) { cp.HandleNotification([]byte{0x06, 0x00, 0x01, 0x01}) }
	require.NoError(t, cp.ReportRecords(context.Background(), AllRecords()))
}

func TestHandleDisconnect(t *testing.T) {
	ft := &fakeTransport{}
	cp := NewControlPoint(ft)

	done := make(chan error, 1)
	go func() {
		done <- cp.ReportRecords(context.Background(), AllRecords())
	}()
	require.Eventually(t, func() bool { return len(ft.written()) == 1 }, time.Second, time.Millisecond)

	cp.HandleDisconnect()
	require.ErrorIs(t, <-done, ErrDisconnected)
}

func TestContextCancellation(t *testing.T) {
	ft := &fakeTransport{}
	cp := NewControlPoint(ft)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cp.ReportRecords(ctx, AllRecords())
	}()
	require.Eventually(t, func() bool { return len(ft.written()) == 1 }, time.Second, time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	// A late response to the cancelled exchange is discarded, and the
	// engine accepts new work.
	cp.HandleNotification([]byte{0x06, 0x00, 0x01, 0x01})
	ft.respond = func([]byte) { cp.HandleNotification([]byte{0x06, 0x00, 0x01, 0x01}) }
	require.NoError(t, cp.ReportRecords(context.Background(), AllRecords()))
}

func TestWriteFailure(t *testing.T) {
	wantErr := errors.New("link error")
	cp := NewControlPoint(&fakeTransport{err: wantErr})

	err := cp.ReportRecords(context.Background(), AllRecords())
	require.ErrorIs(t, err, wantErr)

	// The failed write released the slot.
	ft := &fakeTransport{}
	cp = NewControlPoint(ft)
	ft.err = wantErr
	require.ErrorIs(t, cp.ReportRecords(context.Background(), AllRecords()), wantErr)
	ft.err = nil
	ft.respond = func([]byte) { cp.HandleNotification([]byte{0x06, 0x00, 0x01, 0x01}) }
	require.NoError(t, cp.ReportRecords(context.Background(), AllRecords()))
}

func TestStrayNotifications(t *testing.T) {
	ft := &fakeTransport{}
	cp := NewControlPoint(ft)

	// No pending exchange: both undecodable and well-formed payloads
	// are dropped without effect.
	cp.HandleNotification([]byte{0x06})
	cp.HandleNotification([]byte{0x06, 0x00, 0x01, 0x01})

	ft.respond = func([]byte) { cp.HandleNotification([]byte{0x06, 0x00, 0x01, 0x01}) }
	require.NoError(t, cp.ReportRecords(context.Background(), AllRecords()))
}

func TestAbort(t *testing.T) {
	var cp *ControlPoint
	ft := &fakeTransport{}
	cp = NewControlPoint(ft)

	pending := make(chan error, 1)
	go func() {
		pending <- cp.ReportRecords(context.Background(), AllRecords())
	}()
	require.Eventually(t, func() bool { return len(ft.written()) == 1 }, time.Second, time.Millisecond)

	// Abort resolves the pending report, then runs its own exchange.
	ft.respond = func(p []byte) {
		if p[0] == byte(OpAbortOperation) {
			cp.HandleNotification([]byte{0x06, 0x00, 0x03, 0x01})
		}
	}
	require.NoError(t, cp.Abort(context.Background()))
	require.ErrorIs(t, <-pending, ErrExchangeCancelled)

	writes := ft.written()
	require.Len(t, writes, 2)
	assert.Equal(t, []byte{0x03, 0x00}, writes[1])
}
