// Package health layers the standard Bluetooth health-device services
// on the racp protocol core: assigned numbers for the Glucose, Blood
// Pressure, and Weight Scale services, and a typed record-access
// client covering the operations those services share.
//
// Measurement values themselves arrive on separate measurement
// characteristics and are decoded by service-specific codecs outside
// this package; RecordAccess only manages which stored records the
// peripheral sends, deletes, or counts.
package health

import (
	"context"

	racp "github.com/StanfordSpezi/SpeziBluetooth-sub002"
)

// RecordAccess is a typed client for the Record Access Control Point
// characteristic of a health service. It inherits the engine's serial
// discipline: one operation at a time per characteristic.
type RecordAccess struct {
	cp *racp.ControlPoint
}

// NewRecordAccess wraps an engine bound to a RACP characteristic.
func NewRecordAccess(cp *racp.ControlPoint) *RecordAccess {
	return &RecordAccess{cp: cp}
}

// Bind registers a RACP characteristic on svc writing through t and
// returns its typed client.
func Bind(svc *racp.Service, t racp.Transport, opts ...racp.ControlPointOption) *RecordAccess {
	char := svc.AddControlPoint(RecordAccessControlPointUUID, t, opts...)
	return NewRecordAccess(char.ControlPoint())
}

// ControlPoint exposes the underlying engine, for operations beyond
// the standard set.
func (ra *RecordAccess) ControlPoint() *racp.ControlPoint {
	return ra.cp
}

// ReportAllRecords asks the peripheral to send every stored record on
// its measurement characteristics, oldest first.
func (ra *RecordAccess) ReportAllRecords(ctx context.Context) error {
	return ra.cp.ReportRecords(ctx, racp.AllRecords())
}

// ReportFirstRecord asks for the oldest stored record.
func (ra *RecordAccess) ReportFirstRecord(ctx context.Context) error {
	return ra.cp.ReportRecords(ctx, racp.FirstRecord())
}

// ReportLastRecord asks for the most recent stored record.
func (ra *RecordAccess) ReportLastRecord(ctx context.Context) error {
	return ra.cp.ReportRecords(ctx, racp.LastRecord())
}

// ReportRecordsFrom asks for every record with a sequence number at
// or above seq. This is the usual incremental-sync request: pass the
// highest sequence number already synced, plus one.
func (ra *RecordAccess) ReportRecordsFrom(ctx context.Context, seq uint16) error {
	return ra.cp.ReportRecords(ctx, racp.GreaterThanOrEqual(racp.FilterBySequenceNumber(seq)))
}

// ReportRecordsInRange asks for records with sequence numbers in the
// inclusive range [min, max].
func (ra *RecordAccess) ReportRecordsInRange(ctx context.Context, min, max uint16) error {
	return ra.cp.ReportRecords(ctx, racp.WithinRange(racp.SequenceNumberRange(min, max)))
}

// DeleteAllRecords deletes every stored record.
func (ra *RecordAccess) DeleteAllRecords(ctx context.Context) error {
	return ra.cp.DeleteRecords(ctx, racp.AllRecords())
}

// DeleteRecordsThrough deletes records with sequence numbers at or
// below seq.
func (ra *RecordAccess) DeleteRecordsThrough(ctx context.Context, seq uint16) error {
	return ra.cp.DeleteRecords(ctx, racp.LessThanOrEqualTo(racp.FilterBySequenceNumber(seq)))
}

// DeleteRecordsInRange deletes records with sequence numbers in the
// inclusive range [min, max].
func (ra *RecordAccess) DeleteRecordsInRange(ctx context.Context, min, max uint16) error {
	return ra.cp.DeleteRecords(ctx, racp.WithinRange(racp.SequenceNumberRange(min, max)))
}

// RecordCount returns the total number of stored records.
func (ra *RecordAccess) RecordCount(ctx context.Context) (uint16, error) {
	return ra.cp.RecordCount(ctx, racp.AllRecords())
}

// RecordCountFrom returns the number of records with sequence numbers
// at or above seq.
func (ra *RecordAccess) RecordCountFrom(ctx context.Context, seq uint16) (uint16, error) {
	return ra.cp.RecordCount(ctx, racp.GreaterThanOrEqual(racp.FilterBySequenceNumber(seq)))
}

// Abort cancels the operation currently executing on the peripheral
// and resolves any exchange pending locally with
// racp.ErrExchangeCancelled.
func (ra *RecordAccess) Abort(ctx context.Context) error {
	return ra.cp.Abort(ctx)
}
