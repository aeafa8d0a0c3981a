package racp

import (
	"encoding/binary"
	"fmt"
)

// An Operand is the variable-length payload of a control-point
// message. Its on-wire shape is determined by the (OpCode, Operator)
// pair that precedes it, so operands are only ever decoded through an
// OperandCodec invoked by Message.Unmarshal, never on their own.
//
// Vendor services with their own operand layouts implement Operand
// and supply a matching OperandCodec.
type Operand interface {
	// AppendBinary appends the operand's wire encoding to dst.
	AppendBinary(dst []byte) []byte
}

// An OperandCodec decodes operand bytes in the context of the opcode
// and operator that were just read. Decode returns the operand (nil
// when the combination legitimately carries none), the number of
// bytes consumed, and an error for combinations whose required shape
// is not present. Trailing bytes are left for the caller to flag.
type OperandCodec interface {
	Decode(p []byte, c OpCode, o Operator) (od Operand, n int, err error)
}

// FilterCriteria is a single scalar bound, used with the
// lessThanOrEqualTo and greaterThanOrEqual operators. Value holds the
// raw little-endian 16-bit scalar; its interpretation (unsigned
// sequence number, signed user-facing time) follows Type.
type FilterCriteria struct {
	Type  FilterType
	Value uint16
}

// FilterBySequenceNumber returns a sequence number bound.
func FilterBySequenceNumber(n uint16) FilterCriteria {
	return FilterCriteria{Type: FilterSequenceNumber, Value: n}
}

// FilterByUserFacingTime returns a user-facing time bound, in the
// signed minute offset the health services use.
func FilterByUserFacingTime(t int16) FilterCriteria {
	return FilterCriteria{Type: FilterUserFacingTime, Value: uint16(t)}
}

// SequenceNumber interprets the bound as an unsigned sequence number.
func (f FilterCriteria) SequenceNumber() uint16 { return f.Value }

// UserFacingTime interprets the bound as a signed time offset.
func (f FilterCriteria) UserFacingTime() int16 { return int16(f.Value) }

func (f FilterCriteria) AppendBinary(dst []byte) []byte {
	dst = append(dst, byte(f.Type))
	return binary.LittleEndian.AppendUint16(dst, f.Value)
}

// RangeFilterCriteria is an inclusive [Min, Max] bound of a single
// filter type, used with the withinInclusiveRangeOf operator.
type RangeFilterCriteria struct {
	Type FilterType
	Min  uint16
	Max  uint16
}

// SequenceNumberRange returns an inclusive sequence number range.
func SequenceNumberRange(min, max uint16) RangeFilterCriteria {
	return RangeFilterCriteria{Type: FilterSequenceNumber, Min: min, Max: max}
}

// UserFacingTimeRange returns an inclusive user-facing time range.
func UserFacingTimeRange(min, max int16) RangeFilterCriteria {
	return RangeFilterCriteria{Type: FilterUserFacingTime, Min: uint16(min), Max: uint16(max)}
}

func (f RangeFilterCriteria) AppendBinary(dst []byte) []byte {
	dst = append(dst, byte(f.Type))
	dst = binary.LittleEndian.AppendUint16(dst, f.Min)
	return binary.LittleEndian.AppendUint16(dst, f.Max)
}

// GeneralResponse is the ack/error operand of a responseCode message.
// RequestOpCode names the operation being answered; Response carries
// its outcome.
type GeneralResponse struct {
	RequestOpCode OpCode
	Response      ResponseCode
}

func (g GeneralResponse) AppendBinary(dst []byte) []byte {
	return append(dst, byte(g.RequestOpCode), byte(g.Response))
}

// String keeps %+v from rendering Response through ResponseCode.Error,
// which would prepend the "racp: " error prefix to display output.
func (g GeneralResponse) String() string {
	return fmt.Sprintf("{RequestOpCode:%v Response:%v}", g.RequestOpCode, g.Response.String())
}

// NumberOfRecords is the operand of a numberOfStoredRecordsResponse.
type NumberOfRecords uint16

func (n NumberOfRecords) AppendBinary(dst []byte) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(n))
}

// GenericCodec decodes the operand variants shared by the standard
// health services. It is the codec Message.Unmarshal falls back to
// when none is supplied.
type GenericCodec struct{}

func (GenericCodec) Decode(p []byte, c OpCode, o Operator) (Operand, int, error) {
	switch {
	case c == OpResponseCode:
		// Operator must be null here, but that is the transaction
		// engine's check; the shape does not depend on it.
		if len(p) < 2 {
			return nil, 0, fmt.Errorf("general response needs 2 bytes, have %d", len(p))
		}
		return GeneralResponse{
			RequestOpCode: OpCode(p[0]),
			Response:      ResponseCode(p[1]),
		}, 2, nil

	case c == OpNumberOfStoredRecordsResponse:
		if len(p) < 2 {
			return nil, 0, fmt.Errorf("record count needs 2 bytes, have %d", len(p))
		}
		return NumberOfRecords(binary.LittleEndian.Uint16(p)), 2, nil

	case recordOperation(c) && (o == OperatorLessThanOrEqual || o == OperatorGreaterThanOrEqual):
		if len(p) < 3 {
			return nil, 0, fmt.Errorf("filter criteria needs 3 bytes, have %d", len(p))
		}
		return FilterCriteria{
			Type:  FilterType(p[0]),
			Value: binary.LittleEndian.Uint16(p[1:]),
		}, 3, nil

	case recordOperation(c) && o == OperatorWithinRange:
		if len(p) < 5 {
			return nil, 0, fmt.Errorf("range filter criteria needs 5 bytes, have %d", len(p))
		}
		return RangeFilterCriteria{
			Type: FilterType(p[0]),
			Min:  binary.LittleEndian.Uint16(p[1:]),
			Max:  binary.LittleEndian.Uint16(p[3:]),
		}, 5, nil
	}

	// Every remaining combination carries no operand. Bytes that are
	// present anyway become trailing garbage for the caller to flag.
	return nil, 0, nil
}
