package racp

import "fmt"

// This file includes constants from the Record Access Control Point
// definition shared by the Bluetooth health-device service specs
// (Glucose, Blood Pressure, Weight Scale, and vendor extensions).

// An OpCode identifies a record access operation. The value space is
// open: codes at or above 0x10 are vendor-specific, and unknown codes
// round-trip through Message unchanged.
type OpCode uint8

const (
	OpReserved                      OpCode = 0x00
	OpReportStoredRecords           OpCode = 0x01
	OpDeleteStoredRecords           OpCode = 0x02
	OpAbortOperation                OpCode = 0x03
	OpReportNumberOfStoredRecords   OpCode = 0x04
	OpNumberOfStoredRecordsResponse OpCode = 0x05
	OpResponseCode                  OpCode = 0x06
	OpCombinedReport                OpCode = 0x07
	OpCombinedReportResponse        OpCode = 0x08
)

var opCodeNames = map[OpCode]string{
	OpReserved:                      "reserved",
	OpReportStoredRecords:           "reportStoredRecords",
	OpDeleteStoredRecords:           "deleteStoredRecords",
	OpAbortOperation:                "abortOperation",
	OpReportNumberOfStoredRecords:   "reportNumberOfStoredRecords",
	OpNumberOfStoredRecordsResponse: "numberOfStoredRecordsResponse",
	OpResponseCode:                  "responseCode",
	OpCombinedReport:                "combinedReport",
	OpCombinedReportResponse:        "combinedReportResponse",
}

func (c OpCode) String() string {
	if s, ok := opCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("opCode(0x%02X)", uint8(c))
}

// An Operator selects which stored records an operation applies to.
type Operator uint8

const (
	OperatorNull               Operator = 0x00
	OperatorAllRecords         Operator = 0x01
	OperatorLessThanOrEqual    Operator = 0x02
	OperatorGreaterThanOrEqual Operator = 0x03
	OperatorWithinRange        Operator = 0x04
	OperatorFirstRecord        Operator = 0x05
	OperatorLastRecord         Operator = 0x06
)

var operatorNames = map[Operator]string{
	OperatorNull:               "null",
	OperatorAllRecords:         "allRecords",
	OperatorLessThanOrEqual:    "lessThanOrEqualTo",
	OperatorGreaterThanOrEqual: "greaterThanOrEqual",
	OperatorWithinRange:        "withinInclusiveRangeOf",
	OperatorFirstRecord:        "firstRecord",
	OperatorLastRecord:         "lastRecord",
}

func (o Operator) String() string {
	if s, ok := operatorNames[o]; ok {
		return s
	}
	return fmt.Sprintf("operator(0x%02X)", uint8(o))
}

// A ResponseCode reports the outcome of a completed operation. It
// doubles as an error value: every code other than ResponseSuccess is
// the domain failure of the operation that produced it, as opposed to
// a protocol-shape failure, which is reported as *FormatError.
type ResponseCode uint8

const (
	ResponseReserved              ResponseCode = 0x00
	ResponseSuccess               ResponseCode = 0x01
	ResponseOpCodeNotSupported    ResponseCode = 0x02
	ResponseInvalidOperator       ResponseCode = 0x03
	ResponseOperatorNotSupported  ResponseCode = 0x04
	ResponseInvalidOperand        ResponseCode = 0x05
	ResponseNoRecordsFound        ResponseCode = 0x06
	ResponseAbortUnsuccessful     ResponseCode = 0x07
	ResponseProcedureNotCompleted ResponseCode = 0x08
	ResponseOperandNotSupported   ResponseCode = 0x09
	ResponseServerBusy            ResponseCode = 0x0A
)

var responseCodeNames = map[ResponseCode]string{
	ResponseReserved:              "reserved",
	ResponseSuccess:               "success",
	ResponseOpCodeNotSupported:    "opCodeNotSupported",
	ResponseInvalidOperator:       "invalidOperator",
	ResponseOperatorNotSupported:  "operatorNotSupported",
	ResponseInvalidOperand:        "invalidOperand",
	ResponseNoRecordsFound:        "noRecordsFound",
	ResponseAbortUnsuccessful:     "abortUnsuccessful",
	ResponseProcedureNotCompleted: "procedureNotCompleted",
	ResponseOperandNotSupported:   "operandNotSupported",
	ResponseServerBusy:            "serverBusy",
}

func (c ResponseCode) String() string {
	if s, ok := responseCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("responseCode(0x%02X)", uint8(c))
}

// Error implements the error interface so that a non-success code can
// be returned directly as an operation's failure.
func (c ResponseCode) Error() string {
	return "racp: " + c.String()
}

// A FilterType tags the scalar carried by a filter operand.
type FilterType uint8

const (
	FilterReserved       FilterType = 0x00
	FilterSequenceNumber FilterType = 0x01
	FilterUserFacingTime FilterType = 0x02
)

var filterTypeNames = map[FilterType]string{
	FilterReserved:       "reserved",
	FilterSequenceNumber: "sequenceNumber",
	FilterUserFacingTime: "userFacingTime",
}

func (t FilterType) String() string {
	if s, ok := filterTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("filterType(0x%02X)", uint8(t))
}

// recordOperation reports whether c is one of the three operations
// that select stored records with an operator and optional filter.
func recordOperation(c OpCode) bool {
	return c == OpReportStoredRecords || c == OpDeleteStoredRecords || c == OpReportNumberOfStoredRecords
}
