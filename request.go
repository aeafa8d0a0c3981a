package racp

// OperationContent bundles the operator and operand of a record
// operation, so that callers pick the record selection once and reuse
// it across report, delete, and count requests.
type OperationContent struct {
	Operator Operator
	Operand  Operand
}

// AllRecords selects every stored record.
func AllRecords() OperationContent {
	return OperationContent{Operator: OperatorAllRecords}
}

// FirstRecord selects the oldest stored record.
func FirstRecord() OperationContent {
	return OperationContent{Operator: OperatorFirstRecord}
}

// LastRecord selects the most recent stored record.
func LastRecord() OperationContent {
	return OperationContent{Operator: OperatorLastRecord}
}

// LessThanOrEqualTo selects records at or below the bound.
func LessThanOrEqualTo(f FilterCriteria) OperationContent {
	return OperationContent{Operator: OperatorLessThanOrEqual, Operand: f}
}

// GreaterThanOrEqual selects records at or above the bound.
func GreaterThanOrEqual(f FilterCriteria) OperationContent {
	return OperationContent{Operator: OperatorGreaterThanOrEqual, Operand: f}
}

// WithinRange selects records inside the inclusive range.
func WithinRange(f RangeFilterCriteria) OperationContent {
	return OperationContent{Operator: OperatorWithinRange, Operand: f}
}

// ReportStoredRecords builds a request asking the peripheral to
// notify the selected records on their measurement characteristics.
func ReportStoredRecords(content OperationContent) Message {
	return Message{OpCode: OpReportStoredRecords, Operator: content.Operator, Operand: content.Operand}
}

// DeleteStoredRecords builds a request deleting the selected records.
func DeleteStoredRecords(content OperationContent) Message {
	return Message{OpCode: OpDeleteStoredRecords, Operator: content.Operator, Operand: content.Operand}
}

// ReportNumberOfStoredRecords builds a request counting the selected
// records.
func ReportNumberOfStoredRecords(content OperationContent) Message {
	return Message{OpCode: OpReportNumberOfStoredRecords, Operator: content.Operator, Operand: content.Operand}
}

// AbortOperation builds a request cancelling the operation currently
// executing on the peripheral. It takes no content: the operator is
// fixed to null and there is no operand.
func AbortOperation() Message {
	return Message{OpCode: OpAbortOperation, Operator: OperatorNull}
}
