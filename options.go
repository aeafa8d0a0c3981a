package racp

import "github.com/sirupsen/logrus"

// A ControlPointOption configures a ControlPoint at construction.
type ControlPointOption func(*ControlPoint)

// WithCodec is an optional vendor operand codec. If unset, the
// control point decodes the generic operand variants shared by the
// standard health services.
func WithCodec(c OperandCodec) ControlPointOption {
	return func(cp *ControlPoint) { cp.codec = c }
}

// WithLogger is an optional logger for discarded notifications.
// If unset, the logrus standard logger is used.
func WithLogger(l logrus.FieldLogger) ControlPointOption {
	return func(cp *ControlPoint) { cp.log = l }
}
