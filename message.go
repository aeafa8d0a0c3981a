package racp

import "fmt"

// A Message is a control-point envelope: opcode, operator, and an
// optional operand whose shape the first two fields determine.
//
// Wire layout: [opCode:1][operator:1][operand:0..N], all multi-byte
// scalars little-endian, no padding, no length prefix.
type Message struct {
	OpCode   OpCode
	Operator Operator
	Operand  Operand // nil when the combination carries none
}

// Marshal returns the message's wire encoding.
func (m Message) Marshal() []byte {
	b := make([]byte, 2, 7)
	b[0] = byte(m.OpCode)
	b[1] = byte(m.Operator)
	if m.Operand != nil {
		b = m.Operand.AppendBinary(b)
	}
	return b
}

// Unmarshal parses p into m using codec for the operand portion. A
// nil codec selects GenericCodec. Unmarshal fails if the fixed prefix
// is short, if the operand required by the decoded (opcode, operator)
// pair is malformed, or if bytes remain after the operand.
func (m *Message) Unmarshal(p []byte, codec OperandCodec) error {
	if len(p) < 2 {
		return fmt.Errorf("racp: message too short: %d bytes", len(p))
	}
	if codec == nil {
		codec = GenericCodec{}
	}
	c, o := OpCode(p[0]), Operator(p[1])
	od, n, err := codec.Decode(p[2:], c, o)
	if err != nil {
		return fmt.Errorf("racp: operand for %v/%v: %w", c, o, err)
	}
	if rest := len(p) - 2 - n; rest != 0 {
		return fmt.Errorf("racp: %d trailing bytes after %v/%v operand", rest, c, o)
	}
	m.OpCode = c
	m.Operator = o
	m.Operand = od
	return nil
}

func (m Message) String() string {
	if m.Operand == nil {
		return fmt.Sprintf("%v/%v", m.OpCode, m.Operator)
	}
	return fmt.Sprintf("%v/%v %+v", m.OpCode, m.Operator, m.Operand)
}
