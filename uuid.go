package racp

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// A UUID is a BLE UUID, either the 16-bit shortened form of an
// assigned number or a full 128-bit UUID. Registry lookups key on it.
type UUID struct {
	b []byte
}

// UUID16 converts a 16-bit assigned number to a UUID.
func UUID16(i uint16) UUID {
	return UUID{[]byte{byte(i), byte(i >> 8)}}
}

// ParseUUID parses a standard hex-encoded UUID string, with or
// without dashes.
func ParseUUID(s string) (UUID, error) {
	s = strings.ReplaceAll(s, "-", "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return UUID{}, err
	}
	if len(b) != 2 && len(b) != 16 {
		return UUID{}, fmt.Errorf("UUIDs must have length 2 or 16, got %d", len(b))
	}
	// Store in little-endian wire order, as the attribute protocol
	// transmits UUIDs.
	return UUID{reverse(b)}, nil
}

// MustParseUUID parses a standard hex-encoded UUID string,
// panicking if s is invalid.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(fmt.Errorf("invalid UUID %q: %w", s, err))
	}
	return u
}

// String hex-encodes the UUID in its conventional big-endian display
// order.
func (u UUID) String() string {
	return hex.EncodeToString(reverse(u.b))
}

// Len returns the length of the UUID in bytes: 2 or 16.
func (u UUID) Len() int {
	return len(u.b)
}

// Equal reports whether u and v are equal.
func (u UUID) Equal(v UUID) bool {
	if len(u.b) != len(v.b) {
		return false
	}
	for i, b := range u.b {
		if v.b[i] != b {
			return false
		}
	}
	return true
}

// reverse returns a reversed copy of u.
func reverse(u []byte) []byte {
	b := make([]byte, len(u))
	for i := range u {
		b[i] = u[len(u)-1-i]
	}
	return b
}
