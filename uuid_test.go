package racp

import (
	"bytes"
	"strings"
	"testing"
)

func TestUUID16(t *testing.T) {
	if want, got := (UUID{[]byte{0x00, 0x18}}), UUID16(0x1800); !got.Equal(want) {
		t.Errorf("UUID16: got %x, want %x", got, want)
	}
	if want, got := (UUID{[]byte{0x52, 0x2A}}), UUID16(0x2A52); !got.Equal(want) {
		t.Errorf("UUID16: got %x, want %x", got, want)
	}
}

func TestZeroUUIDString(t *testing.T) {
	// A zero UUID shows up wherever a ParseUUID error is mishandled
	// or a struct field is left unset; formatting it must not panic.
	if got := (UUID{}).String(); got != "" {
		t.Errorf("zero UUID String(): got %q want %q", got, "")
	}
}

func TestParseUUID(t *testing.T) {
	cases := []struct {
		s    string
		want UUID
		err  bool
	}{
		{s: "2a52", want: UUID16(0x2A52)},
		{s: "1808", want: UUID16(0x1808)},
		{s: "09fc95c0-c111-11e3-9904-0002a5d5c51b"},
		{s: "2a5", err: true},
		{s: "2a5252", err: true},
		{s: "zzzz", err: true},
	}

	for _, tt := range cases {
		u, err := ParseUUID(tt.s)
		if tt.err {
			if err == nil {
				t.Errorf("ParseUUID(%q): expected error", tt.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseUUID(%q): %v", tt.s, err)
			continue
		}
		if tt.want.Len() != 0 && !u.Equal(tt.want) {
			t.Errorf("ParseUUID(%q): got %v want %v", tt.s, u, tt.want)
		}
		if got, want := u.String(), strings.ReplaceAll(tt.s, "-", ""); got != want {
			t.Errorf("ParseUUID(%q).String(): got %q want %q", tt.s, got, want)
		}
	}
}

func TestReverse(t *testing.T) {
	cases := []struct {
		fwd  []byte
		back []byte
	}{
		{fwd: []byte{}, back: []byte{}},
		{fwd: []byte{7}, back: []byte{7}},
		{fwd: []byte{0, 1}, back: []byte{1, 0}},
		{fwd: []byte{0, 1, 2}, back: []byte{2, 1, 0}},
		{fwd: []byte{0, 1, 2, 3}, back: []byte{3, 2, 1, 0}},
		{
			fwd:  []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			back: []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	}

	for _, tt := range cases {
		got := reverse(tt.fwd)
		if !bytes.Equal(got, tt.back) {
			t.Errorf("reverse(%x): got %x want %x", tt.fwd, got, tt.back)
		}
	}
}
