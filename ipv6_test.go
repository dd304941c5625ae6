package weburl

import "testing"

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [8]uint16
		wantErr bool
	}{
		{"full form", "2001:db8:0:0:0:0:3:5", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 3, 5}, false},
		{"compressed middle run", "2608::3:5", [8]uint16{0x2608, 0, 0, 0, 0, 0, 3, 5}, false},
		{"leading compression", "::1", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, false},
		{"all zero", "::", [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, false},
		{"embedded ipv4 tail", "::ffff:127.0.0.1", [8]uint16{0, 0, 0, 0, 0, 0xffff, 0x7f00, 0x0001}, false},
		{"double compression rejected", "1::2::3", [8]uint16{}, true},
		{"leading lone colon rejected", ":1:2:3:4:5:6:7", [8]uint16{}, true},
		{"trailing lone colon rejected", "1:2:3:4:5:6:7:", [8]uint16{}, true},
		{"too many pieces", "1:2:3:4:5:6:7:8:9", [8]uint16{}, true},
		{"bad digit", "zzzz::1", [8]uint16{}, true},
		{"no compression and too few pieces", "1:2:3", [8]uint16{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIPv6([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIPv6(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseIPv6(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatIPv6CanonicalCompression(t *testing.T) {
	tests := []struct {
		name string
		in   [8]uint16
		want string
	}{
		{"longest run collapsed", [8]uint16{0x2608, 0, 0, 0, 0, 0, 3, 5}, "2608::3:5"},
		{"leftmost run wins tie", [8]uint16{0, 0, 1, 1, 0, 0, 1, 1}, "::1:1:0:0:1:1"},
		{"no run under two skips compression", [8]uint16{1, 0, 2, 0, 3, 0, 4, 0}, "1:0:2:0:3:0:4:0"},
		{"all zero collapses fully", [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, "::"},
		{"no zero pieces at all", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, "1:2:3:4:5:6:7:8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatIPv6(tt.in); got != tt.want {
				t.Errorf("formatIPv6(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLongestZeroRunTiesPreferLeftmost(t *testing.T) {
	start, length := longestZeroRun([8]uint16{0, 0, 1, 1, 0, 0, 1, 1})
	if start != 0 || length != 2 {
		t.Errorf("longestZeroRun = (%d, %d), want (0, 2)", start, length)
	}
}

func TestIpv6ToBytes(t *testing.T) {
	pieces := [8]uint16{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}
	got := ipv6ToBytes(pieces)
	want := [16]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	if got != want {
		t.Errorf("ipv6ToBytes(%v) = %v, want %v", pieces, got, want)
	}
}

func TestParseIPv6FormatIPv6RoundTrip(t *testing.T) {
	tests := []string{"2608::3:5", "::1", "1:2:3:4:5:6:7:8", "::"}
	for _, in := range tests {
		pieces, err := parseIPv6([]byte(in))
		if err != nil {
			t.Fatalf("parseIPv6(%q) error: %v", in, err)
		}
		if got := formatIPv6(pieces); got != in {
			t.Errorf("round-trip(%q) = %q, want %q", in, got, in)
		}
	}
}
