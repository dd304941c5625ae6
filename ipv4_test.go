package weburl

import "testing"

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint32
		wantErr bool
	}{
		{"four decimal pieces", "127.0.0.1", 0x7F000001, false},
		{"single decimal piece whole address", "2130706433", 0x7F000001, false},
		{"single hex piece", "0x7f.1", 0x7F000001, false},
		{"hex dotted full", "0x7F.0x0.0x0.0x1", 0x7F000001, false},
		{"octal leading zero", "0177.0.0.1", 0x7F000001, false},
		{"trailing dot permitted", "127.0.0.1.", 0x7F000001, false},
		{"three pieces last holds 16 bits", "127.0.1", 0x7F000001, false},
		{"empty input", "", 0, true},
		{"too many pieces", "1.2.3.4.5", 0, true},
		{"non-final piece overflows byte", "256.0.0.1", 0, true},
		{"bad hex digit", "0xZZ", 0, true},
		{"empty piece", "1..1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIPv4([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIPv4(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseIPv4(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatIPv4(t *testing.T) {
	tests := []struct {
		addr uint32
		want string
	}{
		{0x7F000001, "127.0.0.1"},
		{0x00000000, "0.0.0.0"},
		{0xFFFFFFFF, "255.255.255.255"},
		{0xC0A80001, "192.168.0.1"},
	}
	for _, tt := range tests {
		if got := formatIPv4(tt.addr); got != tt.want {
			t.Errorf("formatIPv4(%#x) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestLooksLikeIPv4(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain domain", "example.com", false},
		{"last label all digits", "example.1", true},
		{"last label leading zero", "example.01x", true},
		{"trailing dot", "1.2.3.", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeIPv4([]byte(tt.in)); got != tt.want {
				t.Errorf("looksLikeIPv4(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseIPv4FormatIPv4RoundTrip(t *testing.T) {
	tests := []string{"127.0.0.1", "0.0.0.0", "255.255.255.255", "10.0.0.255"}
	for _, in := range tests {
		addr, err := parseIPv4([]byte(in))
		if err != nil {
			t.Fatalf("parseIPv4(%q) error: %v", in, err)
		}
		if got := formatIPv4(addr); got != in {
			t.Errorf("round-trip(%q) = %q, want %q", in, got, in)
		}
	}
}
