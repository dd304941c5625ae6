package weburl

import "testing"

func TestParseDomain(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"already lower", "example.com", "example.com", false},
		{"upper cased", "EXAMPLE.COM", "example.com", false},
		{"mixed labels", "Foo.Bar.Example", "foo.bar.example", false},
		{"xn-- label long enough", "xn--nxasmq6b.example", "xn--nxasmq6b.example", false},
		{"xn-- label too short", "xn--.example", "", true},
		{"non-ascii rejected", "caf\xC3\xA9.com", "", true},
		{"pipe rejected", "foo|bar.example", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDomain([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDomain(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && string(got) != tt.want {
				t.Errorf("parseDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
