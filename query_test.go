package weburl

import "testing"

func TestValuesGetSetAddDelHas(t *testing.T) {
	v := make(Values)
	if v.Has("a") {
		t.Errorf("Has(\"a\") = true on empty Values, want false")
	}
	v.Set("a", "1")
	if got := v.Get("a"); got != "1" {
		t.Errorf("Get(\"a\") = %q, want \"1\"", got)
	}
	v.Add("a", "2")
	if got := v["a"]; len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("v[\"a\"] = %v, want [1 2]", got)
	}
	if got := v.Get("a"); got != "1" {
		t.Errorf("Get(\"a\") after Add = %q, want \"1\" (first value)", got)
	}
	v.Del("a")
	if v.Has("a") {
		t.Errorf("Has(\"a\") = true after Del, want false")
	}
	if got := v.Get("missing"); got != "" {
		t.Errorf("Get(\"missing\") = %q, want \"\"", got)
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Values
	}{
		{"single pair", "a=1", Values{"a": {"1"}}},
		{"multiple pairs", "a=1&b=2", Values{"a": {"1"}, "b": {"2"}}},
		{"repeated key accumulates", "a=1&a=2", Values{"a": {"1", "2"}}},
		{"semicolon separator", "a=1;b=2", Values{"a": {"1"}, "b": {"2"}}},
		{"key without value", "a", Values{"a": {""}}},
		{"plus decodes to space", "a=1+2", Values{"a": {"1 2"}}},
		{"empty string", "", Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.in)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseQuery(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for k, want := range tt.want {
				gotVals, ok := got[k]
				if !ok {
					t.Fatalf("ParseQuery(%q) missing key %q", tt.in, k)
				}
				if len(gotVals) != len(want) {
					t.Fatalf("ParseQuery(%q)[%q] = %v, want %v", tt.in, k, gotVals, want)
				}
				for i := range want {
					if gotVals[i] != want[i] {
						t.Errorf("ParseQuery(%q)[%q][%d] = %q, want %q", tt.in, k, i, gotVals[i], want[i])
					}
				}
			}
		})
	}
}

func TestValuesEncodeSortsKeysAndJoinsRepeats(t *testing.T) {
	v := Values{"b": {"2"}, "a": {"1", "3"}}
	if got, want := v.Encode(), "a=1&a=3&b=2"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestValuesEncodeEmpty(t *testing.T) {
	v := make(Values)
	if got := v.Encode(); got != "" {
		t.Errorf("Encode() on empty Values = %q, want \"\"", got)
	}
}

func TestValuesEncodeEscapesSpaceAsPlus(t *testing.T) {
	v := Values{"q": {"a b"}}
	if got, want := v.Encode(), "q=a+b"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestParseQueryEncodeRoundTrip(t *testing.T) {
	v := Values{"a": {"1"}, "b": {"x y"}}
	encoded := v.Encode()
	got, err := ParseQuery(encoded)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error: %v", encoded, err)
	}
	if got.Get("a") != "1" || got.Get("b") != "x y" {
		t.Errorf("round-trip via Encode/ParseQuery = %v, want a=1 b=\"x y\"", got)
	}
}

func TestURLQueryValuesNoQuery(t *testing.T) {
	u := mustParse(t, "http://example.com/")
	v, err := u.QueryValues()
	if err != nil {
		t.Fatalf("QueryValues error: %v", err)
	}
	if len(v) != 0 {
		t.Errorf("QueryValues() on a URL with no query = %v, want empty", v)
	}
}

func TestURLQueryValuesParsesExisting(t *testing.T) {
	u := mustParse(t, "http://example.com/?a=1&b=2")
	v, err := u.QueryValues()
	if err != nil {
		t.Fatalf("QueryValues error: %v", err)
	}
	if v.Get("a") != "1" || v.Get("b") != "2" {
		t.Errorf("QueryValues() = %v, want a=1 b=2", v)
	}
}

func TestURLWithQueryValuesSplicesVerbatim(t *testing.T) {
	u := mustParse(t, "http://example.com/")
	v := Values{"a": {"1"}}
	got := u.WithQueryValues(v)
	if want := "http://example.com/?a=1"; got.String() != want {
		t.Errorf("WithQueryValues() = %q, want %q", got.String(), want)
	}
}
