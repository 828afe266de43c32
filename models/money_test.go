package models

import (
	"encoding/json"
	"testing"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr bool
	}{
		{name: "whole dollars", input: "100", want: 10000},
		{name: "one decimal", input: "40.5", want: 4050},
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "comma separator", input: "12,34", want: 1234},
		{name: "third decimal rounds down", input: "12.344", want: 1234},
		{name: "third decimal rounds up", input: "12.346", want: 1235},
		{name: "negative", input: "-5", want: -500},
		{name: "leading dot", input: ".5", want: 50},
		{name: "whitespace", input: " 7.25 ", want: 725},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
		{name: "embedded sign", input: "1-2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCents(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCents(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCentsJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		cents Cents
		json  string
	}{
		{name: "half dollar", cents: 4050, json: "40.5"},
		{name: "whole", cents: 10000, json: "100"},
		{name: "zero", cents: 0, json: "0"},
		{name: "negative", cents: -1250, json: "-12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.cents)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tt.json {
				t.Errorf("marshal %d = %s, want %s", tt.cents, out, tt.json)
			}

			var back Cents
			if err := json.Unmarshal(out, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tt.cents {
				t.Errorf("round trip %d -> %s -> %d", tt.cents, out, back)
			}
		})
	}
}

func TestCentsUnmarshalString(t *testing.T) {
	var c Cents
	if err := json.Unmarshal([]byte(`"40.5"`), &c); err != nil {
		t.Fatalf("unmarshal quoted: %v", err)
	}
	if c != 4050 {
		t.Errorf("unmarshal quoted = %d, want 4050", c)
	}

	if err := json.Unmarshal([]byte(`null`), &c); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if c != 0 {
		t.Errorf("unmarshal null = %d, want 0", c)
	}
}
