package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "date only", input: `"2024-03-01"`, want: "2024-03-01"},
		{name: "leap day", input: `"2024-02-29"`, want: "2024-02-29"},
		{name: "null", input: `null`, want: ""},
		{name: "empty string", input: `""`, want: ""},
		{name: "not a date", input: `"not-a-date"`, wantErr: true},
		{name: "with time component", input: `"2024-03-01T10:00:00Z"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unmarshal %s error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error %v should wrap ErrInvalidInput", err)
				}
				return
			}
			if d.String() != tt.want {
				t.Errorf("unmarshal %s = %q, want %q", tt.input, d.String(), tt.want)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewDate(2024, time.March, 5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-03-05"` {
		t.Errorf("marshal = %s, want \"2024-03-05\"", out)
	}

	out, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("marshal zero = %s, want null", out)
	}
}

func TestIsMonthKey(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "202401", "March 2024", ""}

	for _, s := range valid {
		if !IsMonthKey(s) {
			t.Errorf("IsMonthKey(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsMonthKey(s) {
			t.Errorf("IsMonthKey(%q) = true, want false", s)
		}
	}
}
