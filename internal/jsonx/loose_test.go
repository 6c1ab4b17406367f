package jsonx

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		raw  string
		want Text
	}{
		{`"A"`, "A"},
		{`5551234`, "5551234"},
		{`-1.5`, "-1.5"},
		{`true`, "true"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var got struct {
			V Text `json:"v"`
		}
		if err := json.Unmarshal([]byte(`{"v":`+tt.raw+`}`), &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.raw, err)
		}
		if got.V != tt.want {
			t.Fatalf("Unmarshal(%s) = %q, want %q", tt.raw, got.V, tt.want)
		}
	}

	var v Text
	if err := json.Unmarshal([]byte(`{"a":1}`), &v); !errors.Is(err, ErrNotScalar) {
		t.Fatalf("object error = %v, want ErrNotScalar", err)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		raw     string
		want    Int
		wantErr bool
	}{
		{`5`, 5, false},
		{`"5"`, 5, false},
		{`" 7 "`, 7, false},
		{`5.0`, 5, false},
		{`1e2`, 100, false},
		{`-3`, -3, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`5.5`, 0, true},
		{`"five"`, 0, true},
		{`true`, 0, true},
		{`[5]`, 0, true},
	}
	for _, tt := range tests {
		var got Int
		err := json.Unmarshal([]byte(tt.raw), &got)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Unmarshal(%s) = %d, want error", tt.raw, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("Unmarshal(%s) = %d, %v; want %d", tt.raw, got, err, tt.want)
		}
	}
}
