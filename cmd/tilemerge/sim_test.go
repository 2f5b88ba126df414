package main

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tilemerge/internal/core"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		in      string
		want    []core.Direction
		wantErr bool
	}{
		{"", nil, false},
		{"lrud", []core.Direction{core.DirLeft, core.DirRight, core.DirUp, core.DirDown}, false},
		{"LL", []core.Direction{core.DirLeft, core.DirLeft}, false},
		{"left,up", []core.Direction{core.DirLeft, core.DirUp}, false},
		{"down right", []core.Direction{core.DirDown, core.DirRight}, false},
		{"lx", nil, true},
		{"left,sideways", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMoves(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMoves(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMoves(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:8080": "8080",
		"8080":           "8080",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, want %q", in, got, want)
		}
	}
}
