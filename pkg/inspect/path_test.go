package inspect

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Path
		wantErr error
	}{
		{
			name:  "set only",
			input: "gameplay",
			want:  &Path{Set: "gameplay", IsPartial: true},
		},
		{
			name:  "set and action",
			input: "gameplay/fire",
			want:  &Path{Set: "gameplay", Action: "fire"},
		},
		{
			name:  "left side",
			input: "gameplay/fire@left",
			want:  &Path{Set: "gameplay", Action: "fire", Subaction: "/user/hand/left"},
		},
		{
			name:  "short right side",
			input: "gameplay/fire@R",
			want:  &Path{Set: "gameplay", Action: "fire", Subaction: "/user/hand/right"},
		},
		{
			name:  "user path subaction",
			input: "menu/select@/user/head",
			want:  &Path{Set: "menu", Action: "select", Subaction: "/user/head"},
		},
		{
			name:  "surrounding whitespace",
			input: "  gameplay/move  ",
			want:  &Path{Set: "gameplay", Action: "move"},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "leading slash",
			input:   "/gameplay/fire",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "too many parts",
			input:   "gameplay/fire/extra",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "upper case name",
			input:   "Gameplay/fire",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "empty action",
			input:   "gameplay/",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "unknown side",
			input:   "gameplay/fire@middle",
			wantErr: ErrInvalidSide,
		},
		{
			name:    "subaction without action",
			input:   "gameplay@left",
			wantErr: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) unexpected error: %v", tt.input, err)
			}
			if got.Set != tt.want.Set {
				t.Errorf("Set = %q, want %q", got.Set, tt.want.Set)
			}
			if got.Action != tt.want.Action {
				t.Errorf("Action = %q, want %q", got.Action, tt.want.Action)
			}
			if got.Subaction != tt.want.Subaction {
				t.Errorf("Subaction = %q, want %q", got.Subaction, tt.want.Subaction)
			}
			if got.IsPartial != tt.want.IsPartial {
				t.Errorf("IsPartial = %v, want %v", got.IsPartial, tt.want.IsPartial)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gameplay", "gameplay"},
		{"gameplay/fire", "gameplay/fire"},
		{"gameplay/fire@l", "gameplay/fire@/user/hand/left"},
		{"gameplay/fire@/user/gamepad", "gameplay/fire@/user/gamepad"},
	}

	for _, tt := range tests {
		p, err := ParsePath(tt.input)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", tt.input, err)
		}
		if got := p.String(); got != tt.want {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPathKeepsRaw(t *testing.T) {
	p, err := ParsePath("gameplay/fire@left")
	if err != nil {
		t.Fatal(err)
	}
	if p.Raw != "gameplay/fire@left" {
		t.Errorf("Raw = %q", p.Raw)
	}
}
