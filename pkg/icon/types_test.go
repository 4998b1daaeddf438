package icon

import (
	"errors"
	"testing"
)

func TestNewSizeSet(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		want    []int
		wantErr error
	}{
		{
			name:   "sorted input",
			values: []int{16, 32, 48},
			want:   []int{16, 32, 48},
		},
		{
			name:   "unsorted input",
			values: []int{256, 16, 64},
			want:   []int{16, 64, 256},
		},
		{
			name:   "duplicates collapse",
			values: []int{32, 16, 32, 16},
			want:   []int{16, 32},
		},
		{
			name:    "empty input",
			values:  nil,
			wantErr: ErrEmptySizeSet,
		},
		{
			name:    "zero size",
			values:  []int{16, 0},
			wantErr: ErrNonPositiveSize,
		},
		{
			name:    "negative size",
			values:  []int{-4},
			wantErr: ErrNonPositiveSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSizeSet(tt.values...)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSizeSet failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("got[%d] = %d, want %d", i, got[i], w)
				}
			}
		})
	}
}

func TestParseSizeSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{
			name:  "space separated",
			input: "16 32 48 64 256",
			want:  []int{16, 32, 48, 64, 256},
		},
		{
			name:  "extra whitespace",
			input: "  16   32 ",
			want:  []int{16, 32},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "16 large",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSizeSet(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSizeSet failed: %v", err)
			}
			if got.String() == "" && len(tt.want) > 0 {
				t.Fatal("String() returned empty set")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("got[%d] = %d, want %d", i, got[i], w)
				}
			}
		})
	}
}

func TestSizeSet_MaxAndContains(t *testing.T) {
	sizes := mustSizeSet(t, 16, 32, 256)

	if got := sizes.Max(); got != 256 {
		t.Errorf("Max() = %d, want 256", got)
	}
	if !sizes.Contains(32) {
		t.Error("Contains(32) = false, want true")
	}
	if sizes.Contains(48) {
		t.Error("Contains(48) = true, want false")
	}
}

func TestSourceFile_Stem(t *testing.T) {
	tests := []struct {
		name string
		file SourceFile
		want string
	}{
		{
			name: "simple name",
			file: SourceFile{Name: "logo.svg"},
			want: "logo",
		},
		{
			name: "override keeps size tag",
			file: SourceFile{Name: "logo-32px.svg", Kind: KindOverride, OverrideSize: 32},
			want: "logo-32px",
		},
		{
			name: "dotted name strips last extension only",
			file: SourceFile{Name: "logo.dark.svg"},
			want: "logo.dark",
		},
		{
			name: "no extension",
			file: SourceFile{Name: "logo"},
			want: "logo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.file.Stem(); got != tt.want {
				t.Errorf("Stem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverrideStem(t *testing.T) {
	if got := overrideStem("logo", 32); got != "logo-32px" {
		t.Errorf("overrideStem = %q, want %q", got, "logo-32px")
	}
}
