package icon

import (
	"testing"
)

func TestClassify_Partition(t *testing.T) {
	names := []string{"logo.svg", "logo-16px.svg", "logo-32px.svg", "icon.svg"}

	base, overrides := Classify(names)

	wantBase := []string{"icon.svg", "logo.svg"}
	wantOverrides := []string{"logo-16px.svg", "logo-32px.svg"}

	if len(base) != len(wantBase) {
		t.Fatalf("base count = %d, want %d", len(base), len(wantBase))
	}
	for i, want := range wantBase {
		if base[i].Name != want {
			t.Errorf("base[%d] = %q, want %q", i, base[i].Name, want)
		}
		if base[i].Kind != KindBase {
			t.Errorf("base[%d].Kind = %v, want base", i, base[i].Kind)
		}
	}

	if len(overrides) != len(wantOverrides) {
		t.Fatalf("override count = %d, want %d", len(overrides), len(wantOverrides))
	}
	for i, want := range wantOverrides {
		if overrides[i].Name != want {
			t.Errorf("overrides[%d] = %q, want %q", i, overrides[i].Name, want)
		}
		if overrides[i].Kind != KindOverride {
			t.Errorf("overrides[%d].Kind = %v, want override", i, overrides[i].Kind)
		}
	}
}

func TestClassify_SuffixRules(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantKind Kind
		wantSize int
		dropped  bool
	}{
		{
			name:     "plain base icon",
			filename: "folder.svg",
			wantKind: KindBase,
		},
		{
			name:     "override with size tag",
			filename: "folder-48px.svg",
			wantKind: KindOverride,
			wantSize: 48,
		},
		{
			name:     "upper case extension",
			filename: "Folder-16px.SVG",
			wantKind: KindOverride,
			wantSize: 16,
		},
		{
			name:     "missing digits stays base",
			filename: "folder-px.svg",
			wantKind: KindBase,
		},
		{
			name:     "non-numeric digits stays base",
			filename: "folder-abcpx.svg",
			wantKind: KindBase,
		},
		{
			name:     "zero size stays base",
			filename: "folder-0px.svg",
			wantKind: KindBase,
		},
		{
			name:     "tag in the middle stays base",
			filename: "folder-16px-dark.svg",
			wantKind: KindBase,
		},
		{
			name:     "multi segment name picks trailing tag",
			filename: "my-folder-2-64px.svg",
			wantKind: KindOverride,
			wantSize: 64,
		},
		{
			name:     "non-vector file dropped",
			filename: "readme.txt",
			dropped:  true,
		},
		{
			name:     "container output dropped",
			filename: "folder.ico",
			dropped:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, overrides := Classify([]string{tt.filename})

			if tt.dropped {
				if len(base) != 0 || len(overrides) != 0 {
					t.Fatalf("expected %q to be dropped, got base=%v overrides=%v", tt.filename, base, overrides)
				}
				return
			}

			var got SourceFile
			switch tt.wantKind {
			case KindBase:
				if len(base) != 1 || len(overrides) != 0 {
					t.Fatalf("expected one base file, got base=%v overrides=%v", base, overrides)
				}
				got = base[0]
			case KindOverride:
				if len(overrides) != 1 || len(base) != 0 {
					t.Fatalf("expected one override file, got base=%v overrides=%v", base, overrides)
				}
				got = overrides[0]
			}

			if got.Name != tt.filename {
				t.Errorf("Name = %q, want %q", got.Name, tt.filename)
			}
			if got.OverrideSize != tt.wantSize {
				t.Errorf("OverrideSize = %d, want %d", got.OverrideSize, tt.wantSize)
			}
		})
	}
}

func TestClassify_Empty(t *testing.T) {
	base, overrides := Classify(nil)
	if len(base) != 0 {
		t.Errorf("expected empty base, got %v", base)
	}
	if len(overrides) != 0 {
		t.Errorf("expected empty overrides, got %v", overrides)
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	forward := []string{"a.svg", "b.svg", "c-16px.svg", "d.svg"}
	backward := []string{"d.svg", "c-16px.svg", "b.svg", "a.svg"}

	baseF, overF := Classify(forward)
	baseB, overB := Classify(backward)

	if len(baseF) != len(baseB) {
		t.Fatalf("base counts differ: %d vs %d", len(baseF), len(baseB))
	}
	for i := range baseF {
		if baseF[i] != baseB[i] {
			t.Errorf("base[%d] differs: %v vs %v", i, baseF[i], baseB[i])
		}
	}
	for i := range overF {
		if overF[i] != overB[i] {
			t.Errorf("overrides[%d] differs: %v vs %v", i, overF[i], overB[i])
		}
	}
}

func TestClassify_TotalPartition(t *testing.T) {
	names := []string{
		"app.svg", "app-16px.svg", "app-32px.svg",
		"doc.svg", "doc-20px.svg", "zip.svg",
	}

	base, overrides := Classify(names)

	if got := len(base) + len(overrides); got != len(names) {
		t.Fatalf("partition dropped files: %d classified, %d in", got, len(names))
	}

	seen := make(map[string]bool)
	for _, f := range base {
		seen[f.Name] = true
	}
	for _, f := range overrides {
		if seen[f.Name] {
			t.Errorf("%q appears in both partitions", f.Name)
		}
		seen[f.Name] = true
	}
	for _, n := range names {
		if !seen[n] {
			t.Errorf("%q missing from partition", n)
		}
	}
}
