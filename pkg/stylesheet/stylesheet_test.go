package stylesheet

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const globalsCSS = `
@tailwind base;

:root {
  --sana-neon: 72 100% 50%;
  --background: 240 6% 7%;
  --radius: 0.5rem;
  --shadow-sm: 0px 1px 3px 0px hsl(0 0% 0% / 0.24), 0px 1px 2px -1px hsl(0 0% 0% / 0.24);
}

.light {
  --background: 0 0% 100%;
  --foreground: 200 10% 10%;
}

.lighter {
  --background: 0 0% 50%;
}

:root {
  --sana-neon: 70 90% 45%;
}
`

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		selector string
		want     Properties
	}{
		{
			name:     "last declaration wins",
			css:      `:root { --foo: 1 2% 3%; --foo: 4 5% 6%; }`,
			selector: RootSelector,
			want:     Properties{"foo": "4 5% 6%"},
		},
		{
			name:     "missing selector",
			css:      `:root { --foo: 1 2% 3%; }`,
			selector: "light",
			want:     Properties{},
		},
		{
			name:     "empty input",
			css:      "",
			selector: RootSelector,
			want:     Properties{},
		},
		{
			name:     "root blocks are merged",
			css:      globalsCSS,
			selector: RootSelector,
			want: Properties{
				"sana-neon":  "70 90% 45%",
				"background": "240 6% 7%",
				"radius":     "0.5rem",
				"shadow-sm":  "0px 1px 3px 0px hsl(0 0% 0% / 0.24), 0px 1px 2px -1px hsl(0 0% 0% / 0.24)",
			},
		},
		{
			name:     "class selector",
			css:      globalsCSS,
			selector: "light",
			want: Properties{
				"background": "0 0% 100%",
				"foreground": "200 10% 10%",
			},
		},
		{
			name:     "values are trimmed across lines",
			css:      ".dim {\n  --gap :\n    4px\n  ;\n}",
			selector: "dim",
			want:     Properties{"gap": "4px"},
		},
		{
			name:     "non custom properties are ignored",
			css:      `:root { color: red; --a_b: 1px; --ok: 2px; }`,
			selector: RootSelector,
			want:     Properties{"ok": "2px"},
		},
		{
			name:     "selector metacharacters are literal",
			css:      `.a+b { --x: 1px; } .aab { --x: 2px; }`,
			selector: "a+b",
			want:     Properties{"x": "1px"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.css, tt.selector)
			if got == nil {
				t.Fatal("Extract() returned nil map")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertiesLookup(t *testing.T) {
	props := Properties{"primary": "72 100% 50%"}

	if got := props.Lookup("primary", "0 0% 0%"); got != "72 100% 50%" {
		t.Errorf("Lookup(primary) = %q, want declared value", got)
	}
	if got := props.Lookup("ring", "0 0% 0%"); got != "0 0% 0%" {
		t.Errorf("Lookup(ring) = %q, want default", got)
	}

	var empty Properties
	if got := empty.Lookup("ring", "def"); got != "def" {
		t.Errorf("nil Lookup(ring) = %q, want default", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globals.css")
	if err := os.WriteFile(path, []byte(globalsCSS), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != globalsCSS {
		t.Errorf("Load() returned %d bytes, want %d", len(got), len(globalsCSS))
	}

	_, err = Load(filepath.Join(dir, "missing.css"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
