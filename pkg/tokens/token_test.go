package tokens

import (
	"encoding/json"
	"testing"
)

func TestColor(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		description string
		want        Token
	}{
		{
			name:        "hsl with description",
			raw:         "72 100% 50%",
			description: "Primary action",
			want:        Token{Value: "#cbff00", Type: TypeColor, Description: "Primary action - hsl(72 100% 50%)"},
		},
		{
			name: "hsl without description",
			raw:  "0 0% 100%",
			want: Token{Value: "#ffffff", Type: TypeColor, Description: "hsl(0 0% 100%)"},
		},
		{
			name:        "hex literal passes through",
			raw:         "#ffffff",
			description: "Success text",
			want:        Token{Value: "#ffffff", Type: TypeColor, Description: "Success text"},
		},
		{
			name: "color function passes through",
			raw:  "rgb(10 20 30)",
			want: Token{Value: "rgb(10 20 30)", Type: TypeColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.raw, tt.description); got != tt.want {
				t.Errorf("Color(%q, %q) = %+v, want %+v", tt.raw, tt.description, got, tt.want)
			}
		})
	}
}

func TestShadow(t *testing.T) {
	raw := "0px 1px 2px 0px hsl(0 0% 0% / 0.15)"
	want := Token{Value: raw, Type: TypeShadow, Description: "Shadow level: 2xs"}
	if got := Shadow("2xs", raw); got != want {
		t.Errorf("Shadow() = %+v, want %+v", got, want)
	}
}

func TestDimension(t *testing.T) {
	want := Token{Value: "8px", Type: TypeDimension, Description: "Base radius"}
	if got := Dimension("8px", "Base radius"); got != want {
		t.Errorf("Dimension() = %+v, want %+v", got, want)
	}
}

func TestTokenJSON(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{
			name:  "with description",
			token: Token{Value: "#000000", Type: TypeColor, Description: "Black"},
			want:  `{"$value":"#000000","$type":"color","$description":"Black"}`,
		},
		{
			name:  "description omitted",
			token: fontWeight("700"),
			want:  `{"$value":"700","$type":"fontWeight"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.token)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
