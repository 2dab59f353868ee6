package tokens

import "fmt"

// Type is the DTCG "$type" of a token.
type Type string

// Token types emitted by the converter.
const (
	TypeColor      Type = "color"
	TypeDimension  Type = "dimension"
	TypeShadow     Type = "shadow"
	TypeFontFamily Type = "fontFamily"
	TypeFontWeight Type = "fontWeight"
	TypeNumber     Type = "number"
)

// Token is a single W3C DTCG design token.
type Token struct {
	Value       string `json:"$value"`
	Type        Type   `json:"$type"`
	Description string `json:"$description,omitempty"`
}

// Color builds a color token from a raw stylesheet value. HSL triples are
// converted to hex and the original expression is kept in the description;
// anything else (hex literals, color functions) passes through unchanged.
func Color(raw, description string) Token {
	hsl, ok := ParseHSL(raw)
	if !ok {
		return Token{Value: raw, Type: TypeColor, Description: description}
	}

	desc := fmt.Sprintf("hsl(%s)", raw)
	if description != "" {
		desc = description + " - " + desc
	}
	return Token{Value: hsl.Hex(), Type: TypeColor, Description: desc}
}

// Shadow builds a shadow token for the given elevation level.
func Shadow(level, raw string) Token {
	return Token{Value: raw, Type: TypeShadow, Description: "Shadow level: " + level}
}

// Dimension builds a dimension token; raw must already carry its unit.
func Dimension(raw, description string) Token {
	return Token{Value: raw, Type: TypeDimension, Description: description}
}

func fontFamily(stack, description string) Token {
	return Token{Value: stack, Type: TypeFontFamily, Description: description}
}

func fontWeight(weight string) Token {
	return Token{Value: weight, Type: TypeFontWeight}
}

func number(value, description string) Token {
	return Token{Value: value, Type: TypeNumber, Description: description}
}
