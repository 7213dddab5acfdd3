package config

// Styles controls the look of the radial menu. It is comparable, so the
// geometry cache uses it directly as its invalidation key.
type Styles struct {
	InnerRadius           float64 `json:"innerRadius"`
	GapWidth              float64 `json:"gapWidth"`
	OuterRadius           float64 `json:"outerRadius"` // thickness of the outer ring
	CursorSize            float64 `json:"cursorSize"`
	CursorDistance        float64 `json:"cursorDistance"`
	MenuSpriteHeight      int     `json:"menuSpriteHeight"`
	SelectionSpriteHeight int     `json:"selectionSpriteHeight"`
	DescriptionWidth      float64 `json:"descriptionWidth"`

	InnerBackgroundColor      HexColor `json:"innerBackgroundColor"`
	OuterBackgroundColor      HexColor `json:"outerBackgroundColor"`
	HighlightColor            HexColor `json:"highlightColor"`
	CursorColor               HexColor `json:"cursorColor"`
	SelectionTitleColor       HexColor `json:"selectionTitleColor"`
	SelectionDescriptionColor HexColor `json:"selectionDescriptionColor"`
	StackSizeColor            HexColor `json:"stackSizeColor"`
}

// DefaultStyles returns the built-in menu styling.
func DefaultStyles() Styles {
	return Styles{
		InnerRadius:           300,
		GapWidth:              8,
		OuterRadius:           150,
		CursorSize:            32,
		CursorDistance:        4,
		MenuSpriteHeight:      64,
		SelectionSpriteHeight: 128,
		DescriptionWidth:      400,

		InnerBackgroundColor:      HexColor{R: 0xff, G: 0xe4, B: 0xb2, A: 0xff},
		OuterBackgroundColor:      HexColor{R: 0xdc, G: 0xb0, B: 0x72, A: 0xff},
		HighlightColor:            HexColor{R: 0x76, G: 0x9a, B: 0xdd, A: 0xff},
		CursorColor:               HexColor{R: 0x76, G: 0x9a, B: 0xdd, A: 0xff},
		SelectionTitleColor:       HexColor{R: 0x41, G: 0x2a, B: 0x1a, A: 0xff},
		SelectionDescriptionColor: HexColor{R: 0x41, G: 0x2a, B: 0x1a, A: 0xff},
		StackSizeColor:            HexColor{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}
