package styles

// NewDefaultTheme creates the pitch-green dark theme.
func NewDefaultTheme() *Theme {
	return &Theme{
		Name:   "pitch",
		IsDark: true,

		// Grass and chalk tones
		Primary:   ParseHex("#7bc96f"), // Pitch green
		Secondary: ParseHex("#56b6c2"), // Cyan
		Tertiary:  ParseHex("#3e4451"), // Dark gray-blue
		Accent:    ParseHex("#e5c07b"), // Trophy gold

		BgBase:    ParseHex("#1b1f1c"),
		BgSubtle:  ParseHex("#232a25"),
		BgOverlay: ParseHex("#2b332d"),

		FgBase:   ParseHex("#d7dfd9"), // Chalk white
		FgMuted:  ParseHex("#8a968d"),
		FgSubtle: ParseHex("#5c6660"),

		Border:      ParseHex("#3e4a41"),
		BorderFocus: ParseHex("#7bc96f"),

		Success: ParseHex("#98c379"),
		Error:   ParseHex("#e06c75"),
		Warning: ParseHex("#e5c07b"),
		Info:    ParseHex("#61afef"),
	}
}
