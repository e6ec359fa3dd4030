package theme

// NewColombia creates the default theme: Catppuccin Mocha surfaces with the flag's
// yellow, blue and red as accents.
func NewColombia() *Theme {
	return &Theme{
		Name:   "colombia",
		IsDark: true,

		// Semantic colors
		Primary:   "#fcd116", // Flag yellow
		Secondary: "#89b4fa", // Lighter flag blue, readable on dark
		Tertiary:  "#ce1126", // Flag red

		// Background hierarchy
		BgBase:     "#1e1e2e",
		BgMantle:   "#181825",
		BgSurface0: "#313244",
		BgSurface1: "#45475a",
		BgSurface2: "#585b70",

		// Foreground hierarchy
		FgMuted:  "#6c7086",
		FgSubtle: "#a6adc8",
		FgBase:   "#cdd6f4",
		FgBright: "#ffffff",

		// Status colors
		Success: "#a6e3a1",
		Warning: "#f9e2af",
		Error:   "#f38ba8",
	}
}
