package chart

import "strings"

// Palette is a named categorical color cycle. Colors are hex strings with a
// leading '#'.
type Palette struct {
	Name   string
	Colors []string
}

// DefaultPaletteName is used when no palette (or an unrecognized one) is
// requested.
const DefaultPaletteName = "Plotly"

var palettes = []Palette{
	{
		Name: "Plotly",
		Colors: []string{
			"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
			"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
		},
	},
	{
		Name: "Blues",
		Colors: []string{
			"#08306B", "#08519C", "#2171B5", "#4292C6", "#6BAED6",
			"#9ECAE1", "#C6DBEF", "#DEEBF7",
		},
	},
	{
		Name: "Viridis",
		Colors: []string{
			"#440154", "#482878", "#3E4989", "#31688E", "#26828E",
			"#1F9E89", "#35B779", "#6ECE58", "#B5DE2B", "#FDE725",
		},
	},
	{
		Name: "Mako",
		Colors: []string{
			"#0B0405", "#2E1E3B", "#413D7B", "#37659E", "#348FA7",
			"#40B7AD", "#8AD9B1", "#DEF5E5",
		},
	},
}

// PaletteNames lists the recognized palettes in presentation order.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// PaletteByName resolves a palette case-insensitively. Unknown names fall
// back to the default palette instead of failing.
func PaletteByName(name string) Palette {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range palettes {
		if strings.ToLower(p.Name) == want {
			return p
		}
	}
	return palettes[0]
}

// Color returns the i-th color of the cycle, wrapping around.
func (p Palette) Color(i int) string {
	return p.Colors[i%len(p.Colors)]
}
