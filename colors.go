package designer

// Palette is an ordered list of fill colors cycled by index.
type Palette []string

var Category10 Palette

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
}

// Pick returns the palette entry for an index, cycling past the end.
func (p Palette) Pick(i int) string {
	if len(p) == 0 {
		return "#000000"
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
