package branding

// UnsetLabel is the legend bucket for rows without a value in the
// color-key column.
const UnsetLabel = "未設定"

// Per-column palettes for categorical coloring. Columns without an entry
// fall back to a single default color.
var columnPalettes = map[string][]string{
	"ステータス": {Navy, Sky, "#8FAACF", Teal, Gold, "#7B8C9E"},
	"工種":    {Navy, Gold, Sky, Teal, "#9AA8BC"},
	"元請区分":  {Navy, Sky, Gold, Teal},
}

// ColorMap assigns a stable color to each distinct value of a column,
// cycling the column's palette in first-seen order. Empty values are
// skipped; the 未設定 bucket always maps to the default color.
func ColorMap(values []string, column, defaultColor string) map[string]string {
	palette, ok := columnPalettes[column]
	if !ok {
		palette = []string{defaultColor}
	}

	colorMap := make(map[string]string)
	order := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, seen := colorMap[v]; seen {
			continue
		}
		colorMap[v] = palette[order%len(palette)]
		order++
	}
	colorMap[UnsetLabel] = defaultColor
	return colorMap
}
