package race

// Palette is the fixed set of car colours, in assignment order.
var Palette = [...]string{
	"#FF4444", "#44FF44", "#4444FF", "#FF44FF", "#FFFF44", "#44FFFF",
	"#FF8844", "#88FF44", "#4488FF", "#FF4488", "#88FFFF", "#FFFF88",
	"#AA44FF", "#FF44AA", "#44AAFF", "#AAFF44", "#FF8888", "#88FF88",
	"#8888FF", "#FFAA44",
}

// PickColor returns the first palette colour not present in used.
// When every colour is taken it falls back to Palette[fallbackIndex % len(Palette)];
// callers pass the current competitor count as fallbackIndex.
func PickColor(used []string, fallbackIndex int) string {
	taken := make(map[string]struct{}, len(used))
	for _, c := range used {
		taken[c] = struct{}{}
	}
	for _, c := range Palette {
		if _, ok := taken[c]; !ok {
			return c
		}
	}
	if fallbackIndex < 0 {
		fallbackIndex = -fallbackIndex
	}
	return Palette[fallbackIndex%len(Palette)]
}
