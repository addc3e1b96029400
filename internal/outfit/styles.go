package outfit

// colorStyles maps specific color names to suggested styles.
// Lookup is exact and case-sensitive; no fuzzy matching.
var colorStyles = map[string][]Style{
	"Blue":       {StyleFormal, StyleSemiFormal},
	"Light Blue": {StyleSemiFormal, StyleCasual},
	"Royal Blue": {StyleFormal, StylePremium},
	"Navy Blue":  {StyleFormal, StylePremium},
	"White":      {StyleFormal, StyleCasual},
	"Black":      {StyleFormal, StylePremium},
	"Grey":       {StyleFormal, StyleSemiFormal},
	"Red":        {StyleCasual, StylePremium},
	"Green":      {StyleCasual, StyleSemiFormal},
}

// defaultStyles is returned for colors missing from the table.
var defaultStyles = []Style{StyleFormal, StyleSemiFormal, StyleCasual}

// SuggestStyles returns the ordered style sequence for a color.
// The result is never empty; callers get a fresh slice they may keep.
func SuggestStyles(color string) []Style {
	src, ok := colorStyles[color]
	if !ok {
		src = defaultStyles
	}
	out := make([]Style, len(src))
	copy(out, src)
	return out
}
