package colors

// DeriveTextColor determines the best text color (white or black) for a background.
// Uses WCAG AA large-text threshold (3:1) to prefer white on colored backgrounds,
// falling back to black for truly light backgrounds.
func DeriveTextColor(bgColor string) string {
	// Prefer white on colored/dark backgrounds (3:1 = WCAG AA large text)
	if GetContrastRatio("#ffffff", bgColor) >= 3.0 {
		return "#ffffff"
	}

	// Fall back to black for light backgrounds
	if GetContrastRatio("#000000", bgColor) >= 3.0 {
		return "#000000"
	}

	// If neither works perfectly, choose based on luminance
	if IsLightColor(bgColor) {
		return "#000000" // Dark text on light bg
	}
	return "#ffffff" // Light text on dark bg
}
