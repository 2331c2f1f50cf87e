package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GetLuminance calculates the relative luminance of a color per WCAG formula
// Returns a value between 0 (black) and 1 (white)
func GetLuminance(hexColor string) float64 {
	r, g, b := hexToRGB(hexColor)
	if r < 0 {
		return 0 // Invalid color
	}

	rs := gammaSRGB(float64(r) / 255.0)
	gs := gammaSRGB(float64(g) / 255.0)
	bs := gammaSRGB(float64(b) / 255.0)

	return 0.2126*rs + 0.7152*gs + 0.0722*bs
}

// gammaSRGB applies sRGB gamma correction
func gammaSRGB(val float64) float64 {
	if val <= 0.03928 {
		return val / 12.92
	}
	return math.Pow((val+0.055)/1.055, 2.4)
}

// GetContrastRatio calculates the WCAG contrast ratio between two colors
// Returns a value between 1 (no contrast) and 21 (maximum contrast)
func GetContrastRatio(fg, bg string) float64 {
	l1 := GetLuminance(fg)
	l2 := GetLuminance(bg)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// EnsureContrast adjusts the foreground color to meet minimum contrast ratio
// minRatio should be 4.5 for WCAG AA, 7.0 for WCAG AAA
func EnsureContrast(fg, bg string, minRatio float64) string {
	if GetContrastRatio(fg, bg) >= minRatio {
		return fg
	}

	bgLum := GetLuminance(bg)
	fgLum := GetLuminance(fg)

	// Push the foreground away from the background in steps
	for adjustment := 0.1; adjustment <= 1.0; adjustment += 0.1 {
		var adjusted string
		if fgLum > bgLum {
			adjusted = lightenColorBy(fg, adjustment)
		} else {
			adjusted = darkenColorBy(fg, adjustment)
		}

		if GetContrastRatio(adjusted, bg) >= minRatio {
			return adjusted
		}
	}

	// Still short of the ratio, fall back to pure white or black
	if bgLum > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// IsLightColor returns true if the color is closer to white than black
func IsLightColor(hexColor string) bool {
	return GetLuminance(hexColor) > 0.5
}

// hexToRGB converts hex color to RGB values (0-255)
// Returns -1, -1, -1 for invalid colors
func hexToRGB(hexColor string) (int64, int64, int64) {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return -1, -1, -1
	}

	r, errR := strconv.ParseInt(hex[0:2], 16, 64)
	g, errG := strconv.ParseInt(hex[2:4], 16, 64)
	b, errB := strconv.ParseInt(hex[4:6], 16, 64)

	if errR != nil || errG != nil || errB != nil {
		return -1, -1, -1
	}

	return r, g, b
}

// lightenColorBy moves a color towards white by a given amount (0.0 to 1.0)
func lightenColorBy(hexColor string, amount float64) string {
	r, g, b := hexToRGB(hexColor)
	if r < 0 {
		return hexColor
	}

	nr := r + int64(float64(255-r)*amount)
	ng := g + int64(float64(255-g)*amount)
	nb := b + int64(float64(255-b)*amount)

	return rgbToHex(nr, ng, nb)
}

// darkenColorBy moves a color towards black by a given amount (0.0 to 1.0)
func darkenColorBy(hexColor string, amount float64) string {
	r, g, b := hexToRGB(hexColor)
	if r < 0 {
		return hexColor
	}

	multiplier := 1.0 - amount
	nr := int64(float64(r) * multiplier)
	ng := int64(float64(g) * multiplier)
	nb := int64(float64(b) * multiplier)

	return rgbToHex(nr, ng, nb)
}

// rgbToHex converts RGB values to a hex color string, clamping to 0-255
func rgbToHex(r, g, b int64) string {
	clamp := func(v int64) int64 {
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}
