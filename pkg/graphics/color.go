package graphics

import "fmt"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
