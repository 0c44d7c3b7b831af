package asciivision

// midGray is the pivot contrast scales around.
const midGray float32 = 127.5

// Luminance converts a color sample to grayscale using the BT.601 weights
// 0.299*R + 0.587*G + 0.114*B in single precision. The weighted sum is
// truncated, not rounded, so pure red yields 76 rather than 77 and gray 37
// yields 36.
//
// Every product is converted explicitly to keep the compiler from fusing
// it into a multiply-add, which would change the truncated result.
func Luminance(r, g, b uint8) uint8 {
	sum := float32(float32(r)*0.299) + float32(float32(g)*0.587)
	sum += float32(float32(b) * 0.114)
	return uint8(sum)
}

// AdjustTone applies contrast around mid-gray, then an additive brightness
// shift scaled to the byte range, clamps to [0, 255] and truncates. All
// arithmetic is single precision. brightness is expected in [-1, 1] and
// contrast in [0.1, 3].
func AdjustTone(gray uint8, brightness, contrast float32) uint8 {
	adjusted := float32((float32(gray)-midGray)*contrast) + midGray
	adjusted += float32(brightness * 255.0)

	if adjusted < 0 {
		return 0
	}
	if adjusted > 255 {
		return 255
	}
	return uint8(adjusted)
}

// Invert reflects a brightness level: v -> 255 - v.
func Invert(v uint8) uint8 {
	return 255 - v
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
