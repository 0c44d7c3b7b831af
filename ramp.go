package asciivision

// RampDetailed is the 70 character brightness ramp, ordered from the darkest
// glyph (space) to the brightest.
const RampDetailed = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// RampSimple is the 10 character brightness ramp.
const RampSimple = " .:-=+*#%@"

// Ramp returns the ramp selected by useDetailed.
func Ramp(useDetailed bool) string {
	if useDetailed {
		return RampDetailed
	}
	return RampSimple
}

// SelectCharacter maps a brightness level to a character of the selected
// ramp. Level 0 always yields the first character and 255 the last one;
// levels in between are spread by integer division, so the mapping is
// non-decreasing in ramp order.
func SelectCharacter(level uint8, useDetailed bool) byte {
	ramp := Ramp(useDetailed)
	index := int(level) * (len(ramp) - 1) / 255
	return ramp[index]
}
