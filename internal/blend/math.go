package blend

// mulDiv255 returns a*b/255 rounded to nearest, without division.
//
// Formula: t = a*b + 128; (t + t>>8) >> 8 (Jim Blinn's rounding form).
func mulDiv255(a, b byte) byte {
	t := uint16(a)*uint16(b) + 128
	return byte((t + t>>8) >> 8)
}
