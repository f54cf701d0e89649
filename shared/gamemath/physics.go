package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ApplyGravity adds gravity to a vertical speed, capped at maxFall.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}
