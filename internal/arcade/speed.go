package arcade

// simSpeeds are the selectable multipliers; 0 is paused.
var simSpeeds = []float64{0, 0.5, 1, 2, 4}

// slower steps the multiplier down one notch.
func slower(cur float64) float64 {
	for i, s := range simSpeeds {
		if s >= cur && i > 0 {
			return simSpeeds[i-1]
		}
	}
	return cur
}

// faster steps the multiplier up one notch.
func faster(cur float64) float64 {
	for _, s := range simSpeeds {
		if s > cur {
			return s
		}
	}
	return cur
}

// togglePause flips between paused and 1x.
func togglePause(cur float64) float64 {
	if cur > 0 {
		return 0
	}
	return 1
}

func speedLabel(speed float64) string {
	switch speed {
	case 0:
		return "PAUSED"
	case 0.5:
		return "0.5x"
	case 2:
		return "2x"
	case 4:
		return "4x"
	default:
		return "1x"
	}
}
