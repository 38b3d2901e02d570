package stats

// AvgPrice writes (open+high+low+close)/4.
func AvgPrice(dst, open, high, low, close []float64) {
	for i := range dst {
		dst[i] = (open[i] + high[i] + low[i] + close[i]) * 0.25
	}
}

// MedPrice writes (high+low)/2.
func MedPrice(dst, high, low []float64) {
	for i := range dst {
		dst[i] = (high[i] + low[i]) * 0.5
	}
}

// TypPrice writes (high+low+close)/3.
func TypPrice(dst, high, low, close []float64) {
	for i := range dst {
		dst[i] = (high[i] + low[i] + close[i]) / 3
	}
}

// WCPrice writes the weighted close (high+low+2·close)/4.
func WCPrice(dst, high, low, close []float64) {
	for i := range dst {
		dst[i] = (high[i] + low[i] + 2*close[i]) * 0.25
	}
}
