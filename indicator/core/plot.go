package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlotData is one named output channel laid out against input indices.
type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

// SeriesPlot aligns values that start lookback samples into the input. X
// holds input indices so channels with different lookbacks overlay cleanly.
func SeriesPlot(name string, lookback int, values []float64) PlotData {
	x := make([]float64, len(values))
	for i := range x {
		x[i] = float64(lookback + i)
	}
	return PlotData{Name: name, X: x, Y: copySlice(values), Type: "line"}
}

// WithTimestamps fills Timestamp from a start time and a fixed interval per
// input sample.
func (d PlotData) WithTimestamps(startTime, interval int64) PlotData {
	d.Timestamp = make([]int64, len(d.X))
	for i, x := range d.X {
		d.Timestamp[i] = startTime + int64(x)*interval
	}
	return d
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("Name,X,Y,Type,Timestamp\n")
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		for i := 0; i < len(d.X); i++ {
			ts := ""
			if i < len(d.Timestamp) {
				ts = fmt.Sprintf("%d", d.Timestamp[i])
			}
			fmt.Fprintf(&sb, "%s,%g,%g,%s,%s\n", d.Name, d.X[i], d.Y[i], d.Type, ts)
		}
	}
	return sb.String(), nil
}
