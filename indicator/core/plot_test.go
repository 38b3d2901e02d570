package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesPlot(t *testing.T) {
	values := []float64{1.5, 2.5}
	pd := SeriesPlot("sma", 4, values).WithTimestamps(1000, 60)

	assert.Equal(t, []float64{4, 5}, pd.X)
	assert.Equal(t, []int64{1240, 1300}, pd.Timestamp)
	values[0] = 9
	assert.Equal(t, 1.5, pd.Y[0], "plot data owns its values")
}

func TestFormatPlotData(t *testing.T) {
	js, err := FormatPlotDataJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", js)

	bad := []PlotData{{Name: "x", X: []float64{1}, Y: nil}}
	_, err = FormatPlotDataJSON(bad)
	assert.Error(t, err)
	_, err = FormatPlotDataCSV(bad)
	assert.Error(t, err)

	csv, err := FormatPlotDataCSV([]PlotData{SeriesPlot("rsi", 1, []float64{50}).WithTimestamps(0, 10)})
	require.NoError(t, err)
	assert.Equal(t, "Name,X,Y,Type,Timestamp\nrsi,1,50,line,10\n", csv)
}
