package core

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "overlay", Overlay.String())
	assert.Equal(t, "comparative", Comparative.String())
	assert.Equal(t, "unknown", Kind(0).String())

	b, err := json.Marshal(struct{ K Kind }{Simple})
	require.NoError(t, err)
	assert.JSONEq(t, `{"K":"simple"}`, string(b))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.0, SafeDiv(4, 2, 0))
	assert.Equal(t, 7.0, SafeDiv(1, 0, 7))
	assert.Equal(t, 0.0, SafeDiv(math.Inf(1), 1, 0))
}

func TestClampAndTail(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))

	s := []float64{1, 2, 3}
	assert.Equal(t, []float64{2, 3}, Tail(s, 2))
	assert.Equal(t, s, Tail(s, 5))
}

func TestCopySlice_Detached(t *testing.T) {
	assert.Nil(t, copySlice(nil))
	src := []float64{1, 2}
	cp := copySlice(src)
	cp[0] = 9
	assert.Equal(t, 1.0, src[0])
}

func TestMake(t *testing.T) {
	assert.Len(t, Make(10, 3), 7)
	assert.Empty(t, Make(3, 3))
	assert.NotNil(t, Make(2, 3))
}
