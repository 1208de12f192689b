package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/gone-dmg/ppu"
)

func TestWindowImplementsPixelSink(t *testing.T) {
	w := New()
	var _ ppu.PixelSink = w
	assert.NotNil(t, w)
}

func TestEmitScanlineRecordsWithinBounds(t *testing.T) {
	w := New()
	var row [160]byte
	row[0] = 3
	w.EmitScanline(0, row)
	assert.Equal(t, byte(3), w.frame[0][0])
}

func TestEmitScanlineIgnoresOutOfRangeLY(t *testing.T) {
	w := New()
	var row [160]byte
	row[0] = 1
	w.EmitScanline(200, row) // VBlank lines exceed screenHeight, must not panic
}

func TestCloseStopsUpdate(t *testing.T) {
	w := New()
	w.Close()
	err := w.Update()
	assert.Error(t, err)
}
