// Package cartridge loads a flat, mapper-less ROM image for the MMU to copy
// into the 0000-7FFF window at reset.
package cartridge

import (
	"fmt"
	"io"
	"os"
)

// RomWindowSize is the full 32 KiB ROM window a DMG without a mapper
// addresses directly.
const RomWindowSize = 0x8000

// Cartridge wraps a ROM image, zero-padded up to the full 32 KiB window.
type Cartridge struct {
	ROM     []byte
	rawSize int
}

// Load reads a ROM image from path and validates it.
func Load(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadFrom(f)
}

// LoadFrom reads a ROM image from an arbitrary reader, for testability
// without touching disk.
func LoadFrom(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cartridge: read: %w", err)
	}
	if len(data) > RomWindowSize {
		return nil, fmt.Errorf("cartridge: image is %d bytes, exceeds the %d byte flat ROM window", len(data), RomWindowSize)
	}

	rom := make([]byte, RomWindowSize)
	copy(rom, data)
	return &Cartridge{ROM: rom, rawSize: len(data)}, nil
}

// Size returns the number of bytes actually loaded before zero-padding.
func (c *Cartridge) Size() int { return c.rawSize }
