package cpu

// Package cpu implements the Sharp LR35902, the CPU at the heart of the
// original Game Boy (DMG).

import "github.com/hejops/gone-dmg/mask"

// Flag bits within F. The low nibble of F is always zero; only the high
// nibble carries meaning.
const (
	FlagZ byte = 1 << 7 // Zero
	FlagN byte = 1 << 6 // Subtract
	FlagH byte = 1 << 5 // Half carry
	FlagC byte = 1 << 4 // Carry
)

// Registers holds the eight 8-bit cells that make up the four register
// pairs (AF, BC, DE, HL), plus the two 16-bit cells PC and SP.
//
// AF/BC/DE/HL are never stored directly; they are composed on demand from
// the 8-bit halves, so there is only ever one place a write can land.
type Registers struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte

	PC uint16
	SP uint16
}

func word(hi, lo byte) uint16 { return uint16(hi)<<8 | uint16(lo) }

func (r *Registers) AF() uint16 { return word(r.A, r.F) }
func (r *Registers) BC() uint16 { return word(r.B, r.C) }
func (r *Registers) DE() uint16 { return word(r.D, r.E) }
func (r *Registers) HL() uint16 { return word(r.H, r.L) }

// SetAF masks F to keep its low nibble zero, per the hardware invariant.
func (r *Registers) SetAF(v uint16) {
	r.A = byte(v >> 8)
	r.F = byte(v) & 0xF0
}

func (r *Registers) SetBC(v uint16) { r.B = byte(v >> 8); r.C = byte(v) }
func (r *Registers) SetDE(v uint16) { r.D = byte(v >> 8); r.E = byte(v) }
func (r *Registers) SetHL(v uint16) { r.H = byte(v >> 8); r.L = byte(v) }

func (r *Registers) setFlag(bit byte, on bool) {
	if on {
		r.F |= bit
	} else {
		r.F &^= bit
	}
	r.F &= 0xF0
}

// Zf/Nf/Hf/Cf read the flag bits through mask.IsSet (1-indexed from the
// MSB: F's bit 7/6/5/4 are mask positions 1/2/3/4) rather than a bare
// bitwise AND, the same bit-range helper the PPU uses to decode tile rows.
func (r *Registers) Zf() bool { return mask.IsSet(r.F, mask.I1) }
func (r *Registers) Nf() bool { return mask.IsSet(r.F, mask.I2) }
func (r *Registers) Hf() bool { return mask.IsSet(r.F, mask.I3) }
func (r *Registers) Cf() bool { return mask.IsSet(r.F, mask.I4) }

func (r *Registers) SetZf(v bool) { r.setFlag(FlagZ, v) }
func (r *Registers) SetNf(v bool) { r.setFlag(FlagN, v) }
func (r *Registers) SetHf(v bool) { r.setFlag(FlagH, v) }
func (r *Registers) SetCf(v bool) { r.setFlag(FlagC, v) }

// reset restores the canonical post-boot-ROM register state (spec.md §3).
func (r *Registers) reset() {
	r.A, r.F = 0x01, 0xB0
	r.B, r.C = 0x00, 0x13
	r.D, r.E = 0x00, 0xD8
	r.H, r.L = 0x01, 0x4D
	r.SP = 0xFFFE
	r.PC = 0x0100
}
