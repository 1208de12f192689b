package cpu

// The 256-entry base opcode table. Regular blocks (8x8 LD r,r', the ALU
// block, INC/DEC r, rr-indexed groups, conditional branch/call/return, RST,
// PUSH/POP) are generated by loops in init(); irregular single-opcode
// instructions are assigned individually below. Opcodes with no entry keep
// the zero Opcode{} (Exec == nil), which Step's decoder turns into a
// *DecodeError — this is how the real-hardware-illegal bytes (0xD3, 0xDB,
// 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD) are handled: fatal,
// per spec's error-handling policy, with no special-case table.

var baseTable [256]Opcode

// rr16 maps the 2-bit group used by INC rr/DEC rr/ADD HL,rr/LD rr,nn.
func getRR16(c *Cpu, i int) uint16 {
	switch i {
	case 0:
		return c.R.BC()
	case 1:
		return c.R.DE()
	case 2:
		return c.R.HL()
	default:
		return c.R.SP
	}
}

func setRR16(c *Cpu, i int, v uint16) {
	switch i {
	case 0:
		c.R.SetBC(v)
	case 1:
		c.R.SetDE(v)
	case 2:
		c.R.SetHL(v)
	default:
		c.R.SP = v
	}
}

// rr16 group used by PUSH/POP, where index 3 is AF rather than SP.
func getRR16Stk(c *Cpu, i int) uint16 {
	if i == 3 {
		return c.R.AF()
	}
	return getRR16(c, i)
}

func setRR16Stk(c *Cpu, i int, v uint16) {
	if i == 3 {
		c.R.SetAF(v)
		return
	}
	setRR16(c, i, v)
}

var rr16Name = [4]string{"BC", "DE", "HL", "SP"}
var rr16StkName = [4]string{"BC", "DE", "HL", "AF"}

func cond(c *Cpu, i int) bool {
	switch i {
	case 0:
		return !c.R.Zf()
	case 1:
		return c.R.Zf()
	case 2:
		return !c.R.Cf()
	default:
		return c.R.Cf()
	}
}

var condName = [4]string{"NZ", "Z", "NC", "C"}

func init() {
	baseTable[0x00] = Opcode{Name: "NOP", Exec: func(c *Cpu) int { return 1 }}

	// 0x01/0x11/0x21/0x31: LD rr,nn
	for i := 0; i < 4; i++ {
		i := i
		baseTable[0x01|i<<4] = Opcode{Name: "LD " + rr16Name[i] + ",nn", Exec: func(c *Cpu) int {
			setRR16(c, i, c.fetch16())
			return 3
		}}
		// 0x03/0x13/0x23/0x33: INC rr
		baseTable[0x03|i<<4] = Opcode{Name: "INC " + rr16Name[i], Exec: func(c *Cpu) int {
			setRR16(c, i, getRR16(c, i)+1)
			return 2
		}}
		// 0x0B/0x1B/0x2B/0x3B: DEC rr
		baseTable[0x0B|i<<4] = Opcode{Name: "DEC " + rr16Name[i], Exec: func(c *Cpu) int {
			setRR16(c, i, getRR16(c, i)-1)
			return 2
		}}
		// 0x09/0x19/0x29/0x39: ADD HL,rr
		baseTable[0x09|i<<4] = Opcode{Name: "ADD HL," + rr16Name[i], Exec: func(c *Cpu) int {
			c.addHL(getRR16(c, i))
			return 2
		}}
	}

	// LD (BC),A / LD (DE),A / LD (HL+),A / LD (HL-),A
	baseTable[0x02] = Opcode{Name: "LD (BC),A", Exec: func(c *Cpu) int { c.write8(c.R.BC(), c.R.A); return 2 }}
	baseTable[0x12] = Opcode{Name: "LD (DE),A", Exec: func(c *Cpu) int { c.write8(c.R.DE(), c.R.A); return 2 }}
	baseTable[0x22] = Opcode{Name: "LD (HL+),A", Exec: func(c *Cpu) int {
		c.write8(c.R.HL(), c.R.A)
		c.R.SetHL(c.R.HL() + 1)
		return 2
	}}
	baseTable[0x32] = Opcode{Name: "LD (HL-),A", Exec: func(c *Cpu) int {
		c.write8(c.R.HL(), c.R.A)
		c.R.SetHL(c.R.HL() - 1)
		return 2
	}}
	baseTable[0x0A] = Opcode{Name: "LD A,(BC)", Exec: func(c *Cpu) int { c.R.A = c.read8(c.R.BC()); return 2 }}
	baseTable[0x1A] = Opcode{Name: "LD A,(DE)", Exec: func(c *Cpu) int { c.R.A = c.read8(c.R.DE()); return 2 }}
	baseTable[0x2A] = Opcode{Name: "LD A,(HL+)", Exec: func(c *Cpu) int {
		c.R.A = c.read8(c.R.HL())
		c.R.SetHL(c.R.HL() + 1)
		return 2
	}}
	baseTable[0x3A] = Opcode{Name: "LD A,(HL-)", Exec: func(c *Cpu) int {
		c.R.A = c.read8(c.R.HL())
		c.R.SetHL(c.R.HL() - 1)
		return 2
	}}

	// INC r / DEC r / LD r,n for the 8 operand slots (6 == (HL) costs more).
	for reg := 0; reg < 8; reg++ {
		reg := reg
		incCost, decCost, ldCost := 1, 1, 2
		if reg == 6 {
			incCost, decCost, ldCost = 3, 3, 3
		}
		baseTable[0x04|reg<<3] = Opcode{Name: "INC " + regName8[reg], Exec: func(c *Cpu) int {
			setR8(c, reg, c.inc8(getR8(c, reg)))
			return incCost
		}}
		baseTable[0x05|reg<<3] = Opcode{Name: "DEC " + regName8[reg], Exec: func(c *Cpu) int {
			setR8(c, reg, c.dec8(getR8(c, reg)))
			return decCost
		}}
		baseTable[0x06|reg<<3] = Opcode{Name: "LD " + regName8[reg] + ",n", Exec: func(c *Cpu) int {
			setR8(c, reg, c.fetch8())
			return ldCost
		}}
	}

	baseTable[0x07] = Opcode{Name: "RLCA", Exec: func(c *Cpu) int {
		c.R.A = c.rlc(c.R.A)
		c.R.SetZf(false)
		return 1
	}}
	baseTable[0x0F] = Opcode{Name: "RRCA", Exec: func(c *Cpu) int {
		c.R.A = c.rrc(c.R.A)
		c.R.SetZf(false)
		return 1
	}}
	baseTable[0x17] = Opcode{Name: "RLA", Exec: func(c *Cpu) int {
		c.R.A = c.rl(c.R.A)
		c.R.SetZf(false)
		return 1
	}}
	baseTable[0x1F] = Opcode{Name: "RRA", Exec: func(c *Cpu) int {
		c.R.A = c.rr(c.R.A)
		c.R.SetZf(false)
		return 1
	}}

	baseTable[0x08] = Opcode{Name: "LD (nn),SP", Exec: func(c *Cpu) int {
		addr := c.fetch16()
		c.write8(addr, byte(c.R.SP))
		c.write8(addr+1, byte(c.R.SP>>8))
		return 5
	}}

	baseTable[0x10] = Opcode{Name: "STOP", Exec: func(c *Cpu) int {
		c.stopped = true
		return 1
	}}

	baseTable[0x18] = Opcode{Name: "JR e", Exec: func(c *Cpu) int {
		d := int8(c.fetch8())
		c.R.PC = uint16(int32(c.R.PC) + int32(d))
		return 3
	}}
	for i := 0; i < 4; i++ {
		i := i
		baseTable[0x20|i<<3] = Opcode{Name: "JR " + condName[i] + ",e", Exec: func(c *Cpu) int {
			d := int8(c.fetch8())
			if cond(c, i) {
				c.R.PC = uint16(int32(c.R.PC) + int32(d))
				return 3
			}
			return 2
		}}
	}

	baseTable[0x27] = Opcode{Name: "DAA", Exec: func(c *Cpu) int { c.daa(); return 1 }}
	baseTable[0x2F] = Opcode{Name: "CPL", Exec: func(c *Cpu) int { c.cpl(); return 1 }}
	baseTable[0x37] = Opcode{Name: "SCF", Exec: func(c *Cpu) int { c.scf(); return 1 }}
	baseTable[0x3F] = Opcode{Name: "CCF", Exec: func(c *Cpu) int { c.ccf(); return 1 }}

	baseTable[0x76] = Opcode{Name: "HALT", Exec: func(c *Cpu) int {
		c.halted = true
		return 1
	}}

	// 0x40-0x7F: LD r,r' for all (dst, src) pairs except 0x76 (HALT, above).
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := byte(0x40 | dst<<3 | src)
			if op == 0x76 {
				continue
			}
			dst, src := dst, src
			cost := 1
			if dst == 6 || src == 6 {
				cost = 2
			}
			baseTable[op] = Opcode{Name: "LD " + regName8[dst] + "," + regName8[src], Exec: func(c *Cpu) int {
				setR8(c, dst, getR8(c, src))
				return cost
			}}
		}
	}

	// 0x80-0xBF: ALU A,r
	aluOps := [8]func(*Cpu, byte){
		(*Cpu).add8, (*Cpu).adc8, (*Cpu).sub, (*Cpu).sbc,
		(*Cpu).and, (*Cpu).xor, (*Cpu).or, (*Cpu).cp,
	}
	aluName := [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	for g := 0; g < 8; g++ {
		fn := aluOps[g]
		for reg := 0; reg < 8; reg++ {
			op := byte(0x80 | g<<3 | reg)
			reg, fn := reg, fn
			cost := 1
			if reg == 6 {
				cost = 2
			}
			baseTable[op] = Opcode{Name: aluName[g] + " A," + regName8[reg], Exec: func(c *Cpu) int {
				fn(c, getR8(c, reg))
				return cost
			}}
		}
	}
	// 0xC6/0xCE/0xD6/0xDE/0xE6/0xEE/0xF6/0xFE: ALU A,n
	for g := 0; g < 8; g++ {
		fn := aluOps[g]
		op := byte(0xC6 | g<<3)
		baseTable[op] = Opcode{Name: aluName[g] + " A,n", Exec: func(c *Cpu) int {
			fn(c, c.fetch8())
			return 2
		}}
	}

	// RET cc / POP rr / JP cc,nn / CALL cc,nn / PUSH rr / RST n
	for i := 0; i < 4; i++ {
		i := i
		baseTable[0xC0|i<<3] = Opcode{Name: "RET " + condName[i], Exec: func(c *Cpu) int {
			if cond(c, i) {
				c.R.PC = c.pop16()
				return 5
			}
			return 2
		}}
		baseTable[0xC1|i<<4] = Opcode{Name: "POP " + rr16StkName[i], Exec: func(c *Cpu) int {
			setRR16Stk(c, i, c.pop16())
			return 3
		}}
		baseTable[0xC5|i<<4] = Opcode{Name: "PUSH " + rr16StkName[i], Exec: func(c *Cpu) int {
			c.push16(getRR16Stk(c, i))
			return 4
		}}
		baseTable[0xC2|i<<3] = Opcode{Name: "JP " + condName[i] + ",nn", Exec: func(c *Cpu) int {
			addr := c.fetch16()
			if cond(c, i) {
				c.R.PC = addr
				return 4
			}
			return 3
		}}
		baseTable[0xC4|i<<3] = Opcode{Name: "CALL " + condName[i] + ",nn", Exec: func(c *Cpu) int {
			addr := c.fetch16()
			if cond(c, i) {
				c.push16(c.R.PC)
				c.R.PC = addr
				return 6
			}
			return 3
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		vec := uint16(n * 8)
		baseTable[0xC7|n<<3] = Opcode{Name: "RST", Exec: func(c *Cpu) int {
			c.push16(c.R.PC)
			c.R.PC = vec
			return 4
		}}
	}

	baseTable[0xC3] = Opcode{Name: "JP nn", Exec: func(c *Cpu) int { c.R.PC = c.fetch16(); return 4 }}
	baseTable[0xC9] = Opcode{Name: "RET", Exec: func(c *Cpu) int { c.R.PC = c.pop16(); return 4 }}
	baseTable[0xD9] = Opcode{Name: "RETI", Exec: func(c *Cpu) int {
		c.R.PC = c.pop16()
		c.IME = true
		return 4
	}}
	baseTable[0xCD] = Opcode{Name: "CALL nn", Exec: func(c *Cpu) int {
		addr := c.fetch16()
		c.push16(c.R.PC)
		c.R.PC = addr
		return 6
	}}
	baseTable[0xE9] = Opcode{Name: "JP (HL)", Exec: func(c *Cpu) int { c.R.PC = c.R.HL(); return 1 }}

	baseTable[0xE0] = Opcode{Name: "LDH (n),A", Exec: func(c *Cpu) int {
		c.write8(0xFF00+uint16(c.fetch8()), c.R.A)
		return 3
	}}
	baseTable[0xF0] = Opcode{Name: "LDH A,(n)", Exec: func(c *Cpu) int {
		c.R.A = c.read8(0xFF00 + uint16(c.fetch8()))
		return 3
	}}
	baseTable[0xE2] = Opcode{Name: "LD (C),A", Exec: func(c *Cpu) int {
		c.write8(0xFF00+uint16(c.R.C), c.R.A)
		return 2
	}}
	baseTable[0xF2] = Opcode{Name: "LD A,(C)", Exec: func(c *Cpu) int {
		c.R.A = c.read8(0xFF00 + uint16(c.R.C))
		return 2
	}}
	baseTable[0xEA] = Opcode{Name: "LD (nn),A", Exec: func(c *Cpu) int {
		c.write8(c.fetch16(), c.R.A)
		return 4
	}}
	baseTable[0xFA] = Opcode{Name: "LD A,(nn)", Exec: func(c *Cpu) int {
		c.R.A = c.read8(c.fetch16())
		return 4
	}}

	baseTable[0xE8] = Opcode{Name: "ADD SP,i8", Exec: func(c *Cpu) int {
		c.R.SP = c.addSPSigned(int8(c.fetch8()))
		return 4
	}}
	baseTable[0xF8] = Opcode{Name: "LD HL,SP+i8", Exec: func(c *Cpu) int {
		c.R.SetHL(c.addSPSigned(int8(c.fetch8())))
		return 3
	}}
	baseTable[0xF9] = Opcode{Name: "LD SP,HL", Exec: func(c *Cpu) int { c.R.SP = c.R.HL(); return 2 }}

	baseTable[0xF3] = Opcode{Name: "DI", Exec: func(c *Cpu) int { c.IME = false; c.eiDelay = 0; return 1 }}
	baseTable[0xFB] = Opcode{Name: "EI", Exec: func(c *Cpu) int { c.eiDelay = 2; return 1 }}
}
