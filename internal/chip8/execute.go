package chip8

import "fmt"

// 00E0 - CLS
func (m *Machine) cls(instruction) (effect, error) {
	m.display.Clear()
	return next, nil
}

// 00EE - RET
// The call pushed its own address, execution resumes after it.
func (m *Machine) ret(instruction) (effect, error) {
	address, err := m.pop()
	if err != nil {
		return effect{}, err
	}
	return jumpTo(address + instructionSize), nil
}

// 1nnn - JP addr
func (m *Machine) jp(in instruction) (effect, error) {
	return jumpTo(in.nnn()), nil
}

// 2nnn - CALL addr
func (m *Machine) call(in instruction) (effect, error) {
	if err := m.push(m.pc); err != nil {
		return effect{}, err
	}
	return jumpTo(in.nnn()), nil
}

// 3xkk - SE Vx, byte
func (m *Machine) seByte(in instruction) (effect, error) {
	return skipIf(m.v[in.x()] == in.kk()), nil
}

// 4xkk - SNE Vx, byte
func (m *Machine) sneByte(in instruction) (effect, error) {
	return skipIf(m.v[in.x()] != in.kk()), nil
}

// 5xy0 - SE Vx, Vy
func (m *Machine) seRegister(in instruction) (effect, error) {
	return skipIf(m.v[in.x()] == m.v[in.y()]), nil
}

// 6xkk - LD Vx, byte
func (m *Machine) ldByte(in instruction) (effect, error) {
	m.v[in.x()] = in.kk()
	return next, nil
}

// 7xkk - ADD Vx, byte
func (m *Machine) addByte(in instruction) (effect, error) {
	m.v[in.x()] += in.kk()
	return next, nil
}

// 8xy0 - LD Vx, Vy
func (m *Machine) ldRegister(in instruction) (effect, error) {
	m.v[in.x()] = m.v[in.y()]
	return next, nil
}

// 8xy1 - OR Vx, Vy
func (m *Machine) or(in instruction) (effect, error) {
	m.v[in.x()] |= m.v[in.y()]
	return next, nil
}

// 8xy2 - AND Vx, Vy
func (m *Machine) and(in instruction) (effect, error) {
	m.v[in.x()] &= m.v[in.y()]
	return next, nil
}

// 8xy3 - XOR Vx, Vy
func (m *Machine) xor(in instruction) (effect, error) {
	m.v[in.x()] ^= m.v[in.y()]
	return next, nil
}

// The flag producing ALU instructions write VF before the result, so with
// x = F the result ends up in VF.

// 8xy4 - ADD Vx, Vy
func (m *Machine) addRegister(in instruction) (effect, error) {
	x, y := m.v[in.x()], m.v[in.y()]
	sum := uint16(x) + uint16(y)
	m.v[FlagRegister] = flag(sum > 0xFF)
	m.v[in.x()] = uint8(sum)
	return next, nil
}

// 8xy5 - SUB Vx, Vy
func (m *Machine) sub(in instruction) (effect, error) {
	x, y := m.v[in.x()], m.v[in.y()]
	m.v[FlagRegister] = flag(x > y)
	m.v[in.x()] = x - y
	return next, nil
}

// 8xy6 - SHR Vx
func (m *Machine) shr(in instruction) (effect, error) {
	x := m.v[in.x()]
	m.v[FlagRegister] = x & 0x01
	m.v[in.x()] = x >> 1
	return next, nil
}

// 8xy7 - SUBN Vx, Vy
func (m *Machine) subn(in instruction) (effect, error) {
	x, y := m.v[in.x()], m.v[in.y()]
	m.v[FlagRegister] = flag(y > x)
	m.v[in.x()] = y - x
	return next, nil
}

// 8xyE - SHL Vx
func (m *Machine) shl(in instruction) (effect, error) {
	x := m.v[in.x()]
	m.v[FlagRegister] = x >> 7
	m.v[in.x()] = x << 1
	return next, nil
}

// 9xy0 - SNE Vx, Vy
func (m *Machine) sneRegister(in instruction) (effect, error) {
	return skipIf(m.v[in.x()] != m.v[in.y()]), nil
}

// Annn - LD I, addr
func (m *Machine) ldIndex(in instruction) (effect, error) {
	m.i = in.nnn()
	return next, nil
}

// Bnnn - JP V0, addr
func (m *Machine) jpOffset(in instruction) (effect, error) {
	return jumpTo(in.nnn() + uint16(m.v[0])), nil
}

// Cxkk - RND Vx, byte
func (m *Machine) rnd(in instruction) (effect, error) {
	m.v[in.x()] = m.random.Byte() & in.kk()
	return next, nil
}

// Dxyn - DRW Vx, Vy, nibble
func (m *Machine) drw(in instruction) (effect, error) {
	sprite, err := m.memory.ReadBytes(m.i, int(in.n()))
	if err != nil {
		return effect{}, fmt.Errorf("reading sprite: %w", err)
	}
	collision := m.display.DrawSprite(m.v[in.x()], m.v[in.y()], sprite)
	m.v[FlagRegister] = flag(collision)
	return next, nil
}

// Ex9E - SKP Vx
func (m *Machine) skp(in instruction) (effect, error) {
	return skipIf(m.keypad.IsPressed(m.v[in.x()])), nil
}

// ExA1 - SKNP Vx
func (m *Machine) sknp(in instruction) (effect, error) {
	return skipIf(!m.keypad.IsPressed(m.v[in.x()])), nil
}

// Fx07 - LD Vx, DT
func (m *Machine) ldFromDelay(in instruction) (effect, error) {
	m.v[in.x()] = m.timers.Delay
	return next, nil
}

// Fx0A - LD Vx, K
func (m *Machine) ldKey(in instruction) (effect, error) {
	if key, ok := m.keypad.FirstPressed(); ok {
		m.v[in.x()] = key
		return next, nil
	}
	m.state = AwaitingKey
	m.waitRegister = in.x()
	return waiting, nil
}

// Fx15 - LD DT, Vx
func (m *Machine) ldDelay(in instruction) (effect, error) {
	m.timers.Delay = m.v[in.x()]
	return next, nil
}

// Fx18 - LD ST, Vx
func (m *Machine) ldSound(in instruction) (effect, error) {
	m.timers.Sound = m.v[in.x()]
	return next, nil
}

// Fx1E - ADD I, Vx
func (m *Machine) addIndex(in instruction) (effect, error) {
	m.i += uint16(m.v[in.x()])
	return next, nil
}

// Fx29 - LD F, Vx
func (m *Machine) ldFont(in instruction) (effect, error) {
	if digit := m.v[in.x()]; digit < 16 {
		m.i = FontAddress(digit)
	}
	return next, nil
}

// Fx33 - LD B, Vx
func (m *Machine) ldBCD(in instruction) (effect, error) {
	value := m.v[in.x()]
	digits := []byte{value / 100, value / 10 % 10, value % 10}
	if err := m.memory.WriteBytes(m.i, digits); err != nil {
		return effect{}, fmt.Errorf("storing BCD: %w", err)
	}
	return next, nil
}

// Fx55 - LD [I], Vx
func (m *Machine) store(in instruction) (effect, error) {
	if err := m.memory.WriteBytes(m.i, m.v[:in.x()+1]); err != nil {
		return effect{}, fmt.Errorf("storing registers: %w", err)
	}
	return next, nil
}

// Fx65 - LD Vx, [I]
func (m *Machine) load(in instruction) (effect, error) {
	values, err := m.memory.ReadBytes(m.i, int(in.x())+1)
	if err != nil {
		return effect{}, fmt.Errorf("loading registers: %w", err)
	}
	copy(m.v[:], values)
	return next, nil
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
