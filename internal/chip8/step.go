package chip8

import "fmt"

// Cycle describes the outcome of a single machine cycle.
type Cycle struct {
	Address uint16 // address of the instruction
	Opcode  uint16 // instruction word
	Beep    bool   // sound timer reached zero during this cycle
	Unknown bool   // instruction word did not decode, only the program counter advanced
	Waiting bool   // machine is blocked waiting for a key
}

// Step runs one machine cycle: it fetches, decodes and executes the instruction
// at the program counter and then ticks the timers.
//
// While the machine is awaiting a key no instruction is fetched. Once a key is
// held its code is stored in the wait register and execution continues after
// the key wait instruction.
//
// Unknown instructions are not an error, they are reported in the returned
// cycle. A returned error is fatal, the machine state is undefined afterwards.
func (m *Machine) Step() (Cycle, error) {
	cycle := Cycle{Address: m.pc}

	word, err := m.memory.ReadWord(m.pc)
	if err != nil {
		return cycle, fmt.Errorf("fetching instruction: %w", err)
	}
	cycle.Opcode = word

	if m.state == AwaitingKey {
		return m.stepAwaitingKey(cycle), nil
	}

	in := instruction(word)
	eff := next
	h, ok := decode(in)
	if ok {
		eff, err = h(m, in)
		if err != nil {
			return cycle, fmt.Errorf("executing $%04X at $%03X: %w", word, m.pc, err)
		}
	} else {
		cycle.Unknown = true
	}

	m.apply(eff)

	if eff.kind == halt {
		cycle.Waiting = true
		if !m.timersWhileWaiting {
			return cycle, nil
		}
	}
	cycle.Beep = m.timers.Tick()
	return cycle, nil
}

func (m *Machine) stepAwaitingKey(cycle Cycle) Cycle {
	key, ok := m.keypad.FirstPressed()
	if !ok {
		cycle.Waiting = true
		if m.timersWhileWaiting {
			cycle.Beep = m.timers.Tick()
		}
		return cycle
	}

	m.v[m.waitRegister] = key
	m.state = Running
	m.apply(next)
	cycle.Beep = m.timers.Tick()
	return cycle
}

func (m *Machine) apply(eff effect) {
	switch eff.kind {
	case advance:
		m.pc += instructionSize
	case skip:
		m.pc += 2 * instructionSize
	case jump:
		m.pc = eff.target
	case halt:
	}
}
