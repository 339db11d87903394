// Package chip8 provides the CHIP-8 virtual machine.
// The machine owns the 4KB memory image, the register file, the call stack,
// the 64x32 display buffer, the keypad state and the delay and sound timers.
// A host drives it by calling Step once per frame tick.
package chip8

import "fmt"

// CHIP-8 memory and machine layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Font sprites for the hexadecimal digits 0-F
//	0x050-0x1FF: Unused interpreter area
//	0x200-0xFFF: Program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address that programs are loaded to and where execution starts.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	// StackSize is the number of return addresses the call stack can hold.
	StackSize = 16

	// FlagRegister is the index of VF, the carry, borrow and collision flag.
	FlagRegister = 0xF

	instructionSize = 2
)

// State is the execution state of the machine.
type State int

const (
	// Running executes one instruction per cycle.
	Running State = iota
	// AwaitingKey blocks until a key is held, then stores it into the wait register.
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option configures a machine on creation.
type Option func(*Machine)

// WithRandom sets the random byte source used by the RND instruction.
func WithRandom(random Random) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithTimersWhileWaiting controls whether the delay and sound timers keep
// counting down while the machine is blocked on a key wait. By default the
// timers are frozen until a key is pressed.
func WithTimersWhileWaiting(enabled bool) Option {
	return func(m *Machine) {
		m.timersWhileWaiting = enabled
	}
}

// Machine is the complete state of a CHIP-8 virtual machine.
// It is not safe for concurrent use, the host owns it exclusively.
type Machine struct {
	memory  Memory
	display Display
	keypad  Keypad
	timers  Timers

	v     [RegisterCount]uint8
	i     uint16
	pc    uint16
	stack [StackSize]uint16
	sp    uint8

	state        State
	waitRegister uint8

	random             Random
	timersWhileWaiting bool
}

// New returns a new machine with the font loaded and the program counter
// set to the program start address.
func New(opts ...Option) *Machine {
	m := &Machine{
		pc: ProgramStart,
	}
	m.memory.loadFont()

	for _, opt := range opts {
		opt(m)
	}
	if m.random == nil {
		m.random = NewRandom(0)
	}
	return m
}

// Load copies the program image into memory at the program start address.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	if err := m.memory.WriteBytes(ProgramStart, program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return nil
}

// Display returns the display buffer.
func (m *Machine) Display() *Display {
	return &m.display
}

// Keypad returns the keypad state that the host updates between cycles.
func (m *Machine) Keypad() *Keypad {
	return &m.keypad
}

// Memory returns the memory of the machine.
func (m *Machine) Memory() *Memory {
	return &m.memory
}

// V returns the value of the general purpose register with the given index.
func (m *Machine) V(register uint8) uint8 {
	return m.v[register&0xF]
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SP returns the stack pointer.
func (m *Machine) SP() uint8 {
	return m.sp
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.timers.Delay
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.timers.Sound
}

// State returns the execution state.
func (m *Machine) State() State {
	return m.state
}

func (m *Machine) push(address uint16) error {
	if int(m.sp) >= StackSize {
		return fmt.Errorf("%w: return address $%03X", ErrStackOverflow, address)
	}
	m.stack[m.sp] = address
	m.sp++
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}
