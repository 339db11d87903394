package chip8

// instruction is a 16-bit CHIP-8 instruction word.
type instruction uint16

// family returns the high nibble that selects the opcode family.
func (in instruction) family() uint8 { return uint8(in >> 12) }

func (in instruction) x() uint8    { return uint8(in>>8) & 0xF }
func (in instruction) y() uint8    { return uint8(in>>4) & 0xF }
func (in instruction) n() uint8    { return uint8(in) & 0xF }
func (in instruction) kk() uint8   { return uint8(in) }
func (in instruction) nnn() uint16 { return uint16(in) & 0x0FFF }

// effectKind describes how an executed instruction moves the program counter.
type effectKind uint8

const (
	advance effectKind = iota // continue with the next instruction
	skip                      // skip the next instruction
	jump                      // continue at the target address
	halt                      // stay on the current instruction
)

// effect is the program counter effect of an executed instruction.
type effect struct {
	kind   effectKind
	target uint16
}

var (
	next    = effect{kind: advance}
	skipped = effect{kind: skip}
	waiting = effect{kind: halt}
)

func jumpTo(address uint16) effect {
	return effect{kind: jump, target: address}
}

func skipIf(condition bool) effect {
	if condition {
		return skipped
	}
	return next
}

// handler executes a decoded instruction on the machine.
type handler func(m *Machine, in instruction) (effect, error)

// handlerKey identifies an instruction by family and sub key. The sub key is
// the full address field for family 0x0, the low nibble for family 0x8, the
// low byte for the families 0xE and 0xF, and zero for all other families.
type handlerKey struct {
	family uint8
	sub    uint16
}

func (in instruction) key() handlerKey {
	f := in.family()
	switch f {
	case 0x0:
		return handlerKey{family: f, sub: in.nnn()}
	case 0x8:
		return handlerKey{family: f, sub: uint16(in.n())}
	case 0xE, 0xF:
		return handlerKey{family: f, sub: uint16(in.kk())}
	default:
		return handlerKey{family: f}
	}
}

// handlers maps all 35 CHIP-8 instructions except SYS to their handler.
var handlers = map[handlerKey]handler{
	{0x0, 0x0E0}: (*Machine).cls,
	{0x0, 0x0EE}: (*Machine).ret,
	{0x1, 0}:     (*Machine).jp,
	{0x2, 0}:     (*Machine).call,
	{0x3, 0}:     (*Machine).seByte,
	{0x4, 0}:     (*Machine).sneByte,
	{0x5, 0}:     (*Machine).seRegister,
	{0x6, 0}:     (*Machine).ldByte,
	{0x7, 0}:     (*Machine).addByte,
	{0x8, 0x0}:   (*Machine).ldRegister,
	{0x8, 0x1}:   (*Machine).or,
	{0x8, 0x2}:   (*Machine).and,
	{0x8, 0x3}:   (*Machine).xor,
	{0x8, 0x4}:   (*Machine).addRegister,
	{0x8, 0x5}:   (*Machine).sub,
	{0x8, 0x6}:   (*Machine).shr,
	{0x8, 0x7}:   (*Machine).subn,
	{0x8, 0xE}:   (*Machine).shl,
	{0x9, 0}:     (*Machine).sneRegister,
	{0xA, 0}:     (*Machine).ldIndex,
	{0xB, 0}:     (*Machine).jpOffset,
	{0xC, 0}:     (*Machine).rnd,
	{0xD, 0}:     (*Machine).drw,
	{0xE, 0x9E}:  (*Machine).skp,
	{0xE, 0xA1}:  (*Machine).sknp,
	{0xF, 0x07}:  (*Machine).ldFromDelay,
	{0xF, 0x0A}:  (*Machine).ldKey,
	{0xF, 0x15}:  (*Machine).ldDelay,
	{0xF, 0x18}:  (*Machine).ldSound,
	{0xF, 0x1E}:  (*Machine).addIndex,
	{0xF, 0x29}:  (*Machine).ldFont,
	{0xF, 0x33}:  (*Machine).ldBCD,
	{0xF, 0x55}:  (*Machine).store,
	{0xF, 0x65}:  (*Machine).load,
}

// decode returns the handler for the instruction word.
func decode(in instruction) (handler, bool) {
	h, ok := handlers[in.key()]
	return h, ok
}
