package chip8

// Timers are the delay and sound countdown timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements both non zero timers by one and reports whether the
// sound timer reached zero, which is the signal for a beep.
func (t *Timers) Tick() bool {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound == 0 {
		return false
	}
	t.Sound--
	return t.Sound == 0
}
