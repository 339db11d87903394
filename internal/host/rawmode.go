package host

import (
	"fmt"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawMode holds the terminal settings to restore.
type rawMode struct {
	fd    uintptr
	saved unix.Termios
}

// enableRawMode disables line buffering, echo and signal generation so that
// every key press, including Ctrl-C, is read as a single byte.
func enableRawMode(fd uintptr) (*rawMode, error) {
	mode := &rawMode{fd: fd}
	if err := termios.Tcgetattr(fd, &mode.saved); err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	raw := mode.saved
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &raw); err != nil {
		return nil, fmt.Errorf("setting terminal attributes: %w", err)
	}
	return mode, nil
}

func (m *rawMode) restore() error {
	if err := termios.Tcsetattr(m.fd, termios.TCSANOW, &m.saved); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}
