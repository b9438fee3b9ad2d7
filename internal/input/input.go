// Package input decodes terminal key bytes into viewport commands. It is
// a pure mapping: no I/O, and unrecognized sequences simply decode to
// nothing rather than erroring.
package input

import tea "github.com/charmbracelet/bubbletea"

// Command is one discrete viewport mutation.
type Command int

const (
	ScrollUp Command = iota + 1
	ScrollDown
	ScrollLeft
	ScrollRight
	PageUp
	PageDown
	JumpStart
	JumpEnd
	ToggleLife
	ShowInfo
	Quit
)

const esc = 0x1b

// Decode maps a raw key or escape sequence to a Command. A lone ESC
// quits; CSI and SS3 arrow sequences scroll; `ESC [ 5 ~` and `ESC [ 6 ~`
// page. Anything else returns (0, false).
func Decode(seq []byte) (Command, bool) {
	switch len(seq) {
	case 1:
		switch seq[0] {
		case esc, 'q', 'Q':
			return Quit, true
		case 'i', 'I':
			return ShowInfo, true
		case 'h', 'H':
			return ScrollLeft, true
		case 'j', 'J':
			return ScrollDown, true
		case 'k', 'K':
			return ScrollUp, true
		case 'l', 'L':
			return ScrollRight, true
		case 'r', 'R':
			return ToggleLife, true
		}
	case 3:
		if seq[0] != esc || (seq[1] != '[' && seq[1] != 'O') {
			return 0, false
		}
		switch seq[2] {
		case 'A':
			return ScrollUp, true
		case 'B':
			return ScrollDown, true
		case 'C':
			return ScrollRight, true
		case 'D':
			return ScrollLeft, true
		case 'F':
			return JumpEnd, true
		case 'H':
			return JumpStart, true
		}
	case 4:
		if seq[0] == esc && seq[1] == '[' && seq[3] == '~' {
			switch seq[2] {
			case '5':
				return PageUp, true
			case '6':
				return PageDown, true
			}
		}
	}
	return 0, false
}

// DecodeKey translates a bubbletea key event into the same command set,
// for the interactive viewer where bubbletea owns the raw terminal.
func DecodeKey(msg tea.KeyMsg) (Command, bool) {
	switch msg.String() {
	case "q", "Q", "esc", "ctrl+c":
		return Quit, true
	case "i", "I":
		return ShowInfo, true
	case "h", "H", "left":
		return ScrollLeft, true
	case "j", "J", "down":
		return ScrollDown, true
	case "k", "K", "up":
		return ScrollUp, true
	case "l", "L", "right":
		return ScrollRight, true
	case "r", "R":
		return ToggleLife, true
	case "home":
		return JumpStart, true
	case "end":
		return JumpEnd, true
	case "pgup":
		return PageUp, true
	case "pgdown":
		return PageDown, true
	}
	return 0, false
}
