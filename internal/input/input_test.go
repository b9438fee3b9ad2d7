package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		seq  []byte
		want Command
		ok   bool
	}{
		{"escape quits", []byte{0x1b}, Quit, true},
		{"q quits", []byte("q"), Quit, true},
		{"Q quits", []byte("Q"), Quit, true},
		{"i info", []byte("i"), ShowInfo, true},
		{"h left", []byte("h"), ScrollLeft, true},
		{"j down", []byte("j"), ScrollDown, true},
		{"k up", []byte("k"), ScrollUp, true},
		{"l right", []byte("l"), ScrollRight, true},
		{"r life", []byte("r"), ToggleLife, true},
		{"arrow up", []byte{0x1b, '[', 'A'}, ScrollUp, true},
		{"arrow down", []byte{0x1b, '[', 'B'}, ScrollDown, true},
		{"arrow right", []byte{0x1b, '[', 'C'}, ScrollRight, true},
		{"arrow left", []byte{0x1b, '[', 'D'}, ScrollLeft, true},
		{"ss3 arrow up", []byte{0x1b, 'O', 'A'}, ScrollUp, true},
		{"end", []byte{0x1b, '[', 'F'}, JumpEnd, true},
		{"home", []byte{0x1b, '[', 'H'}, JumpStart, true},
		{"page up", []byte{0x1b, '[', '5', '~'}, PageUp, true},
		{"page down", []byte{0x1b, '[', '6', '~'}, PageDown, true},
		{"unknown letter", []byte("x"), 0, false},
		{"unknown csi", []byte{0x1b, '[', 'Z'}, 0, false},
		{"bad csi prefix", []byte{'x', '[', 'A'}, 0, false},
		{"bad tilde suffix", []byte{0x1b, '[', '5', 'x'}, 0, false},
		{"empty", nil, 0, false},
		{"too long", []byte{0x1b, '[', '1', '5', '~'}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decode(tt.seq)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Decode(%v) = (%d, %v), want (%d, %v)", tt.seq, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDecodeKey(t *testing.T) {
	runes := func(r rune) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
		ok   bool
	}{
		{"q quits", runes('q'), Quit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, Quit, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, Quit, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, ScrollUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, ScrollDown, true},
		{"vi left", runes('h'), ScrollLeft, true},
		{"vi right", runes('l'), ScrollRight, true},
		{"life toggle", runes('r'), ToggleLife, true},
		{"info", runes('i'), ShowInfo, true},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, JumpStart, true},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, JumpEnd, true},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, PageUp, true},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, PageDown, true},
		{"unknown rune ignored", runes('x'), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeKey(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DecodeKey(%q) = (%d, %v), want (%d, %v)", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}
