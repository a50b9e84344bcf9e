// This file is part of cmgui.
//
// cmgui is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmgui is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cmgui.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

package colorterm

import (
	"io"
	"unicode"

	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/console/colorterm/easyterm"
	"github.com/cmgui/cmgui/console/colorterm/easyterm/ansi"
	"github.com/cmgui/cmgui/curated"
)

// TermRead implements the console.Input interface.
func (ct *ColorTerminal) TermRead(prompt console.Prompt, events *console.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	p := prompt.String()

	input := make([]rune, 0, 80)
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input when we scroll through history. we don't want to lose
	// what we've typed in case the user wants to resume where we left off
	var buffInput []rune

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. clear the current line
	//		3. output the prompt and the input
	//		4. move the cursor to the correct position
	for {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		// check for an interrupt signal received since the last rune
		if events != nil {
			select {
			case <-events.IntEvents:
				ct.EasyTerm.TermPrint("\r\n")
				return "", curated.Errorf(console.UserInterrupt)
			default:
			}
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				input = append(s, input[cursor:]...)
				cursor = len(s)
			}
			continue

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			return "", curated.Errorf(console.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\r\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			if len(input) > 0 {
				last := len(ct.commandHistory) - 1
				if last < 0 || string(ct.commandHistory[last].input) != string(input) {
					ct.commandHistory = append(ct.commandHistory, command{input: append([]rune{}, input...)})
				}
			}
			ct.EasyTerm.TermPrint("\r\n")
			return string(input), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = append(input[:0], ct.commandHistory[history].input...)
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = append(input[:0], ct.commandHistory[history].input...)
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append(input[:0], buffInput...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.CursorDelete:
				// delete is followed by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}

		if ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}
	}
}
