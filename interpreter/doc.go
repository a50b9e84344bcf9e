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

// Package interpreter is the cmgui command interpreter. It builds the tree of
// commands, reads input from a console.Terminal or from comfiles and
// dispatches each command to its handler.
//
// Every handler follows the same pattern. A model.Scope is created for the
// objects the command borrows from the store, a fresh command.Table is bound
// to local variables and parsed, combinations of options are validated and
// only then is the store changed:
//
//	func (intr *Interpreter) gfxDestroyField(tokens *command.Tokens) (err error) {
//		scope := model.NewScope()
//		defer release(scope, &err)
//
//		var opts fieldOptions
//		if err := opts.table().MultiParse(tokens); err != nil {
//			return err
//		}
//		...
//	}
//
// Errors are reported to the terminal prefixed with the path of the command
// that failed. Help requests are printed with the help style and are not
// errors. A command that names a group of commands without naming a command
// in the group enters a prompt for that group, and subsequent input is
// prefixed with the group path until ".." is entered.
//
// The interpreter must be used from the goroutine on which it was created.
package interpreter
