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

package interpreter

import (
	"fmt"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/model"
)

// release the scope when a handler returns. an error from the release is
// returned by the handler unless the handler has already failed.
func release(scope *model.Scope, err *error) {
	if e := scope.Release(); e != nil && *err == nil {
		*err = e
	}
}

// once is a positional setter that accepts a single token. a second
// positional token is an unknown option.
func once(label string, target *string) command.Setter {
	set := false
	return command.Func(label, func(tokens *command.Tokens, _ string) error {
		tok, ok := tokens.Current()
		if !ok {
			return curated.Parsef(command.MissingArgument, label)
		}
		if set {
			return curated.Parsef(command.UnknownOption, tok, fmt.Sprintf(" (%s)", tokens.Location()))
		}
		tokens.Shift(1)
		*target = tok
		set = true
		return nil
	})
}

// options are implemented by the option types of the commands. the table is
// bound to the fields of the option type.
type options interface {
	table() *command.Table
}

// usage returns a function suitable for command.Node.WithUsage(). the table
// is bound to a throwaway instance of the options type.
func usage[T any, PT interface {
	*T
	options
}]() func() string {
	return func() string {
		var o T
		return PT(&o).table().Usage(command.HelpOneLevel)
	}
}

// mustAdd is used when building tables. the keywords of a table are fixed so
// an error is a programming error.
func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}
