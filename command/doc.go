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

// Package command is the engine behind the textual command language. It is
// used by every command the interpreter understands and has three parts.
//
// The Tokens type is the parse state. TokeniseInput() divides a command line
// into tokens, honouring quotes so that names containing spaces can be
// given, and maintains a cursor pointing at the current token.
//
//	toks, err := command.TokeniseInput(`gfx create region "left lung"`)
//
// The Table type is the option binding table. A handler creates a table for
// every invocation, binding keywords to local variables through a Setter, and
// then calls MultiParse() to consume the remaining tokens:
//
//	var region string
//	var add, remove bool
//	var ids multirange.Ranges
//
//	tbl := command.NewTable()
//	tbl.Add("region", command.String(&region))
//	tbl.Add("add", command.Flag(&add))
//	tbl.Add("remove", command.Flag(&remove))
//	tbl.AddDefault(command.MultiRange(&ids))
//	if err := tbl.MultiParse(toks); err != nil {
//		return err
//	}
//
// The table performs no cross-entry validation. Handlers that have mutually
// exclusive options should call AtMostOne() or ExactlyOne() after parsing.
//
// The Node type is the command router. A tree of nodes is built once, at
// start up, with NewRouter() and NewLeaf(). Dispatch() consumes the keywords
// naming a command and invokes the handler of the leaf with the tokens that
// remain.
//
// Two tokens have special meaning everywhere. The single question mark
// requests help for the current level of the command and the double question
// mark requests help for the current level and everything beneath it. When
// help is requested the engine returns an error of type *Help, carrying the
// usage text, without invoking any setter or handler. A router that runs out
// of tokens returns an error of type *Prompt, which asks the caller to enter
// an interactive prompt for that level of the command. Neither should be
// reported as a failure. The Status() function classifies the error returned
// by Dispatch().
package command
