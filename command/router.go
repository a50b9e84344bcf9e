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

package command

import (
	"fmt"
	"strings"

	"github.com/cmgui/cmgui/curated"
)

// Handler is the function invoked for a leaf node. The tokens are positioned
// after the keywords that named the leaf.
type Handler func(tokens *Tokens) error

// Node is a single level of the command language. A node with children is a
// router and a node with a handler is a leaf. A node cannot be both.
type Node struct {
	Keyword string
	Summary string

	// what happens when the node is reached and there are no more tokens.
	// for routers this is normally EmptyPrompt
	Empty EmptyMode

	// how tokens are compared to the keywords of the children
	Match MatchMode

	Children []*Node
	Handler  Handler

	// usage text for a leaf. the function is called every time help is
	// requested. if it is nil help tokens are passed to the handler
	Usage func() string

	// candidate words for tab completion of a leaf's arguments. may be nil
	Options func() []string

	parent *Node
}

// NewRouter creates a router node. An exhausted router asks for a prompt and
// children can be abbreviated.
func NewRouter(keyword string, summary string, children ...*Node) *Node {
	n := &Node{
		Keyword: keyword,
		Summary: summary,
		Empty:   EmptyPrompt,
		Match:   MatchAbbreviation,
	}
	n.Add(children...)
	return n
}

// NewLeaf creates a leaf node.
func NewLeaf(keyword string, summary string, empty EmptyMode, handler Handler) *Node {
	return &Node{
		Keyword: keyword,
		Summary: summary,
		Empty:   empty,
		Handler: handler,
	}
}

// WithUsage sets the usage function of a leaf node and returns the node.
func (n *Node) WithUsage(usage func() string) *Node {
	n.Usage = usage
	return n
}

// WithOptions sets the tab completion function of a leaf node and returns
// the node.
func (n *Node) WithOptions(options func() []string) *Node {
	n.Options = options
	return n
}

// Add children to a router node.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		c.parent = n
		n.Children = append(n.Children, c)
	}
	invalidateHelp(n)
}

// invalidateHelp removes cached help for the node and all its ancestors.
func invalidateHelp(n *Node) {
	for ; n != nil; n = n.parent {
		helpCache.Delete(helpCacheKey(n, HelpOneLevel))
		helpCache.Delete(helpCacheKey(n, HelpRecursive))
	}
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Path returns the keywords from the root of the tree to the node. Nodes
// without a keyword, such as the root, are not included.
func (n *Node) Path() []string {
	p := make([]string, 0)
	for ; n != nil; n = n.parent {
		if n.Keyword != "" {
			p = append([]string{n.Keyword}, p...)
		}
	}
	return p
}

// PathString returns Path() as a single string.
func (n *Node) PathString() string {
	return strings.Join(n.Path(), " ")
}

// Keywords returns the keywords of the node's children.
func (n *Node) Keywords() []string {
	kws := make([]string, len(n.Children))
	for i, c := range n.Children {
		kws[i] = c.Keyword
	}
	return kws
}

// Child returns the child matched by the token or nil.
func (n *Node) Child(tok string) *Node {
	i := match(n.Keywords(), tok, n.Match)
	if i < 0 {
		return nil
	}
	return n.Children[i]
}

// Find walks the tree from the node using the list of keywords. Returns nil
// if the path does not exist.
func (n *Node) Find(path ...string) *Node {
	for _, k := range path {
		if n = n.Child(k); n == nil {
			return nil
		}
	}
	return n
}

// Resolution is the result of Resolve().
type Resolution struct {
	// the node at which resolution stopped. it is either a leaf or a router
	// for which there were no more tokens
	Node *Node

	// non-zero if a help token stopped resolution
	Help HelpLevel
}

// Resolve consumes tokens naming nodes in the tree. Resolution stops at a
// leaf, when the tokens are exhausted or when a help token is found. If a
// token does not match any child the UnknownOption error is returned and the
// cursor points at the unmatched token.
func (n *Node) Resolve(tokens *Tokens) (Resolution, error) {
	cur := n

	for !cur.IsLeaf() {
		tok, ok := tokens.Current()
		if !ok {
			return Resolution{Node: cur}, nil
		}

		if lvl := HelpLevelOf(tok); lvl != HelpNone {
			tokens.Shift(1)
			return Resolution{Node: cur, Help: lvl}, nil
		}

		c := cur.Child(tok)
		if c == nil {
			return Resolution{Node: cur}, unknownOption(tokens, tok, cur.Keywords())
		}

		tokens.Shift(1)
		cur = c
	}

	// leaves handle their own help unless there is a usage function
	if cur.Usage != nil {
		if tok, ok := tokens.Current(); ok {
			if lvl := HelpLevelOf(tok); lvl != HelpNone {
				tokens.Shift(1)
				return Resolution{Node: cur, Help: lvl}, nil
			}
		}
	}

	return Resolution{Node: cur}, nil
}

// Dispatch resolves the tokens and invokes the handler of the resulting leaf.
//
// Returns *Help if help was requested and *Prompt if the tokens were exhausted
// at a router with the EmptyPrompt mode. Use StatusOf() to classify the
// returned error.
func (n *Node) Dispatch(tokens *Tokens) error {
	res, err := n.Resolve(tokens)
	if err != nil {
		return err
	}

	if res.Help != HelpNone {
		return &Help{
			Level: res.Help,
			Path:  res.Node.PathString(),
			Usage: res.Node.HelpText(res.Help),
		}
	}

	if !res.Node.IsLeaf() {
		switch res.Node.Empty {
		case EmptyPrompt:
			return &Prompt{Path: res.Node.Path()}
		case EmptyRequired:
			return curated.Parsef(MissingArgument, res.Node.PathString())
		}
		return nil
	}

	if tokens.Remaining() == 0 && res.Node.Empty == EmptyRequired {
		u := res.Node.PathString()
		if res.Node.Usage != nil {
			u = fmt.Sprintf("%s %s", u, res.Node.Usage())
		}
		return curated.Parsef(MissingArgument, u)
	}

	if res.Node.Handler == nil {
		return curated.Enginef("command has no handler: %s", res.Node.PathString())
	}

	return res.Node.Handler(tokens)
}

// HelpText returns the help for the node. Help for router nodes is cached.
func (n *Node) HelpText(level HelpLevel) string {
	if n.IsLeaf() {
		var s strings.Builder
		n.leafHelp(&s, "")
		return strings.TrimRight(s.String(), "\n")
	}

	key := helpCacheKey(n, level)
	if h, ok := helpCache.Get(key); ok {
		return h.(string)
	}

	var s strings.Builder
	n.routerHelp(&s, level, "")
	h := strings.TrimRight(s.String(), "\n")
	helpCache.SetDefault(key, h)

	return h
}

func (n *Node) leafHelp(s *strings.Builder, indent string) {
	s.WriteString(indent)
	s.WriteString(n.Keyword)
	if n.Summary != "" {
		s.WriteString(": ")
		s.WriteString(n.Summary)
	}
	s.WriteString("\n")

	if n.Usage != nil {
		for _, l := range strings.Split(n.Usage(), "\n") {
			if l == "" {
				continue
			}
			s.WriteString(indent)
			s.WriteString(usageIndent)
			s.WriteString(l)
			s.WriteString("\n")
		}
	}
}

func (n *Node) routerHelp(s *strings.Builder, level HelpLevel, indent string) {
	if p := n.PathString(); p != "" && indent == "" {
		s.WriteString(p)
		if n.Summary != "" {
			s.WriteString(": ")
			s.WriteString(n.Summary)
		}
		s.WriteString("\n")
	}

	w := 0
	for _, c := range n.Children {
		w = max(w, len(c.Keyword))
	}

	for _, c := range n.Children {
		if level == HelpRecursive {
			if c.IsLeaf() {
				c.leafHelp(s, indent+usageIndent)
			} else {
				s.WriteString(fmt.Sprintf("%s%s%s\n", indent, usageIndent, c.Keyword))
				c.routerHelp(s, level, indent+usageIndent)
			}
			continue
		}
		s.WriteString(fmt.Sprintf("%s%s%-*s  %s\n", indent, usageIndent, w, c.Keyword, c.Summary))
	}
}
