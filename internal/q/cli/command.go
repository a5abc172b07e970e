// Package cli is a small command-tree framework: commands with subcommands, typed flags (local and persistent), positional-arg validation, generated help, and exit
// codes (0 success, 1 failure, 2 usage error).
package cli

// RunFunc is a command handler.
type RunFunc func(c *Context) error

// ArgsFunc validates positional args. It should return a UsageError for user-facing mistakes.
type ArgsFunc func(args []string) error

// Command is one node of a command tree.
type Command struct {
	Name    string   // token that selects this command (ex: "files" in "textdiff files")
	Aliases []string // other tokens that select this command

	Short   string
	Long    string
	Example string

	Args ArgsFunc // optional
	Run  RunFunc  // optional; a command without Run requires a subcommand

	parent          *Command
	children        []*Command
	localFlags      *FlagSet
	persistentFlags *FlagSet
}

// AddCommand attaches children under c. It panics on nil, unnamed, or already-attached children.
func (c *Command) AddCommand(children ...*Command) {
	for _, child := range children {
		switch {
		case child == nil:
			panic("cli: AddCommand called with nil child")
		case child.parent != nil:
			panic("cli: AddCommand called with a child already attached to a parent")
		case child.Name == "":
			panic("cli: AddCommand called with a child with empty Name")
		}
		child.parent = c
		c.children = append(c.children, child)
	}
}

// Commands returns a copy of c's direct children.
func (c *Command) Commands() []*Command {
	return append([]*Command(nil), c.children...)
}

// Flags returns flags that only apply to c.
func (c *Command) Flags() *FlagSet {
	if c.localFlags == nil {
		c.localFlags = newFlagSet()
	}
	return c.localFlags
}

// PersistentFlags returns flags that apply to c and all of its descendants.
func (c *Command) PersistentFlags() *FlagSet {
	if c.persistentFlags == nil {
		c.persistentFlags = newFlagSet()
	}
	return c.persistentFlags
}

func (c *Command) child(token string) *Command {
	for _, child := range c.children {
		if child.Name == token {
			return child
		}
		for _, alias := range child.Aliases {
			if alias == token {
				return child
			}
		}
	}
	return nil
}

// path returns the commands from the root down to c.
func (c *Command) path() []*Command {
	var path []*Command
	for cur := c; cur != nil; cur = cur.parent {
		path = append([]*Command{cur}, path...)
	}
	return path
}
