package cli

import (
	"fmt"
	"sort"
	"strconv"
)

type flagKind uint8

const (
	flagBool flagKind = iota + 1
	flagString
	flagInt
)

func (k flagKind) String() string {
	switch k {
	case flagBool:
		return "bool"
	case flagString:
		return "string"
	case flagInt:
		return "int"
	}
	return "unknown"
}

// FlagSet is a typed flag registry for a command.
type FlagSet struct {
	byLong  map[string]*flagDef
	byShort map[rune]*flagDef
}

type flagDef struct {
	name      string
	shorthand rune
	usage     string
	kind      flagKind
	changed   bool

	boolPtr   *bool
	stringPtr *string
	intPtr    *int
}

func newFlagSet() *FlagSet {
	return &FlagSet{
		byLong:  map[string]*flagDef{},
		byShort: map[rune]*flagDef{},
	}
}

// Bool defines a bool flag. A shorthand of 0 means none.
func (fs *FlagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	ptr := &def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagBool, boolPtr: ptr})
	return ptr
}

// String defines a string flag. A shorthand of 0 means none.
func (fs *FlagSet) String(name string, shorthand rune, def string, usage string) *string {
	ptr := &def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagString, stringPtr: ptr})
	return ptr
}

// Int defines an int flag. A shorthand of 0 means none.
func (fs *FlagSet) Int(name string, shorthand rune, def int, usage string) *int {
	ptr := &def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagInt, intPtr: ptr})
	return ptr
}

// Changed reports whether the flag named name was set on the command line.
func (fs *FlagSet) Changed(name string) bool {
	def, ok := fs.byLong[name]
	return ok && def.changed
}

func (fs *FlagSet) add(def *flagDef) {
	if def.name == "" {
		panic("cli: flag name must be non-empty")
	}
	if _, ok := fs.byLong[def.name]; ok {
		panic("cli: duplicate flag: --" + def.name)
	}
	if def.shorthand != 0 {
		if _, ok := fs.byShort[def.shorthand]; ok {
			panic(fmt.Sprintf("cli: duplicate shorthand flag: -%c", def.shorthand))
		}
		fs.byShort[def.shorthand] = def
	}
	fs.byLong[def.name] = def
}

// activeFlags are the flags usable by a command: persistent flags along its path plus its own local flags.
type activeFlags struct {
	byLong  map[string]*flagDef
	byShort map[rune]*flagDef
}

func (c *Command) activeFlags() activeFlags {
	a := activeFlags{byLong: map[string]*flagDef{}, byShort: map[rune]*flagDef{}}
	for _, cmd := range c.path() {
		if cmd.persistentFlags != nil {
			a.addAll(cmd.persistentFlags)
		}
	}
	if c.localFlags != nil {
		a.addAll(c.localFlags)
	}
	return a
}

func (a activeFlags) addAll(fs *FlagSet) {
	for _, def := range fs.byLong {
		if existing, ok := a.byLong[def.name]; ok && existing != def {
			panic("cli: flag name conflict across command path: --" + def.name)
		}
		a.byLong[def.name] = def
		if def.shorthand != 0 {
			if existing, ok := a.byShort[def.shorthand]; ok && existing != def {
				panic(fmt.Sprintf("cli: shorthand conflict across command path: -%c", def.shorthand))
			}
			a.byShort[def.shorthand] = def
		}
	}
}

func (a activeFlags) sorted() []*flagDef {
	defs := make([]*flagDef, 0, len(a.byLong))
	for _, def := range a.byLong {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}

// set parses raw into def.
func (def *flagDef) set(raw string) error {
	switch def.kind {
	case flagBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*def.boolPtr = v
	case flagString:
		*def.stringPtr = raw
	case flagInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*def.intPtr = v
	default:
		return fmt.Errorf("unknown flag kind")
	}
	def.changed = true
	return nil
}

func (def *flagDef) display() string {
	if def.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", def.shorthand, def.name)
	}
	return "--" + def.name
}
