package cli

import "fmt"

// NoArgs accepts no positional args.
func NoArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return Usagef("expected no args, got %d", len(args))
}

// ExactArgs accepts exactly n positional args.
func ExactArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) == n {
			return nil
		}
		return Usagef("expected %s, got %d", pluralArgs(n), len(args))
	}
}

// RangeArgs accepts between min and max positional args, inclusive.
func RangeArgs(min, max int) ArgsFunc {
	return func(args []string) error {
		if len(args) >= min && len(args) <= max {
			return nil
		}
		return Usagef("expected %d-%s, got %d", min, pluralArgs(max), len(args))
	}
}

func pluralArgs(n int) string {
	if n == 1 {
		return "1 arg"
	}
	return fmt.Sprintf("%d args", n)
}
