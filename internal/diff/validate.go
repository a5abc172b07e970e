package diff

import "fmt"

// validate checks the Changeset invariants against the texts it was built from and returns an error on the first violation.
func (c Changeset) validate(orig, edit string) error {
	for i, d := range c {
		switch d.Op {
		case OpSame, OpAdd, OpRem:
		default:
			return fmt.Errorf("entry[%d]: unknown op %d", i, int(d.Op))
		}
		if d.Text == "" {
			return fmt.Errorf("entry[%d]: %s has empty text", i, d.Op)
		}
		if i > 0 && c[i-1].Op == d.Op {
			return fmt.Errorf("entry[%d]: adjacent %s entries", i, d.Op)
		}
	}

	if got := c.Original(); got != orig {
		return fmt.Errorf("Same+Rem entries reconstruct %q, want %q", got, orig)
	}
	if got := c.Edited(); got != edit {
		return fmt.Errorf("Same+Add entries reconstruct %q, want %q", got, edit)
	}
	return nil
}
