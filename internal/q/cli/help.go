package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

func writeHelp(w io.Writer, root, cmd *Command) {
	name := displayName(cmd)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", name, cmd.Short)
	} else {
		fmt.Fprintln(w, name)
	}
	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine(cmd))

	if len(cmd.children) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		children := cmd.Commands()
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		for _, child := range children {
			fmt.Fprintf(w, "  %s\t%s\n", child.Name, child.Short)
		}
	}

	if defs := cmd.activeFlags().sorted(); len(defs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		for _, def := range defs {
			fmt.Fprintln(w, flagHelpLine(def))
		}
	}

	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Example:")
		for _, line := range strings.Split(strings.TrimRight(cmd.Example, "\n"), "\n") {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func displayName(cmd *Command) string {
	var parts []string
	for _, c := range cmd.path() {
		parts = append(parts, c.Name)
	}
	return strings.Join(parts, " ")
}

func usageLine(cmd *Command) string {
	segments := []string{displayName(cmd)}
	if len(cmd.activeFlags().byLong) > 0 {
		segments = append(segments, "[flags]")
	}
	if len(cmd.children) > 0 {
		if cmd.Run == nil {
			segments = append(segments, "<command>")
		} else {
			segments = append(segments, "[command]")
		}
	}
	if cmd.Run != nil {
		segments = append(segments, "[args]")
	}
	return strings.Join(segments, " ")
}

func flagHelpLine(def *flagDef) string {
	names := "    --" + def.name
	if def.shorthand != 0 {
		names = fmt.Sprintf("-%c, --%s", def.shorthand, def.name)
	}
	if def.kind != flagBool {
		names += fmt.Sprintf(" <%s>", def.kind)
	}
	if usage := strings.TrimSpace(def.usage); usage != "" {
		return fmt.Sprintf("  %s\t%s", names, usage)
	}
	return "  " + names
}
