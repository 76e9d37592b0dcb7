package ui

import (
	"fmt"
	"strings"
)

// UsageOption is one row of the options table.
type UsageOption struct {
	Short       string
	Long        string
	Arg         string
	Description string
}

// Usage describes the help screen.
type Usage struct {
	Line    string
	Options []UsageOption
	Example string
}

// Usage prints the help screen: usage line, aligned options, one example.
func (u *UI) Usage(usage Usage) {
	heading := u.colorCyan.SprintFunc()

	fmt.Fprintf(u.output, "%s %s\n\n", heading("Usage:"), usage.Line)
	fmt.Fprintln(u.output, heading("Options:"))

	names := make([]string, len(usage.Options))
	width := 0
	for i, opt := range usage.Options {
		name := "    "
		if opt.Short != "" {
			name = "-" + opt.Short + ", "
		}
		name += "--" + opt.Long
		if opt.Arg != "" {
			name += " " + opt.Arg
		}
		names[i] = name
		if len(name) > width {
			width = len(name)
		}
	}
	for i, opt := range usage.Options {
		pad := strings.Repeat(" ", width-len(names[i])+3)
		fmt.Fprintf(u.output, "  %s%s%s\n", u.colorYellow.Sprint(names[i]), pad, u.colorDim.Sprint(opt.Description))
	}

	if usage.Example != "" {
		fmt.Fprintf(u.output, "\n%s\n  %s\n", heading("Example:"), u.colorGreen.Sprint(usage.Example))
	}
}
