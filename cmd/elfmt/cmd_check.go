package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dhamidi/elfmt/format"
)

var (
	patternStyle  = lipgloss.NewStyle().Bold(true)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	literalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	propertyStyle = lipgloss.NewStyle().Faint(true)
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERN...",
		Short: "Compile patterns and explain their segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for i, pattern := range args {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if !checkPattern(cmd.OutOrStdout(), pattern) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d patterns are malformed", failed, len(args))
			}
			return nil
		},
	}
}

// checkPattern writes an explanation of pattern to w and reports whether
// it compiled.
func checkPattern(w io.Writer, pattern string) bool {
	fmt.Fprintln(w, patternStyle.Render(strconv.Quote(pattern)))

	f, err := format.New(pattern)
	if err != nil {
		var ce *format.CompileError
		if errors.As(err, &ce) {
			fmt.Fprintf(w, "  %s\n", pattern)
			fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", ce.Offset), errorStyle.Render("^ "+ce.Reason))
		} else {
			fmt.Fprintf(w, "  %s\n", errorStyle.Render(err.Error()))
		}
		return false
	}

	for _, seg := range f.Segments() {
		fmt.Fprintf(w, "  %s\n", describeSegment(seg))
	}
	props := f.Properties()
	if len(props) == 0 {
		fmt.Fprintf(w, "  %s\n", propertyStyle.Render("depends on no properties"))
		return true
	}
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = string(p)
	}
	fmt.Fprintf(w, "  %s\n", propertyStyle.Render("depends on "+strings.Join(names, ", ")))
	return true
}

func describeSegment(seg format.Segment) string {
	switch s := seg.(type) {
	case format.Literal:
		return literalStyle.Render("literal") + " " + strconv.Quote(s.Text)
	case format.SimpleTag:
		return fmt.Sprintf("%s %s prefix=%q suffix=%q",
			tagStyle.Render(s.Kind.String()), s.Kind.Property(), s.Prefix, s.Suffix)
	case format.ArrayTag:
		return fmt.Sprintf("%s %s[] prefix=%q suffix=%q delimiter=%q",
			tagStyle.Render(s.Kind.String()), s.Kind.Property(), s.Prefix, s.Suffix, s.Delimiter)
	}
	return fmt.Sprintf("%v", seg)
}
