package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dhamidi/elfmt/format"
	"github.com/dhamidi/elfmt/java"
)

var elementKinds = []java.ElementKind{
	java.ElementClass,
	java.ElementField,
	java.ElementInitializer,
	java.ElementConstructor,
	java.ElementMethod,
}

func newFormatCmd() *cobra.Command {
	var pattern string
	var kinds []string
	var strict bool
	var names bool

	cmd := &cobra.Command{
		Use:   "format -p PATTERN [path...]",
		Short: "Format every element of the given files with a pattern",
		Long: `Format every element found in the given files, directories or source
archives with one pattern and print one line per element.

Paths may be .java sources, compiled .class files, .yaml/.yml/.json element
descriptors, .zip/.jar archives or directories. Without paths, Java source is
read from stdin.

Elements that lack a property the pattern reads are skipped, unless --strict
is given or --kind selects them explicitly.`,
		Example: `  elfmt format -p '{m,," "}{r} {n}({p})' src/
  elfmt format -k method -p '{C}.{n}{a,(,)}' Foo.java`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.New(pattern)
			if err != nil {
				return err
			}
			selected, err := parseKinds(kinds)
			if err != nil {
				return err
			}
			strict = strict || len(kinds) > 0

			classes, err := loadClasses(cmd.Context(), args, stdinOrNil(args))
			if err != nil {
				return err
			}
			return formatClasses(cmd.OutOrStdout(), f, classes, selected, strict, names)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "element pattern")
	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "element kinds to format (class, field, initializer, constructor, method)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on elements the pattern does not apply to")
	cmd.Flags().BoolVarP(&names, "names", "n", false, "prefix each line with the element's qualified name")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func parseKinds(kinds []string) (map[java.ElementKind]bool, error) {
	selected := map[java.ElementKind]bool{}
	if len(kinds) == 0 {
		for _, k := range elementKinds {
			selected[k] = true
		}
		return selected, nil
	}
	for _, k := range kinds {
		kind := java.ElementKind(k)
		if !slices.Contains(elementKinds, kind) {
			return nil, fmt.Errorf("unknown element kind %q", k)
		}
		selected[kind] = true
	}
	return selected, nil
}

func formatClasses(w io.Writer, f *format.Formatter, classes []*java.Class, kinds map[java.ElementKind]bool, strict, names bool) error {
	skipped := 0
	for _, c := range classes {
		err := c.Walk(func(el java.Element) error {
			if !kinds[el.Kind()] {
				return nil
			}
			text, err := f.Format(el)
			if errors.Is(err, format.ErrIncompatible) && !strict {
				skipped++
				return nil
			}
			if err != nil {
				return err
			}
			if names {
				_, err = fmt.Fprintf(w, "%s\t%s\n", format.QualifiedName(el), text)
			} else {
				_, err = fmt.Fprintln(w, text)
			}
			return err
		})
		if err != nil {
			return fmt.Errorf("%s: %w", c.FullName(), err)
		}
	}
	if skipped > 0 {
		log.Infof("skipped %d elements the pattern does not apply to", skipped)
	}
	return nil
}
