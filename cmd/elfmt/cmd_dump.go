package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/elfmt/format"
	"github.com/dhamidi/elfmt/java"
)

type classEncoder interface {
	Encode(class *java.Class) error
}

func newDumpCmd(a *app) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump [path...]",
		Short: "Dump declaration skeletons using the configured patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := loadClasses(cmd.Context(), args, stdinOrNil(args))
			if err != nil {
				return err
			}
			enc, err := newClassEncoder(cmd.OutOrStdout(), dumpFormat, a.patterns)
			if err != nil {
				return err
			}
			for i, c := range classes {
				if i > 0 && dumpFormat == "java" {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := enc.Encode(c); err != nil {
					return fmt.Errorf("encode %s: %w", c.FullName(), err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "java", "output format (java, line)")

	return cmd
}

func newClassEncoder(w io.Writer, name string, patterns format.Patterns) (classEncoder, error) {
	switch name {
	case "java":
		return format.NewJavaEncoder(w, patterns), nil
	case "line":
		return format.NewLineEncoder(w, patterns), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected java or line)", name)
}
