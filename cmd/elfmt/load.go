package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/elfmt/java"
	"github.com/dhamidi/elfmt/java/scanner"
)

// loadClasses scans every path, or Java source on stdin when there are
// none. Files that fail to load are logged and skipped.
func loadClasses(ctx context.Context, paths []string, stdin io.Reader) ([]*java.Class, error) {
	if len(paths) == 0 {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return scanner.Load(ctx, "<stdin>.java", source)
	}

	var classes []*java.Class
	failed := 0
	for _, path := range paths {
		res, err := scanner.Scan(ctx, path)
		if err != nil {
			return nil, err
		}
		for _, e := range res.Errors {
			log.Warningf("%s", e)
		}
		failed += len(res.Errors)
		classes = append(classes, res.Classes...)
	}
	if len(classes) == 0 && failed > 0 {
		return nil, fmt.Errorf("no classes loaded, %d files failed", failed)
	}
	return classes, nil
}

func stdinOrNil(paths []string) io.Reader {
	if len(paths) > 0 {
		return nil
	}
	return os.Stdin
}
