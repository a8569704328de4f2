// Package scanner finds Java sources, compiled classes and element
// descriptors on disk and loads them into classes.
package scanner

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/elfmt/java"
)

var log = commonlog.GetLogger("elfmt.scanner")

var skipDirs = map[string]struct{}{
	"node_modules": {},
	"build":        {},
	"target":       {},
	"out":          {},
	"bin":          {},
}

// Result holds what a scan found. Files that fail to load are reported in
// Errors and do not stop the scan.
type Result struct {
	Files   []string
	Classes []*java.Class
	Errors  []string
}

// Supported reports whether name has an extension the scanner loads.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".java", ".class", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func isArchive(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip", ".jar":
		return true
	}
	return false
}

// Scan loads a single file, a source archive (.zip or .jar) or every
// supported file below a directory.
func Scan(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	switch {
	case info.IsDir():
		files, err := Files(path)
		if err != nil {
			return nil, err
		}
		return scanFiles(ctx, files), nil
	case isArchive(path):
		return scanArchive(ctx, path)
	case Supported(path):
		return scanFiles(ctx, []string{path}), nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
}

// Files lists the supported files below root in lexical order, skipping
// hidden and build directories and anything matched by root/.gitignore.
func Files(root string) ([]string, error) {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		gi = nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warningf("walk %s: %v", path, err)
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || strings.HasPrefix(name, ".") || !Supported(name) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// Load decodes the contents of a single file, choosing the loader by the
// extension of name. Errors are prefixed with name.
func Load(ctx context.Context, name string, data []byte) ([]*java.Class, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".java":
		return java.ClassesFromSourceCtx(ctx, data, java.WithFile(name))
	case ".class":
		classes, err := java.ClassesFromClassfile(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return classes, nil
	case ".yaml", ".yml", ".json":
		classes, err := java.ClassesFromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return classes, nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(name))
}

type loaded struct {
	classes []*java.Class
	err     error
}

// scanFiles loads files concurrently and collects the results in file
// order.
func scanFiles(ctx context.Context, files []string) *Result {
	results := make([]loaded, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(runtime.NumCPU(), len(files)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = loadFile(ctx, files[i])
			}
		}()
	}

feed:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(files); j++ {
				results[j].err = fmt.Errorf("%s: %w", files[j], ctx.Err())
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	res := &Result{Files: files}
	for _, r := range results {
		if r.err != nil {
			res.Errors = append(res.Errors, r.err.Error())
			continue
		}
		res.Classes = append(res.Classes, r.classes...)
	}
	res.Classes = java.NestClasses(res.Classes)
	log.Debugf("scanned %d files: %d classes, %d errors", len(files), len(res.Classes), len(res.Errors))
	return res
}

func loadFile(ctx context.Context, path string) loaded {
	if err := ctx.Err(); err != nil {
		return loaded{err: fmt.Errorf("%s: %w", path, err)}
	}
	log.Debugf("load %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return loaded{err: err}
	}
	classes, err := Load(ctx, path, data)
	return loaded{classes: classes, err: err}
}

// scanArchive loads the .java and .class entries of a jar or zip file.
func scanArchive(ctx context.Context, path string) (*Result, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	res := &Result{}
	for _, f := range r.File {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if f.FileInfo().IsDir() || (ext != ".java" && ext != ".class") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := path + "!" + f.Name
		res.Files = append(res.Files, name)

		data, err := readEntry(f)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		classes, err := Load(ctx, name, data)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Classes = append(res.Classes, classes...)
	}
	res.Classes = java.NestClasses(res.Classes)
	log.Debugf("scanned archive %s: %d classes", path, len(res.Classes))
	return res, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
