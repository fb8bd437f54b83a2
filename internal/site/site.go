// Package site mirrors static assets and generates pages for a whole
// content tree.
package site

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/roboco-io/mdsite/internal/page"
	"github.com/roboco-io/mdsite/internal/parser"
)

var (
	// ErrSourceMissing is returned when a source directory does not exist.
	ErrSourceMissing = errors.New("source directory does not exist")
	// ErrNotDirectory is returned when a source path is not a directory.
	ErrNotDirectory = errors.New("source is not a directory")
)

// Options describes where a site build reads from and writes to.
type Options struct {
	StaticDir  string
	ContentDir string
	Template   string
	OutputDir  string
	BasePath   string
	Clean      bool
}

// Stats counts what a build produced.
type Stats struct {
	FilesCopied        int
	DirectoriesCreated int
	PagesGenerated     int
}

// Builder runs site builds.
type Builder struct {
	opts Options
	log  *zap.Logger
}

// New creates a builder. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{opts: opts, log: log}
}

// Build copies static assets into the output directory and then generates
// a page for every Markdown file in the content directory.
func (b *Builder) Build() (Stats, error) {
	stats, err := CopyStatic(b.opts.StaticDir, b.opts.OutputDir, b.opts.Clean, b.log)
	if err != nil {
		return stats, fmt.Errorf("failed to copy static files: %w", err)
	}

	gen, err := page.LoadGenerator(b.opts.Template, b.opts.BasePath, b.log)
	if err != nil {
		return stats, err
	}
	n, err := GeneratePages(gen, b.opts.ContentDir, b.opts.OutputDir, b.log)
	stats.PagesGenerated = n
	if err != nil {
		return stats, fmt.Errorf("failed to generate pages: %w", err)
	}

	b.log.Info("Site built",
		zap.Int("files", stats.FilesCopied),
		zap.Int("directories", stats.DirectoriesCreated),
		zap.Int("pages", stats.PagesGenerated))
	return stats, nil
}

func checkDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return nil
}

// readDirNatural lists a directory in natural name order.
func readDirNatural(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name(), entries[j].Name())
	})
	return entries, nil
}

// CopyStatic mirrors src into dst recursively. With clean set, everything
// already inside dst is removed first.
func CopyStatic(src, dst string, clean bool, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := checkDir(src); err != nil {
		return Stats{}, err
	}
	if clean {
		if err := cleanDir(dst, log); err != nil {
			return Stats{}, err
		}
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return Stats{}, err
	}

	var stats Stats
	err := copyTree(src, dst, &stats, log)
	return stats, err
}

// cleanDir empties dir, or removes it when it is a plain file.
func cleanDir(dir string, log *zap.Logger) error {
	fi, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Debug("Cleaning destination", zap.String("dir", dir))
	if !fi.IsDir() {
		log.Debug("Removed file", zap.String("path", dir))
		return os.Remove(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var errs error
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		log.Debug("Removed", zap.String("path", path))
	}
	return errs
}

func copyTree(src, dst string, stats *Stats, log *zap.Logger) error {
	entries, err := readDirNatural(src)
	if err != nil {
		return err
	}

	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())

		if e.IsDir() {
			if err := os.MkdirAll(to, 0755); err != nil {
				return err
			}
			log.Debug("Created directory", zap.String("path", to))
			stats.DirectoriesCreated++
			if err := copyTree(from, to, stats, log); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(from, to); err != nil {
			return fmt.Errorf("failed to copy %s: %w", from, err)
		}
		log.Debug("Copied file", zap.String("from", from), zap.String("to", to))
		stats.FilesCopied++
	}
	return nil
}

// copyFile copies contents, permissions and modification time.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, in.Close()) }()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		return multierr.Append(err, out.Close())
	}
	if err = out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, fi.ModTime(), fi.ModTime())
}

// PagePath maps a Markdown file path relative to the content root onto its
// HTML output path.
func PagePath(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}

// GeneratePages renders every Markdown file under contentDir into outputDir,
// keeping the directory structure. It stops at the first failing file.
func GeneratePages(gen *page.Generator, contentDir, outputDir string, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := checkDir(contentDir); err != nil {
		return 0, err
	}

	count := 0
	var walk func(rel string) error
	walk = func(rel string) error {
		entries, err := readDirNatural(filepath.Join(contentDir, rel))
		if err != nil {
			return err
		}
		for _, e := range entries {
			child := filepath.Join(rel, e.Name())
			if e.IsDir() {
				if err := walk(child); err != nil {
					return err
				}
				continue
			}
			if parser.DetectFormat(e.Name()) != parser.FormatMarkdown {
				log.Debug("Skipping non-markdown file", zap.String("path", child))
				continue
			}
			src := filepath.Join(contentDir, child)
			dst := filepath.Join(outputDir, PagePath(child))
			if err := gen.Generate(src, dst); err != nil {
				return err
			}
			count++
		}
		return nil
	}

	err := walk("")
	return count, err
}
