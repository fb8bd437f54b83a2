// Package page renders a single Markdown file into an HTML page template.
package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/roboco-io/mdsite/internal/htmlnode"
	"github.com/roboco-io/mdsite/internal/parser"
	"github.com/roboco-io/mdsite/internal/render"
)

const (
	// TitlePlaceholder is replaced with the first heading of the page.
	TitlePlaceholder = "{{ Title }}"
	// ContentPlaceholder is replaced with the rendered page body.
	ContentPlaceholder = "{{ Content }}"
)

// Generator renders Markdown files into a template.
type Generator struct {
	template string
	basePath string
	log      *zap.Logger
}

// NewGenerator creates a generator for a template text and base path.
// A nil logger disables logging.
func NewGenerator(template, basePath string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		template: template,
		basePath: NormalizeBasePath(basePath),
		log:      log,
	}
}

// LoadGenerator reads the template file and creates a generator.
func LoadGenerator(templatePath, basePath string, log *zap.Logger) (*Generator, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return NewGenerator(string(data), basePath, log), nil
}

// BasePath returns the normalized base path used for root-relative links.
func (g *Generator) BasePath() string {
	return g.basePath
}

// Render converts markdown into a full page.
func (g *Generator) Render(markdown string) (string, error) {
	doc := parser.Parse(markdown)
	title, err := parser.Title(doc)
	if err != nil {
		return "", err
	}
	root, err := render.Document(doc)
	if err != nil {
		return "", err
	}
	body, err := htmlnode.Serialize(root)
	if err != nil {
		return "", err
	}

	out := strings.ReplaceAll(g.template, TitlePlaceholder, title)
	out = strings.ReplaceAll(out, ContentPlaceholder, body)
	return RewriteRootLinks(out, g.basePath), nil
}

// Generate renders the Markdown file at src and writes the page to dst.
// dst is replaced atomically; on failure it is left untouched.
func (g *Generator) Generate(src, dst string) error {
	g.log.Debug("Generating page", zap.String("from", src), zap.String("to", dst))

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	out, err := g.Render(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	if err := writeFileAtomic(dst, []byte(out)); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	g.log.Info("Generated page", zap.String("file", dst))
	return nil
}

// NormalizeBasePath makes sure the base path starts and ends with a slash.
func NormalizeBasePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// RewriteRootLinks points root-relative href and src attributes at basePath.
func RewriteRootLinks(doc, basePath string) string {
	if basePath == "/" {
		return doc
	}
	r := strings.NewReplacer(`href="/`, `href="`+basePath, `src="/`, `src="`+basePath)
	return r.Replace(doc)
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".mdsite-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return multierr.Append(err, tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
