// Package format превращает байты файлов источника в сниппеты и обратно.
package format

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/iudanet/snipkeeper/internal/models"
)

// ErrUnsupportedFormat расширение файла не поддерживается
var ErrUnsupportedFormat = errors.New("unsupported snippet format")

// Parser декодирует содержимое одного файла
type Parser interface {
	// Parse returns all snippets contained in the file.
	Parse(name string, data []byte) ([]models.Snippet, error)
}

// ParseError ошибка разбора одного файла.
// Синхронизация пропускает такой файл и продолжает работу.
type ParseError struct {
	Err  error
	File string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(file string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{File: file, Err: err}
}

// Registry выбирает Parser по расширению файла
type Registry struct {
	parsers map[string]Parser
	mu      sync.RWMutex
}

// NewRegistry creates a registry with the built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	r.Register(".json", NewJSONParser())
	r.Register(".md", NewFrontMatterParser(models.ContentMarkdown))
	r.Register(".markdown", NewFrontMatterParser(models.ContentMarkdown))
	r.Register(".html", NewFrontMatterParser(models.ContentHTML))
	r.Register(".htm", NewFrontMatterParser(models.ContentHTML))
	r.Register(".tex", NewFrontMatterParser(models.ContentLatex))
	r.Register(".txt", NewFrontMatterParser(models.ContentPlaintext))
	return r
}

// Register adds or replaces the parser for ext (".json").
func (r *Registry) Register(ext string, p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[normalizeExt(ext)] = p
}

// Supported reports whether a file name has a registered parser.
func (r *Registry) Supported(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// Parse dispatches to the parser for the file extension.
// Every failure is returned as *ParseError.
func (r *Registry) Parse(name string, data []byte) ([]models.Snippet, error) {
	p, ok := r.lookup(name)
	if !ok {
		return nil, &ParseError{File: name, Err: ErrUnsupportedFormat}
	}

	snippets, err := p.Parse(name, data)
	if err != nil {
		return nil, parseErr(name, err)
	}
	for i := range snippets {
		snippets[i].Normalize()
		if snippets[i].ID == "" {
			return nil, &ParseError{File: name, Err: errors.New("snippet without id")}
		}
		if !snippets[i].ContentType.Valid() {
			return nil, &ParseError{File: name, Err: fmt.Errorf("unknown content type %q", snippets[i].ContentType)}
		}
	}
	return snippets, nil
}

func (r *Registry) lookup(name string) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[normalizeExt(path.Ext(name))]
	return p, ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
