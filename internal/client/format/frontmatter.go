package format

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/snipkeeper/internal/models"
)

var frontMatterDelim = []byte("---")

// frontMatter заголовок YAML текстовых файлов
type frontMatter struct {
	CreatedAt    time.Time         `yaml:"created_at"`
	UpdatedAt    time.Time         `yaml:"updated_at"`
	ID           string            `yaml:"id"`
	Trigger      string            `yaml:"trigger"`
	ContentType  string            `yaml:"content_type"`
	Description  string            `yaml:"description"`
	CreatedBy    string            `yaml:"created_by"`
	UpdatedBy    string            `yaml:"updated_by"`
	Variables    []models.Variable `yaml:"variables"`
	Dependencies []string          `yaml:"dependencies"`
	Tags         []string          `yaml:"tags"`
}

// FrontMatterParser разбирает текстовые файлы с необязательным YAML заголовком.
// Тело файла становится content. Без заголовка ID и trigger берутся из имени файла.
type FrontMatterParser struct {
	contentType models.ContentType
}

// NewFrontMatterParser creates a parser that defaults to the given content type.
func NewFrontMatterParser(ct models.ContentType) *FrontMatterParser {
	return &FrontMatterParser{contentType: ct}
}

// Parse implements Parser.
func (p *FrontMatterParser) Parse(name string, data []byte) ([]models.Snippet, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	header, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if len(header) > 0 {
		if err := yaml.Unmarshal(header, &fm); err != nil {
			return nil, fmt.Errorf("invalid front matter: %w", err)
		}
	}

	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if fm.ID == "" {
		fm.ID = stem
	}
	if fm.Trigger == "" {
		fm.Trigger = stem
	}

	ct := p.contentType
	if fm.ContentType != "" {
		parsed, ok := models.ParseContentType(fm.ContentType)
		if !ok {
			return nil, fmt.Errorf("unknown content type %q", fm.ContentType)
		}
		ct = parsed
	}

	return []models.Snippet{{
		ID:           fm.ID,
		Trigger:      fm.Trigger,
		Content:      strings.TrimRight(string(body), "\r\n"),
		ContentType:  ct,
		Description:  fm.Description,
		Variables:    fm.Variables,
		Dependencies: fm.Dependencies,
		Tags:         fm.Tags,
		CreatedAt:    fm.CreatedAt,
		UpdatedAt:    fm.UpdatedAt,
		CreatedBy:    fm.CreatedBy,
		UpdatedBy:    fm.UpdatedBy,
	}}, nil
}

// splitFrontMatter отделяет заголовок между двумя строками "---"
func splitFrontMatter(data []byte) (header, body []byte, err error) {
	if !bytes.HasPrefix(data, frontMatterDelim) {
		return nil, data, nil
	}

	rest := data[len(frontMatterDelim):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		// "---" без перевода строки: обычный текст
		return nil, data, nil
	}
	rest = rest[nl+1:]

	for offset := 0; offset <= len(rest); {
		line := rest[offset:]
		end := bytes.IndexByte(line, '\n')
		if end < 0 {
			end = len(line)
		}
		if bytes.Equal(bytes.TrimRight(line[:end], "\r \t"), frontMatterDelim) {
			header = rest[:offset]
			bodyStart := offset + end + 1
			if bodyStart > len(rest) {
				bodyStart = len(rest)
			}
			return header, rest[bodyStart:], nil
		}
		offset += end + 1
	}

	return nil, nil, errors.New("unterminated front matter")
}
