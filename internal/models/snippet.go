package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// ContentType тип содержимого сниппета
type ContentType string

const (
	ContentPlaintext ContentType = "plaintext"
	ContentMarkdown  ContentType = "markdown"
	ContentHTML      ContentType = "html"
	ContentLatex     ContentType = "latex"
)

// Valid reports whether the content type is one of the known kinds.
func (c ContentType) Valid() bool {
	switch c {
	case ContentPlaintext, ContentMarkdown, ContentHTML, ContentLatex:
		return true
	}
	return false
}

// ParseContentType нормализует строку в ContentType.
// Пустая строка трактуется как plaintext.
func ParseContentType(s string) (ContentType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "text", "txt":
		return ContentPlaintext, true
	case "md":
		return ContentMarkdown, true
	case "tex":
		return ContentLatex, true
	}
	ct := ContentType(s)
	return ct, ct.Valid()
}

// Variable описывает плейсхолдер внутри content
type Variable struct {
	Name    string `json:"name" yaml:"name"`                         // Name имя переменной ({{name}})
	Default string `json:"default,omitempty" yaml:"default,omitempty"` // Default значение по умолчанию
}

// Snippet представляет одну запись текстового расширения.
// Идентичность определяется ID, а не Trigger: несколько записей
// могут иметь одинаковый trigger.
type Snippet struct {
	CreatedAt    time.Time   `json:"created_at"`             // CreatedAt время создания
	UpdatedAt    time.Time   `json:"updated_at"`             // UpdatedAt время последнего изменения
	ID           string      `json:"id"`                     // ID стабильный идентификатор
	Trigger      string      `json:"trigger"`                // Trigger строка, набираемая пользователем
	Content      string      `json:"content"`                // Content текст подстановки
	ContentType  ContentType `json:"content_type"`           // ContentType формат content
	CreatedBy    string      `json:"created_by,omitempty"`   // CreatedBy автор
	UpdatedBy    string      `json:"updated_by,omitempty"`   // UpdatedBy автор последнего изменения
	Description  string      `json:"description,omitempty"`  // Description короткое описание
	Variables    []Variable  `json:"variables,omitempty"`    // Variables объявленные переменные
	Dependencies []string    `json:"dependencies,omitempty"` // Dependencies ID сниппетов, на которые ссылается content
	Tags         []string    `json:"tags,omitempty"`         // Tags метки
}

// fingerprintView поля, участвующие в отпечатке содержимого
type fingerprintView struct {
	Trigger      string      `json:"trigger"`
	Content      string      `json:"content"`
	ContentType  ContentType `json:"content_type"`
	Description  string      `json:"description"`
	Variables    []Variable  `json:"variables"`
	Dependencies []string    `json:"dependencies"`
	Tags         []string    `json:"tags"`
}

// Fingerprint returns a hex sha256 over the snippet's content fields.
// ID, timestamps and actors are excluded, tags are compared as a set.
func (s *Snippet) Fingerprint() string {
	tags := slices.Clone(s.Tags)
	slices.Sort(tags)

	view := fingerprintView{
		Trigger:      s.Trigger,
		Content:      s.Content,
		ContentType:  s.ContentType,
		Description:  s.Description,
		Variables:    s.Variables,
		Dependencies: s.Dependencies,
		Tags:         tags,
	}

	// Marshal структуры с фиксированным порядком полей детерминирован
	data, _ := json.Marshal(view)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Clone returns a deep copy of the snippet.
func (s Snippet) Clone() Snippet {
	s.Variables = slices.Clone(s.Variables)
	s.Dependencies = slices.Clone(s.Dependencies)
	s.Tags = slices.Clone(s.Tags)
	return s
}

// Normalize заполняет значения по умолчанию после парсинга
func (s *Snippet) Normalize() {
	s.ID = strings.TrimSpace(s.ID)
	s.Trigger = strings.TrimSpace(s.Trigger)
	if s.ContentType == "" {
		s.ContentType = ContentPlaintext
	}
}
