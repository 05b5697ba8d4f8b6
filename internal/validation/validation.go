// Package validation проверяет пользовательский ввод клиента и сервера папок.
package validation

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// UsernamePattern латинские буквы, цифры, '_', '.', '-'
	UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

	// SourceIDPattern идентификатор источника в настройках
	SourceIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxFolderName  = 128
	MaxPathLen     = 512
)

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}
	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}
	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, '_', '.' and '-'")
	}
	return nil
}

// ValidatePassword проверяет минимальную длину пароля учётной записи
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateFolderName проверяет имя общей папки
func ValidateFolderName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxFolderName {
		return fmt.Errorf("folder name must not exceed %d characters", MaxFolderName)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("folder name cannot contain path separators")
	}
	return nil
}

// ValidateFilePath проверяет относительный путь файла внутри папки.
// Путь не должен выходить за пределы папки.
func ValidateFilePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if len(p) > MaxPathLen {
		return fmt.Errorf("path must not exceed %d bytes", MaxPathLen)
	}
	if strings.Contains(p, "\\") || strings.ContainsRune(p, 0) {
		return fmt.Errorf("path contains forbidden characters")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must be relative")
	}
	if path.Clean(p) != p {
		return fmt.Errorf("path must be clean")
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." || part == "." {
			return fmt.Errorf("path cannot contain %q", part)
		}
	}
	return nil
}

// ValidateSourceID проверяет идентификатор источника
func ValidateSourceID(id string) error {
	if !SourceIDPattern.MatchString(id) {
		return fmt.Errorf("source id %q must be lowercase letters, digits, '_' or '-' (max 32)", id)
	}
	return nil
}
