package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrFolderNotFound indicates that folder was not found
	ErrFolderNotFound = errors.New("folder not found")

	// ErrFileNotFound indicates that file was not found or is deleted
	ErrFileNotFound = errors.New("file not found")

	// ErrCursorExpired курсор старше горизонта: удаления до него уже компактированы
	ErrCursorExpired = errors.New("cursor expired")
)
