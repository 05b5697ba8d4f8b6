package models

import "time"

// User представляет пользователя сервера папок
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	LastLogin    time.Time `json:"last_login"`    // время последнего входа
	ID           string    `json:"id"`            // UUID пользователя
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	Token     string    `json:"token"`      // значение токена
	UserID    string    `json:"user_id"`    // ID пользователя
}

// Folder общая папка сниппетов на сервере (командная или организационная)
type Folder struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	// Horizon минимальная последовательность, с которой ещё доступна лента изменений
	Horizon int64 `json:"horizon"`
}

// FolderFile файл внутри папки. Deleted файлы хранятся как tombstone до компактации.
type FolderFile struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	FolderID  string    `json:"folder_id"`
	Path      string    `json:"path"`
	Revision  string    `json:"revision"` // Revision sha256 содержимого
	UpdatedBy string    `json:"updated_by"`
	Content   []byte    `json:"-"`
	Size      int64     `json:"size"`
	Seq       int64     `json:"seq"` // Seq монотонный номер последнего изменения
	Deleted   bool      `json:"deleted"`
}
