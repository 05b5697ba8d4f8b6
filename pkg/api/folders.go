package api

import "time"

// HeaderRevision ревизия содержимого в ответе на скачивание
const HeaderRevision = "X-Revision"

// CreateFolderRequest создание общей папки
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest выдача доступа к папке
type AddMemberRequest struct {
	Username string `json:"username"`
}

// Folder описание папки
type Folder struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
}

// FolderList список доступных пользователю папок
type FolderList struct {
	Folders []Folder `json:"folders"`
}

// File метаданные файла папки
type File struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Revision  string    `json:"revision"`
	UpdatedBy string    `json:"updated_by"`
	Size      int64     `json:"size"`
	Seq       int64     `json:"seq"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// FileList полный листинг папки.
// Cursor последний номер изменения на момент листинга.
type FileList struct {
	Files  []File `json:"files"`
	Cursor int64  `json:"cursor"`
}

// Changes изменения после курсора, включая удаления.
// Если курсор старше горизонта журнала, сервер отвечает 410 Gone.
type Changes struct {
	Files  []File `json:"files"`
	Cursor int64  `json:"cursor"`
}
