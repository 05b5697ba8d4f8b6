package models

import "time"

// SyncPhase фаза конечного автомата синхронизации
type SyncPhase string

const (
	PhaseIdle       SyncPhase = "idle"
	PhaseSyncing    SyncPhase = "syncing"
	PhaseCommitting SyncPhase = "committing"
	PhaseFailed     SyncPhase = "failed"
)

// SourceOutcome результат обработки одного источника за проход
type SourceOutcome struct {
	SourceID    string `json:"source_id"`
	Error       string `json:"error,omitempty"`
	Warning     string `json:"warning,omitempty"` // Warning некритичный сбой: данные приняты, но следующий проход будет полным
	Files       int    `json:"files"`        // Files файлов в источнике после прохода
	Downloaded  int    `json:"downloaded"`   // Downloaded реально скачанных файлов
	ParseErrors int    `json:"parse_errors"` // ParseErrors файлов, пропущенных из-за ошибок формата
	Snippets    int    `json:"snippets"`
	Full        bool   `json:"full"`    // Full был выполнен полный листинг
	Skipped     bool   `json:"skipped"` // Skipped источник не настроен
}

// SyncStatus сводка последнего прохода синхронизации
type SyncStatus struct {
	LastSyncAt        time.Time       `json:"last_sync_at"`
	Phase             SyncPhase       `json:"phase"`
	LastError         string          `json:"last_error,omitempty"`
	Sources           []SourceOutcome `json:"sources,omitempty"`
	SnippetCount      int             `json:"snippet_count"`
	DuplicatesRemoved int             `json:"duplicates_removed"`
}
