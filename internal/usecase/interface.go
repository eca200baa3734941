package usecase

import (
	"context"

	"notion-backup/internal/domain"
)

// TableRepository locates an unpacked Notion export and reads its tables.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type TableRepository interface {
	LocateSource(ctx context.Context, root string) (string, error)
	ReadTable(ctx context.Context, dir string, kind domain.TableKind) (*domain.Table, error)
}

// BackupWriter persists a finished backup document under name and returns where it went.
type BackupWriter interface {
	WriteBackup(ctx context.Context, name string, backup *domain.Backup) (string, error)
}
