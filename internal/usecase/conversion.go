package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notion-backup/internal/convert"
	"notion-backup/internal/domain"
	"notion-backup/internal/logger"
)

// ConversionUseCase orchestrates one export-to-backup conversion.
type ConversionUseCase struct {
	repo   TableRepository
	writer BackupWriter
	opts   convert.Options
	now    func() time.Time
}

// NewConversionUseCase creates a new instance of the usecase.
func NewConversionUseCase(repo TableRepository, writer BackupWriter, opts convert.Options) *ConversionUseCase {
	return &ConversionUseCase{repo: repo, writer: writer, opts: opts, now: time.Now}
}

// WithClock replaces the wall clock used to stamp the backup.
func (uc *ConversionUseCase) WithClock(now func() time.Time) *ConversionUseCase {
	uc.now = now
	return uc
}

// BackupFileName is the name a backup for month is written under.
func BackupFileName(month string) string {
	return fmt.Sprintf("notion-%s-backup.json", month)
}

// Convert reads the export below sourceRoot and writes one backup document.
// Nothing is written when a required file or column is missing.
func (uc *ConversionUseCase) Convert(ctx context.Context, sourceRoot string) (*domain.Report, error) {
	runID := uuid.NewString()
	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"run_id": runID,
	})

	// Step 1: Source discovery
	dir, err := uc.repo.LocateSource(ctx, sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("could not locate source exports: %w", err)
	}
	log.Info().Str("dir", dir).Msg("Source exports located")

	// Step 2: Table ingestion and schema check
	var src domain.SourceTables
	missing := make(map[string][]string)
	for _, kind := range domain.TableKinds {
		table, err := uc.repo.ReadTable(ctx, dir, kind)
		if err != nil {
			return nil, fmt.Errorf("could not read %s table: %w", kind, err)
		}
		if cols := table.MissingColumns(); len(cols) > 0 {
			missing[table.File] = cols
			continue
		}
		src.Set(kind, table.Rows)
		log.Debug().Str("table", string(kind)).Int("rows", len(table.Rows)).Msg("Table read")
	}
	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Columns: missing}
	}

	// Step 3: Conversion
	backup, summary := convert.Assemble(src, uc.opts, uc.now())
	log.Info().
		Str("target_month", summary.TargetMonth).
		Int("accounts", summary.Accounts).
		Int("categories", summary.Categories).
		Int("budgets", summary.Budgets).
		Int("transactions", summary.Txns).
		Int("goals", summary.Goals).
		Msg("Backup assembled")

	report := &domain.Report{RunID: runID, SourceDir: dir, Summary: summary}
	for _, line := range report.SkipLines() {
		log.Warn().Str("skipped", line).Msg("Source rows skipped")
	}

	// Step 4: Output
	path, err := uc.writer.WriteBackup(ctx, BackupFileName(summary.TargetMonth), backup)
	if err != nil {
		return nil, fmt.Errorf("could not write backup: %w", err)
	}
	report.OutputPath = path
	log.Info().Str("path", path).Msg("Backup written")

	return report, nil
}
