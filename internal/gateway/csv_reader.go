package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"notion-backup/internal/domain"
)

// SourceLayout names the directory and files a Notion export is expected to contain.
type SourceLayout struct {
	BackendDir string
	Files      map[domain.TableKind]string
}

// CSVTableRepository reads the source tables of an unpacked Notion CSV export.
type CSVTableRepository struct {
	layout SourceLayout
}

// NewCSVTableRepository creates a new repository instance.
func NewCSVTableRepository(layout SourceLayout) *CSVTableRepository {
	return &CSVTableRepository{layout: layout}
}

// LocateSource finds the directory holding every required export below root.
// <root>/<BackendDir> is tried first, then every directory with that name
// further down, in walk order.
func (r *CSVTableRepository) LocateSource(ctx context.Context, root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrSourceRootMissing, root)
	}

	candidates, err := r.candidateDirs(ctx, root)
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no %q directory under %s", domain.ErrSourceNotFound, r.layout.BackendDir, root)
	}

	for _, dir := range candidates {
		if len(r.missingFiles(dir)) == 0 {
			return dir, nil
		}
	}
	return "", &domain.MissingFilesError{Dir: candidates[0], Files: r.missingFiles(candidates[0])}
}

func (r *CSVTableRepository) candidateDirs(ctx context.Context, root string) ([]string, error) {
	var candidates []string
	seen := make(map[string]bool)
	add := func(dir string) {
		key := filepath.Clean(dir)
		if abs, err := filepath.Abs(key); err == nil {
			key = abs
		}
		if !seen[key] {
			seen[key] = true
			candidates = append(candidates, dir)
		}
	}

	direct := filepath.Join(root, r.layout.BackendDir)
	if info, err := os.Stat(direct); err == nil && info.IsDir() {
		add(direct)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() && path != root && d.Name() == r.layout.BackendDir {
			add(path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *CSVTableRepository) missingFiles(dir string) []string {
	var missing []string
	for _, kind := range domain.TableKinds {
		name := r.layout.Files[kind]
		if info, err := os.Stat(filepath.Join(dir, name)); err != nil || info.IsDir() {
			missing = append(missing, name)
		}
	}
	return missing
}

// ReadTable loads one source table. Header cells are trimmed and rows shorter
// than the header are padded with empty cells. When two header cells trim to
// the same name, the first non-empty cell of that row wins.
func (r *CSVTableRepository) ReadTable(ctx context.Context, dir string, kind domain.TableKind) (*domain.Table, error) {
	name, ok := r.layout.Files[kind]
	if !ok || name == "" {
		return nil, fmt.Errorf("no source file configured for table %s", kind)
	}
	path := filepath.Join(dir, name)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer file.Close()

	// Exports may start with a byte order mark; drop it before tokenizing.
	decoded := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	table := &domain.Table{Kind: kind, File: name}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	table.Header = cleanHeader(header)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		table.Rows = append(table.Rows, toRow(table.Header, record))
	}
	return table, nil
}

func cleanHeader(header []string) []string {
	cleaned := make([]string, len(header))
	for i, col := range header {
		cleaned[i] = strings.TrimSpace(col)
	}
	return cleaned
}

func toRow(header, record []string) domain.Row {
	row := make(domain.Row, len(header))
	for i, col := range header {
		cell := ""
		if i < len(record) {
			cell = record[i]
		}
		if prev, seen := row[col]; seen && prev != "" {
			continue
		}
		row[col] = cell
	}
	return row
}
