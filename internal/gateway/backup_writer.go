package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	"notion-backup/internal/domain"
)

const gcsScheme = "gs://"

// FileBackupWriter stores backup documents in a local directory.
type FileBackupWriter struct {
	dir string
}

// NewFileBackupWriter creates a writer rooted at dir. The directory is created on first write.
func NewFileBackupWriter(dir string) *FileBackupWriter {
	return &FileBackupWriter{dir: dir}
}

// WriteBackup writes the document to <dir>/<name> and returns that path.
// The file is written next to its destination and renamed into place.
func (w *FileBackupWriter) WriteBackup(ctx context.Context, name string, backup *domain.Backup) (string, error) {
	payload, err := encodeBackup(backup)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}

	tmp, err := os.CreateTemp(w.dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary backup file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	dest := filepath.Join(w.dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("failed to move backup to %s: %w", dest, err)
	}
	return dest, nil
}

// GCSBackupWriter stores backup documents as Cloud Storage objects.
// It assumes Application Default Credentials are configured.
type GCSBackupWriter struct {
	bucket string
	prefix string
}

// IsGCSURI reports whether dest points at Cloud Storage.
func IsGCSURI(dest string) bool {
	return strings.HasPrefix(dest, gcsScheme)
}

// ParseGCSURI splits "gs://bucket/some/prefix" into bucket and object prefix.
// The prefix may be empty.
func ParseGCSURI(uri string) (bucket, prefix string, err error) {
	if !IsGCSURI(uri) {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, gcsScheme), "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("invalid GCS URI (no bucket): %s", uri)
	}
	if len(parts) == 2 {
		prefix = strings.Trim(parts[1], "/")
	}
	return parts[0], prefix, nil
}

// NewGCSBackupWriter creates a writer for destinations like gs://bucket/backups.
func NewGCSBackupWriter(uri string) (*GCSBackupWriter, error) {
	bucket, prefix, err := ParseGCSURI(uri)
	if err != nil {
		return nil, err
	}
	return &GCSBackupWriter{bucket: bucket, prefix: prefix}, nil
}

// ObjectName returns the object path a backup called name is stored under.
func (w *GCSBackupWriter) ObjectName(name string) string {
	if w.prefix == "" {
		return name
	}
	return path.Join(w.prefix, name)
}

// WriteBackup uploads the document and returns its gs:// URI.
func (w *GCSBackupWriter) WriteBackup(ctx context.Context, name string, backup *domain.Backup) (string, error) {
	payload, err := encodeBackup(backup)
	if err != nil {
		return "", err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	object := w.ObjectName(name)
	writer := client.Bucket(w.bucket).Object(object).NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(payload); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("upload backup to GCS: %w", err)
	}
	// Close finalizes the upload.
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}
	return gcsScheme + w.bucket + "/" + object, nil
}

func encodeBackup(backup *domain.Backup) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return buf.Bytes(), nil
}
