package gateway

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"notion-backup/internal/convert"
	"notion-backup/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBackup() *domain.Backup {
	return &domain.Backup{
		Version:    domain.BackupVersion,
		ExportedAt: "2025-09-15T08:30:00.000Z",
		Data: domain.BackupData{
			Accounts: []domain.Account{{
				ID:        "acct-notion-cash",
				Name:      "Cash & Coins",
				Type:      domain.AccountTypeCash,
				Currency:  "BDT",
				Balance:   100,
				CreatedAt: "2025-09-15T08:30:00.000Z",
				UpdatedAt: "2025-09-15T08:30:00.000Z",
			}},
			Categories:   []domain.Category{},
			Budgets:      []domain.Budget{},
			Transactions: []domain.Transaction{},
			Goals:        []domain.Goal{},
			Snapshots:    []domain.Snapshot{},
		},
	}
}

func TestFileBackupWriter_WriteBackup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data-imports")
	writer := NewFileBackupWriter(dir)

	path, err := writer.WriteBackup(context.Background(), "notion-2025-09-backup.json", sampleBackup())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notion-2025-09-backup.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(raw)
	assert.True(t, strings.HasPrefix(text, "{\n  \"version\": 1,"), "two-space indented document")
	assert.Contains(t, text, `"name": "Cash & Coins"`)

	var decoded domain.Backup
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *sampleBackup(), decoded)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestFileBackupWriter_NullableFields(t *testing.T) {
	src := domain.SourceTables{
		Accounts: []domain.Row{
			{"Name": "Cash", "Current Balance": "500"},
			{"Name": "City Bank", "Current Balance": "12,000"},
		},
		ExpenseCategories: []domain.Row{{"Name": "Food", "Monthly Budget": "5,000"}},
		Expenses: []domain.Row{
			{"Name": "Lunch", "Amount": "250", "Account": "Cash (Accounts.csv)", "Category": "Food (Expense Categories.csv)", "Date": "September 3, 2025", "Notes": ""},
		},
		Transfers: []domain.Row{
			{"Transfer Amount": "1,000", "From": "City Bank (Accounts.csv)", "To": "Cash (Accounts.csv)", "Date": "September 5, 2025"},
		},
		Goals: []domain.Row{
			{"Name": "Someday", "Target Amount": "100", "Current Savings": "0", "Target Date": "", "Start Date": ""},
		},
	}
	backup, _ := convert.Assemble(src, convert.Options{}, time.Date(2025, 9, 15, 8, 30, 0, 0, time.UTC))

	path, err := NewFileBackupWriter(t.TempDir()).WriteBackup(context.Background(), "notion-2025-09-backup.json", backup)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Data struct {
			Categories   []map[string]interface{} `json:"categories"`
			Transactions []map[string]interface{} `json:"transactions"`
			Goals        []map[string]interface{} `json:"goals"`
			Snapshots    []interface{}            `json:"snapshots"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Contains(t, string(raw), `"snapshots": []`)
	assert.NotNil(t, doc.Data.Snapshots)
	assert.Empty(t, doc.Data.Snapshots)

	require.Len(t, doc.Data.Categories, 1)
	assertNullKey(t, doc.Data.Categories[0], "parentId")

	require.Len(t, doc.Data.Transactions, 2)
	expense, transfer := doc.Data.Transactions[0], doc.Data.Transactions[1]
	assert.Equal(t, "expense", expense["type"])
	assertNullKey(t, expense, "counterpartyAccountId")
	assert.Equal(t, "cat-expense-food", expense["categoryId"])
	assert.Equal(t, "transfer", transfer["type"])
	assertNullKey(t, transfer, "categoryId")
	assertNullKey(t, transfer, "notes")
	assert.Equal(t, "acct-notion-cash", transfer["counterpartyAccountId"])

	require.Len(t, doc.Data.Goals, 1)
	assertNullKey(t, doc.Data.Goals[0], "targetDate")
}

// assertNullKey checks that key is present in obj and encoded as null.
func assertNullKey(t *testing.T, obj map[string]interface{}, key string) {
	t.Helper()
	value, ok := obj[key]
	assert.True(t, ok, "key %q present", key)
	assert.Nil(t, value, "key %q is null", key)
}

func TestFileBackupWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	writer := NewFileBackupWriter(dir)
	name := "notion-2025-09-backup.json"
	writeFile(t, filepath.Join(dir, name), "stale")

	path, err := writer.WriteBackup(context.Background(), name, sampleBackup())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(raw))
}

func TestParseGCSURI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{uri: "gs://finance-backups/notion/exports", wantBucket: "finance-backups", wantPrefix: "notion/exports"},
		{uri: "gs://finance-backups/notion/", wantBucket: "finance-backups", wantPrefix: "notion"},
		{uri: "gs://finance-backups", wantBucket: "finance-backups", wantPrefix: ""},
		{uri: "gs:///notion", wantErr: true},
		{uri: "data-imports", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, prefix, err := ParseGCSURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestGCSBackupWriter_ObjectName(t *testing.T) {
	withPrefix, err := NewGCSBackupWriter("gs://finance-backups/notion")
	require.NoError(t, err)
	assert.Equal(t, "notion/notion-2025-09-backup.json", withPrefix.ObjectName("notion-2025-09-backup.json"))

	bare, err := NewGCSBackupWriter("gs://finance-backups")
	require.NoError(t, err)
	assert.Equal(t, "notion-2025-09-backup.json", bare.ObjectName("notion-2025-09-backup.json"))

	assert.True(t, IsGCSURI("gs://finance-backups"))
	assert.False(t, IsGCSURI("./data-imports"))
}
