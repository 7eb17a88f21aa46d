package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/solidkit-go/journal"
	"github.com/solidkit/solidkit-go/journal/filestore"
)

func buildTestJournal(t *testing.T) *journal.Journal {
	t.Helper()

	j := journal.New()

	for _, text := range []string{"I cried today", "I ate a bug"} {
		_, err := j.AddEntry(text)
		assert.NoError(t, err)
	}

	return j
}

func Test_Save_WritesRenderedJournal(t *testing.T) {
	j := buildTestJournal(t)
	path := filepath.Join(t.TempDir(), "journal.txt")

	err := filestore.Save(path, j)

	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "1: I cried today\n2: I ate a bug", string(content))
}

func Test_Save_RefusesToOverwriteExistingFile(t *testing.T) {
	j := buildTestJournal(t)
	path := filepath.Join(t.TempDir(), "journal.txt")

	assert.NoError(t, os.WriteFile(path, []byte("precious"), 0o644))

	err := filestore.Save(path, j)

	assert.ErrorIs(t, err, filestore.ErrFileAlreadyExists)

	content, readErr := os.ReadFile(path)
	assert.NoError(t, readErr)
	assert.Equal(t, "precious", string(content), "the existing file must stay untouched")
}

func Test_Save_OverwritesWithExplicitOption(t *testing.T) {
	j := buildTestJournal(t)
	path := filepath.Join(t.TempDir(), "journal.txt")

	assert.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	err := filestore.Save(path, j, filestore.WithOverwrite())

	assert.NoError(t, err)

	content, readErr := os.ReadFile(path)
	assert.NoError(t, readErr)
	assert.Equal(t, "1: I cried today\n2: I ate a bug", string(content))
}

func Test_Save_InvalidArguments(t *testing.T) {
	j := buildTestJournal(t)

	tests := []struct {
		name        string
		path        string
		journal     filestore.Renderer
		expectedErr error
	}{
		{
			name:        "empty_path_is_rejected",
			path:        "",
			journal:     j,
			expectedErr: filestore.ErrEmptyFilePath,
		},
		{
			name:        "nil_journal_is_rejected",
			path:        "somewhere.txt",
			journal:     nil,
			expectedErr: filestore.ErrNilJournal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := filestore.Save(tt.path, tt.journal)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_Load_RoundTrip(t *testing.T) {
	j := buildTestJournal(t)
	path := filepath.Join(t.TempDir(), "journal.txt")

	assert.NoError(t, filestore.Save(path, j))

	content, err := filestore.Load(path)

	assert.NoError(t, err)
	assert.Equal(t, j.Render(), content)
}

func Test_Load_MissingFile(t *testing.T) {
	content, err := filestore.Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	assert.ErrorIs(t, err, filestore.ErrReadingFileFailed)
	assert.Empty(t, content)
}
