package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "seed.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVImporter(t *testing.T) {
	db := setupTestDB(t)
	importer := NewCSVImporter(db)

	t.Run("ImportsUsersAndTweets", func(t *testing.T) {
		path := writeTestCSV(t, "username,email,name,content,created_at\n"+
			"alice,alice@example.com,Alice,hello world,2024-01-01T10:00:00Z\n"+
			"alice,alice@example.com,Alice,second tweet,2024-01-01T11:00:00Z\n"+
			"bob,bob@example.com,Bob,hi there,2024-01-02T10:00:00Z\n")

		result, err := importer.ImportCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 2, result.UsersCreated)
		assert.Equal(t, 3, result.TweetsCreated)
		assert.Equal(t, 0, result.RowsSkipped)

		user, err := db.GetUserByUsername("alice")
		require.NoError(t, err)

		tweets, err := db.ListTweetsByUser(user.ID, 1, 10)
		require.NoError(t, err)
		assert.Len(t, tweets, 2)

		// Imported accounts have no usable password.
		assert.Equal(t, "!", user.Password)
	})

	t.Run("SkipsBlankRows", func(t *testing.T) {
		path := writeTestCSV(t, "username,email,name,content,created_at\n"+
			",missing@example.com,Missing,orphan tweet,2024-01-01T10:00:00Z\n"+
			"carol,carol@example.com,Carol,,2024-01-01T10:00:00Z\n")

		result, err := importer.ImportCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 0, result.TweetsCreated)
		assert.Equal(t, 2, result.RowsSkipped)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		path := writeTestCSV(t, "username,email,name\nalice,a@b.c,Alice\n")
		_, err := importer.ImportCSV(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := importer.ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
