package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CSVImporter seeds the store from an exported dataset. Expected header:
// username, email, name, content, created_at (RFC3339). One row per
// tweet; users are created on first sight.
type CSVImporter struct {
	databaseService *DatabaseService
}

type ImportResult struct {
	UsersCreated  int
	TweetsCreated int
	RowsSkipped   int
}

func (r *ImportResult) String() string {
	return fmt.Sprintf("%d users, %d tweets imported, %d rows skipped",
		r.UsersCreated, r.TweetsCreated, r.RowsSkipped)
}

func NewCSVImporter(databaseService *DatabaseService) *CSVImporter {
	return &CSVImporter{databaseService: databaseService}
}

func (c *CSVImporter) ImportCSV(csvFilePath string) (*ImportResult, error) {
	if _, err := os.Stat(csvFilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("CSV file not found: %s", csvFilePath)
	}

	file, err := os.Open(csvFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	columnMap := c.mapColumns(records[0])
	if err := c.validateColumns(columnMap); err != nil {
		return nil, fmt.Errorf("CSV validation failed: %w", err)
	}

	result := &ImportResult{}
	usersByName := map[string]string{}

	for _, record := range records[1:] {
		username := strings.TrimSpace(record[columnMap["username"]])
		content := strings.TrimSpace(record[columnMap["content"]])
		if username == "" || content == "" {
			result.RowsSkipped++
			continue
		}

		userID, seen := usersByName[username]
		if !seen {
			userID, err = c.ensureUser(username, record, columnMap, result)
			if err != nil {
				result.RowsSkipped++
				continue
			}
			usersByName[username] = userID
		}

		createdAt := time.Now()
		if ts, err := time.Parse(time.RFC3339, record[columnMap["created_at"]]); err == nil {
			createdAt = ts
		}

		tweet := TweetModel{
			ID:        uuid.New().String(),
			Content:   content,
			UserID:    userID,
			CreatedAt: createdAt,
		}
		if err := c.databaseService.CreateTweet(&tweet); err != nil {
			result.RowsSkipped++
			continue
		}
		result.TweetsCreated++
	}

	return result, nil
}

func (c *CSVImporter) ensureUser(username string, record []string, columnMap map[string]int, result *ImportResult) (string, error) {
	if user, err := c.databaseService.GetUserByUsername(username); err == nil {
		return user.ID, nil
	} else if !IsNotFound(err) {
		return "", err
	}

	now := time.Now()
	user := UserModel{
		ID:       uuid.New().String(),
		Username: username,
		Email:    strings.TrimSpace(record[columnMap["email"]]),
		Name:     strings.TrimSpace(record[columnMap["name"]]),
		// Imported accounts carry no usable password; "!" never matches
		// a bcrypt comparison, so they cannot log in.
		Password:  "!",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.databaseService.CreateUser(&user); err != nil {
		return "", err
	}
	result.UsersCreated++
	return user.ID, nil
}

func (c *CSVImporter) mapColumns(header []string) map[string]int {
	columnMap := map[string]int{}
	for i, name := range header {
		columnMap[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columnMap
}

func (c *CSVImporter) validateColumns(columnMap map[string]int) error {
	for _, required := range []string{"username", "email", "name", "content", "created_at"} {
		if _, ok := columnMap[required]; !ok {
			return fmt.Errorf("missing required column: %s", required)
		}
	}
	return nil
}
