package services

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/robinrdj/go-taskboard/internal/models"
)

// ImportResult tallies a bulk import. Zero successes is the hard
// failure tier, a partial success is advisory.
type ImportResult struct {
	SuccessCount int `json:"success_count"`
	TotalCount   int `json:"total_count"`
}

// ImportService admits well-formed external records to the task
// store and skips the rest.
type ImportService struct {
	logger zerolog.Logger
	store  TaskStore
}

func NewImportService(logger zerolog.Logger, store TaskStore) *ImportService {
	return &ImportService{
		logger: logger,
		store:  store,
	}
}

// ImportJSON validates raw as a JSON array of task-like records and
// adds every valid record to the store. Only a payload that is not an
// array, or an empty array, is rejected outright; a malformed element
// inside the array just counts as one invalid record.
func (s *ImportService) ImportJSON(raw []byte) (ImportResult, error) {
	var records []json.RawMessage
	err := json.Unmarshal(raw, &records)
	if err != nil {
		return ImportResult{}, ErrImportNotArray
	}
	if len(records) == 0 {
		return ImportResult{}, ErrImportEmpty
	}

	result := ImportResult{TotalCount: len(records)}
	for i, record := range records {
		input, ok := validateRecord(record)
		if !ok {
			s.logger.Warn().
				Int("index", i).
				Msg("skipped malformed import record")
			continue
		}
		s.store.Add(input)
		result.SuccessCount++
	}

	s.logger.Info().
		Int("success", result.SuccessCount).
		Int("total", result.TotalCount).
		Msg("imported tasks")
	return result, nil
}

// validateRecord is total: it never panics or errors, it only accepts
// or rejects. The element must be a JSON object whose required fields
// are all JSON strings; due_date is optional but must match
// DD-MM-YYYY exactly when present.
func validateRecord(raw json.RawMessage) (TaskInput, bool) {
	var record map[string]any
	if json.Unmarshal(raw, &record) != nil || record == nil {
		return TaskInput{}, false
	}

	title, ok := record["title"].(string)
	if !ok {
		return TaskInput{}, false
	}
	description, ok := record["description"].(string)
	if !ok {
		return TaskInput{}, false
	}
	status, ok := record["status"].(string)
	if !ok {
		return TaskInput{}, false
	}
	priority, ok := record["priority"].(string)
	if !ok {
		return TaskInput{}, false
	}
	assignee, ok := record["assignee"].(string)
	if !ok {
		return TaskInput{}, false
	}

	dueDate := ""
	if raw, present := record["due_date"]; present {
		s, isString := raw.(string)
		if !isString || !models.IsBoardDate(s) {
			return TaskInput{}, false
		}
		dueDate = s
	}

	return TaskInput{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		Assignee:    assignee,
		Priority:    priority,
	}, true
}
