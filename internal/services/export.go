package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/robinrdj/go-taskboard/internal/models"
)

// ExportJSON renders the tasks as a pretty-printed JSON array, the
// shape the import side accepts back.
func ExportJSON(tasks []models.Task) ([]byte, error) {
	return json.MarshalIndent(tasks, "", "  ")
}

// ExportCSV renders the tasks as CSV. The header row always carries
// the full task field set, including due_date and completed_on, so
// the column layout never depends on which fields the first task
// happens to have. Every data value is double-quoted with embedded
// quotes doubled, and absent values render as the empty string. An
// empty collection yields no output.
func ExportCSV(tasks []models.Task) []byte {
	if len(tasks) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(strings.Join(models.TaskFieldNames, ","))
	for _, task := range tasks {
		b.WriteByte('\n')
		values := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Description,
			task.DueDate,
			task.Status,
			task.Assignee,
			task.Priority,
			task.CreatedOn,
			task.CompletedOn,
		}
		for i, value := range values {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(value, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}
