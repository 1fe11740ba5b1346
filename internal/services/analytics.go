package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/robinrdj/go-taskboard/internal/models"
)

const (
	// Trailing windows of the completion charts.
	dailyWindowDays   = 14
	weeklyWindowWeeks = 4
)

// DailyCount is one day of the trailing completion window.
type DailyCount struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// WeeklyCount is one week of the trailing completion window.
type WeeklyCount struct {
	Week      string `json:"week"`
	Completed int    `json:"completed"`
}

// LabelCount is a per-status or per-priority tally.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnalyticsReport is a read-only view over a task snapshot.
type AnalyticsReport struct {
	Daily      []DailyCount  `json:"daily_completions"`
	Weekly     []WeeklyCount `json:"weekly_completions"`
	ByStatus   []LabelCount  `json:"status_breakdown"`
	ByPriority []LabelCount  `json:"priority_breakdown"`
	Overdue    []models.Task `json:"overdue_tasks"`
}

// BuildAnalyticsReport computes every breakdown from the snapshot,
// anchored on now.
func BuildAnalyticsReport(tasks []models.Task, now time.Time) AnalyticsReport {
	return AnalyticsReport{
		Daily:      dailyCompletions(tasks, now),
		Weekly:     weeklyCompletions(tasks, now),
		ByStatus:   countByLabel(tasks, models.Statuses, func(t models.Task) string { return t.Status }),
		ByPriority: countByLabel(tasks, models.Priorities, func(t models.Task) string { return t.Priority }),
		Overdue:    overdueTasks(tasks, now),
	}
}

func dailyCompletions(tasks []models.Task, now time.Time) []DailyCount {
	perDay := make(map[string]int)
	for _, task := range tasks {
		if task.Status != models.StatusCompleted {
			continue
		}
		completedAt, ok := task.CompletedAt()
		if !ok {
			continue
		}
		perDay[models.FormatBoardDate(completedAt)]++
	}

	counts := make([]DailyCount, 0, dailyWindowDays)
	for i := dailyWindowDays - 1; i >= 0; i-- {
		date := models.FormatBoardDate(now.AddDate(0, 0, -i))
		counts = append(counts, DailyCount{
			Date:      date,
			Completed: perDay[date],
		})
	}
	return counts
}

func weeklyCompletions(tasks []models.Task, now time.Time) []WeeklyCount {
	counts := make([]WeeklyCount, 0, weeklyWindowWeeks)
	for i := weeklyWindowWeeks - 1; i >= 0; i-- {
		weekStart := startOfDay(now.AddDate(0, 0, -7*i))
		weekEnd := weekStart.AddDate(0, 0, 7)

		completed := 0
		for _, task := range tasks {
			if task.Status != models.StatusCompleted {
				continue
			}
			completedAt, ok := task.CompletedAt()
			if !ok {
				continue
			}
			if !completedAt.Before(weekStart) && completedAt.Before(weekEnd) {
				completed++
			}
		}

		counts = append(counts, WeeklyCount{
			Week: fmt.Sprintf("%s to %s",
				models.FormatBoardDate(weekStart),
				models.FormatBoardDate(weekEnd.AddDate(0, 0, -1))),
			Completed: completed,
		})
	}
	return counts
}

func countByLabel(tasks []models.Task, labels []string, key func(models.Task) string) []LabelCount {
	perLabel := make(map[string]int)
	for _, task := range tasks {
		perLabel[key(task)]++
	}

	counts := make([]LabelCount, 0, len(labels))
	for _, label := range labels {
		counts = append(counts, LabelCount{Label: label, Count: perLabel[label]})
	}
	return counts
}

func overdueTasks(tasks []models.Task, now time.Time) []models.Task {
	overdue := make([]models.Task, 0)
	for _, task := range tasks {
		if task.Status == models.StatusCompleted || task.DueDate == "" {
			continue
		}
		due, err := models.ParseBoardDate(task.DueDate)
		if err != nil {
			continue
		}
		if due.Before(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue
}

func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// Report sheet names.
const (
	sheetDaily    = "Daily Completions"
	sheetWeekly   = "Weekly Completions"
	sheetStatus   = "Status Breakdown"
	sheetPriority = "Priority Breakdown"
)

// ExportAnalyticsXLSX renders the report as a workbook with one sheet
// per breakdown.
func ExportAnalyticsXLSX(report AnalyticsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	daily := make([][]any, 0, len(report.Daily)+1)
	daily = append(daily, []any{"Date", "CompletedTasks"})
	for _, row := range report.Daily {
		daily = append(daily, []any{row.Date, row.Completed})
	}

	weekly := make([][]any, 0, len(report.Weekly)+1)
	weekly = append(weekly, []any{"Week", "CompletedTasks"})
	for _, row := range report.Weekly {
		weekly = append(weekly, []any{row.Week, row.Completed})
	}

	status := make([][]any, 0, len(report.ByStatus)+1)
	status = append(status, []any{"Status", "Count"})
	for _, row := range report.ByStatus {
		status = append(status, []any{row.Label, row.Count})
	}

	priority := make([][]any, 0, len(report.ByPriority)+1)
	priority = append(priority, []any{"Priority", "Count"})
	for _, row := range report.ByPriority {
		priority = append(priority, []any{row.Label, row.Count})
	}

	sheets := []struct {
		name string
		rows [][]any
	}{
		{sheetDaily, daily},
		{sheetWeekly, weekly},
		{sheetStatus, status},
		{sheetPriority, priority},
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			err := f.SetSheetName("Sheet1", sheet.name)
			if err != nil {
				return nil, err
			}
		} else {
			_, err := f.NewSheet(sheet.name)
			if err != nil {
				return nil, err
			}
		}

		for rowIdx, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			err = f.SetSheetRow(sheet.name, cell, &row)
			if err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
