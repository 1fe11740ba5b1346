package services

import (
	"sort"
	"strings"

	"github.com/robinrdj/go-taskboard/internal/models"
)

// Sort options for board columns.
const (
	SortNone      = "none"
	SortDueDate   = "due_date"
	SortPriority  = "priority"
	SortTitle     = "title"
	SortCreatedOn = "created_on"
)

var priorityRank = map[string]int{
	models.PriorityHigh:   1,
	models.PriorityMedium: 2,
	models.PriorityLow:    3,
}

// BoardFilters narrows the board to tasks matching every non-empty
// field. The date bounds are inclusive YYYY-MM-DD strings.
type BoardFilters struct {
	Status       string
	Priority     string
	Assignee     string
	DueStart     string
	DueEnd       string
	CreatedStart string
	CreatedEnd   string
}

// BoardParams are the inputs of one board computation.
type BoardParams struct {
	Search  string
	SortBy  string
	Filters BoardFilters
}

// BoardColumn is one status bucket of the board.
type BoardColumn struct {
	Status  string  `json:"status"`
	Name    string  `json:"name"`
	TaskIDs []int64 `json:"task_ids"`
}

// BoardView is the render-ready board: a lookup map of the tasks that
// passed the filters plus the four status columns in fixed order.
// Column id lists are disjoint and their union is exactly the
// filtered id set.
type BoardView struct {
	Tasks   map[int64]models.Task `json:"tasks"`
	Columns []BoardColumn         `json:"columns"`
}

// ComposeBoard filters, groups and sorts the collection into a board.
// It is a pure function of its inputs: recompute whenever the
// collection or the parameters change.
func ComposeBoard(tasks []models.Task, params BoardParams) BoardView {
	search := strings.ToLower(params.Search)

	view := BoardView{
		Tasks:   make(map[int64]models.Task),
		Columns: make([]BoardColumn, 0, len(models.Statuses)),
	}

	grouped := make(map[string][]models.Task, len(models.Statuses))
	for _, task := range tasks {
		if !matchesSearch(task, search) || !matchesFilters(task, params.Filters) {
			continue
		}
		// A status outside the four columns has nowhere to render;
		// keeping it out of the map preserves the guarantee that the
		// column id lists partition the visible task set.
		if !models.IsValidStatus(task.Status) {
			continue
		}
		view.Tasks[task.ID] = task
		grouped[task.Status] = append(grouped[task.Status], task)
	}

	for _, status := range models.Statuses {
		column := grouped[status]
		sortColumn(column, params.SortBy)

		ids := make([]int64, len(column))
		for i, task := range column {
			ids[i] = task.ID
		}
		view.Columns = append(view.Columns, BoardColumn{
			Status:  status,
			Name:    models.StatusDisplayName[status],
			TaskIDs: ids,
		})
	}
	return view
}

func matchesSearch(task models.Task, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), search) ||
		strings.Contains(strings.ToLower(task.Description), search)
}

func matchesFilters(task models.Task, f BoardFilters) bool {
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	if f.Assignee != "" && task.Assignee != f.Assignee {
		return false
	}
	if !matchesDateRange(models.BoardDateToISO(task.DueDate), f.DueStart, f.DueEnd) {
		return false
	}
	createdDate := task.CreatedOn
	if len(createdDate) >= len(models.ISODateLayout) {
		createdDate = createdDate[:len(models.ISODateLayout)]
	}
	return matchesDateRange(createdDate, f.CreatedStart, f.CreatedEnd)
}

// matchesDateRange compares date-only ISO strings, where plain string
// order is chronological order. An inactive range always passes; an
// active range excludes tasks without a date.
func matchesDateRange(date, start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	if date == "" {
		return false
	}
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

func sortColumn(column []models.Task, sortBy string) {
	switch sortBy {
	case SortDueDate:
		// Missing due dates convert to the empty string and sort
		// first.
		sort.SliceStable(column, func(i, j int) bool {
			return models.BoardDateToISO(column[i].DueDate) <
				models.BoardDateToISO(column[j].DueDate)
		})
	case SortPriority:
		sort.SliceStable(column, func(i, j int) bool {
			return priorityRank[column[i].Priority] < priorityRank[column[j].Priority]
		})
	case SortTitle:
		sort.SliceStable(column, func(i, j int) bool {
			return column[i].Title < column[j].Title
		})
	case SortCreatedOn:
		// Ids are assigned in creation order, so ordering by id is
		// ordering by creation.
		sort.SliceStable(column, func(i, j int) bool {
			return column[i].ID < column[j].ID
		})
	}
}
