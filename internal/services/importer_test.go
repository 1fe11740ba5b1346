package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter(t *testing.T) (*ImportService, *taskStoreImpl) {
	t.Helper()
	store, _ := newTestStore(t)
	return NewImportService(zerolog.Nop(), store), store
}

func TestImportRejectsNonArray(t *testing.T) {
	importer, store := newTestImporter(t)

	for _, payload := range []string{
		`{"title":"not an array"}`,
		`"scalar"`,
		`not json at all`,
	} {
		_, err := importer.ImportJSON([]byte(payload))
		assert.ErrorIs(t, err, ErrImportNotArray, "payload %s", payload)
	}
	assert.Empty(t, store.Snapshot())
}

func TestImportRejectsEmptyArray(t *testing.T) {
	importer, _ := newTestImporter(t)

	_, err := importer.ImportJSON([]byte(`[]`))
	assert.ErrorIs(t, err, ErrImportEmpty)
}

func TestImportTallyWithMixedRecords(t *testing.T) {
	importer, store := newTestImporter(t)

	payload := `[
		{"title":"A","description":"d","status":"todo","priority":"low","assignee":"x"},
		{"title":123,"description":"d","status":"todo","priority":"low","assignee":"x"}
	]`
	result, err := importer.ImportJSON([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, ImportResult{SuccessCount: 1, TotalCount: 2}, result)

	tasks := store.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)
}

func TestImportCountsNonObjectElements(t *testing.T) {
	importer, store := newTestImporter(t)

	// A scalar inside the array is one invalid record, not grounds
	// for rejecting the whole payload.
	payload := `[
		{"title":"A","description":"d","status":"todo","priority":"low","assignee":"x"},
		123
	]`
	result, err := importer.ImportJSON([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{SuccessCount: 1, TotalCount: 2}, result)

	tasks := store.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)
}

func TestImportAllElementsMalformed(t *testing.T) {
	importer, store := newTestImporter(t)

	result, err := importer.ImportJSON([]byte(`[null, "x", [1,2], 7]`))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{SuccessCount: 0, TotalCount: 4}, result)
	assert.Empty(t, store.Snapshot())
}

func TestImportValidation(t *testing.T) {
	tests := []struct {
		name   string
		record string
		valid  bool
	}{
		{
			name:   "all fields valid",
			record: `{"title":"t","description":"d","status":"todo","priority":"low","assignee":""}`,
			valid:  true,
		},
		{
			name:   "valid with due date",
			record: `{"title":"t","description":"d","status":"todo","priority":"low","assignee":"","due_date":"07-03-2025"}`,
			valid:  true,
		},
		{
			name:   "missing description",
			record: `{"title":"t","status":"todo","priority":"low","assignee":""}`,
			valid:  false,
		},
		{
			name:   "status not a string",
			record: `{"title":"t","description":"d","status":7,"priority":"low","assignee":""}`,
			valid:  false,
		},
		{
			name:   "assignee null",
			record: `{"title":"t","description":"d","status":"todo","priority":"low","assignee":null}`,
			valid:  false,
		},
		{
			name:   "due date wrong shape",
			record: `{"title":"t","description":"d","status":"todo","priority":"low","assignee":"","due_date":"2025-03-07"}`,
			valid:  false,
		},
		{
			name:   "due date not a string",
			record: `{"title":"t","description":"d","status":"todo","priority":"low","assignee":"","due_date":7032025}`,
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importer, store := newTestImporter(t)

			result, err := importer.ImportJSON([]byte("[" + tt.record + "]"))
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, 1, result.SuccessCount)
				assert.Len(t, store.Snapshot(), 1)
			} else {
				require.NoError(t, err)
				assert.Zero(t, result.SuccessCount)
				assert.Empty(t, store.Snapshot())
			}
		})
	}
}

func TestImportKeepsBoardDateForm(t *testing.T) {
	importer, store := newTestImporter(t)

	payload := `[{"title":"t","description":"d","status":"todo","priority":"low","assignee":"","due_date":"07-03-2025"}]`
	_, err := importer.ImportJSON([]byte(payload))
	require.NoError(t, err)

	tasks := store.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, "07-03-2025", tasks[0].DueDate)
}
