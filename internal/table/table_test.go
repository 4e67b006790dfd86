package table

import (
	"cmp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/customer-viewer/internal/errors"
)

type item struct {
	ID    int
	Score int
}

var itemColumns = []Column[item]{
	{
		Key:     "id",
		Header:  "ID",
		Value:   func(i item) string { return strconv.Itoa(i.ID) },
		Compare: func(a, b item) int { return cmp.Compare(a.ID, b.ID) },
	},
	{
		Key:     "score",
		Header:  "Score",
		Value:   func(i item) string { return strconv.Itoa(i.Score) },
		Compare: func(a, b item) int { return cmp.Compare(a.Score, b.Score) },
	},
}

// makeItems returns n items with IDs 1..n and scores cycling through 0..6.
func makeItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{ID: i + 1, Score: (i * 5) % 7}
	}
	return items
}

func ids(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestPagination_45Rows(t *testing.T) {
	tbl := New(itemColumns, DefaultPageSize)
	data := makeItems(45)
	tbl.SetData(data)

	require.Equal(t, 3, tbl.PageCount())
	firstPage := tbl.Page()
	assert.Len(t, firstPage, 20)
	assert.False(t, tbl.CanPreviousPage())
	assert.True(t, tbl.CanNextPage())

	tbl.LastPage()
	assert.Equal(t, 2, tbl.PageIndex())
	assert.Len(t, tbl.Page(), 5)
	assert.False(t, tbl.CanNextPage())

	tbl.FirstPage()
	assert.Equal(t, 0, tbl.PageIndex())
	assert.Equal(t, ids(data[:20]), ids(tbl.Page()))
	assert.Equal(t, ids(firstPage), ids(tbl.Page()))
}

func TestPagination_NextPrevious(t *testing.T) {
	tbl := New(itemColumns, 20)
	tbl.SetData(makeItems(45))

	tbl.PreviousPage()
	assert.Equal(t, 0, tbl.PageIndex())

	tbl.NextPage()
	assert.Equal(t, []int{21, 22}, ids(tbl.Page())[:2])

	tbl.NextPage()
	tbl.NextPage()
	assert.Equal(t, 2, tbl.PageIndex(), "next on the last page stays put")

	tbl.PreviousPage()
	assert.Equal(t, 1, tbl.PageIndex())

	tbl.GotoPage(99)
	assert.Equal(t, 2, tbl.PageIndex())
	tbl.GotoPage(-3)
	assert.Equal(t, 0, tbl.PageIndex())
}

func TestPagination_Empty(t *testing.T) {
	tbl := New(itemColumns, 20)
	tbl.SetData(nil)

	assert.Equal(t, 0, tbl.PageCount())
	assert.Empty(t, tbl.Page())
	assert.False(t, tbl.CanNextPage())
	assert.False(t, tbl.CanPreviousPage())

	tbl.LastPage()
	assert.Equal(t, 0, tbl.PageIndex())
}

func TestToggleSort_SortsFullSetNotJustPage(t *testing.T) {
	tbl := New(itemColumns, 20)
	data := makeItems(45)
	tbl.SetData(data)

	require.NoError(t, tbl.ToggleSort("score"))
	key, desc, sorted := tbl.SortState()
	assert.Equal(t, "score", key)
	assert.False(t, desc)
	assert.True(t, sorted)

	rows := tbl.Rows()
	require.Len(t, rows, 45)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Score, rows[i].Score)
	}
	// lowest scores anywhere in the set come first, not just those from page one
	assert.Equal(t, 0, tbl.Page()[0].Score)

	require.NoError(t, tbl.ToggleSort("score"))
	_, desc, _ = tbl.SortState()
	assert.True(t, desc)
	rows = tbl.Rows()
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Score, rows[i].Score)
	}

	require.NoError(t, tbl.ToggleSort("score"))
	_, _, sorted = tbl.SortState()
	assert.False(t, sorted)
	assert.Equal(t, ids(data), ids(tbl.Rows()))
}

func TestToggleSort_IsStable(t *testing.T) {
	tbl := New(itemColumns, 20)
	tbl.SetData(makeItems(45))
	require.NoError(t, tbl.ToggleSort("score"))

	rows := tbl.Rows()
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Score == rows[i].Score {
			assert.Less(t, rows[i-1].ID, rows[i].ID, "equal keys keep fetched order")
		}
	}
}

func TestToggleSort_OtherColumnStartsAscending(t *testing.T) {
	tbl := New(itemColumns, 20)
	tbl.SetData(makeItems(10))

	require.NoError(t, tbl.ToggleSort("id"))
	require.NoError(t, tbl.ToggleSort("id"))
	require.NoError(t, tbl.ToggleSort("score"))

	key, desc, _ := tbl.SortState()
	assert.Equal(t, "score", key)
	assert.False(t, desc)
}

func TestToggleSort_ResetsPageAndUnknownColumn(t *testing.T) {
	tbl := New(itemColumns, 20)
	tbl.SetData(makeItems(45))
	tbl.LastPage()

	require.NoError(t, tbl.ToggleSort("id"))
	assert.Equal(t, 0, tbl.PageIndex())

	err := tbl.ToggleSort("missing")
	var colErr *appErrors.ErrUnknownColumn
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "missing", colErr.Key)
}

func TestSetData_KeepsSortResetsPage(t *testing.T) {
	tbl := New(itemColumns, 20)
	tbl.SetData(makeItems(45))
	require.NoError(t, tbl.ToggleSort("id"))
	require.NoError(t, tbl.ToggleSort("id"))
	tbl.NextPage()

	tbl.SetData(makeItems(30))
	assert.Equal(t, 0, tbl.PageIndex())
	assert.Equal(t, 30, tbl.Page()[0].ID)
}
