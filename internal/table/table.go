// Package table keeps a client-side, sortable, paginated view over a record set.
// All sorting and paging happens over the records already held; nothing here
// performs I/O.
package table

import (
	"slices"

	appErrors "github.com/unclebandit/customer-viewer/internal/errors"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 20

// Column describes one sortable column.
type Column[T any] struct {
	Key     string
	Header  string
	Value   func(T) string
	Compare func(a, b T) int
}

type Table[T any] struct {
	columns  []Column[T]
	pageSize int

	data []T // as fetched
	view []T // data in current sort order

	sortKey   string
	sortDesc  bool
	pageIndex int
}

func New[T any](columns []Column[T], pageSize int) *Table[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Table[T]{columns: columns, pageSize: pageSize}
}

func (t *Table[T]) Columns() []Column[T] { return t.columns }
func (t *Table[T]) PageSize() int        { return t.pageSize }
func (t *Table[T]) Len() int             { return len(t.data) }

// SetData replaces the record set. The current sort is kept and the page
// index goes back to the first page.
func (t *Table[T]) SetData(data []T) {
	t.data = slices.Clone(data)
	t.pageIndex = 0
	t.resort()
}

// ToggleSort cycles the column through ascending, descending and unsorted.
// Selecting a different column starts it at ascending.
func (t *Table[T]) ToggleSort(key string) error {
	if t.column(key) == nil {
		return appErrors.NewUnknownColumn(key)
	}

	switch {
	case t.sortKey != key:
		t.sortKey, t.sortDesc = key, false
	case !t.sortDesc:
		t.sortDesc = true
	default:
		t.sortKey, t.sortDesc = "", false
	}

	t.pageIndex = 0
	t.resort()
	return nil
}

// SortState reports the sorted column, if any, and its direction.
func (t *Table[T]) SortState() (key string, desc bool, sorted bool) {
	return t.sortKey, t.sortDesc, t.sortKey != ""
}

func (t *Table[T]) column(key string) *Column[T] {
	for i := range t.columns {
		if t.columns[i].Key == key {
			return &t.columns[i]
		}
	}
	return nil
}

func (t *Table[T]) resort() {
	t.view = slices.Clone(t.data)
	col := t.column(t.sortKey)
	if col == nil {
		return
	}
	cmp := col.Compare
	if t.sortDesc {
		slices.SortStableFunc(t.view, func(a, b T) int { return cmp(b, a) })
		return
	}
	slices.SortStableFunc(t.view, cmp)
}

// Rows returns the full record set in display order.
func (t *Table[T]) Rows() []T {
	return slices.Clone(t.view)
}

// PageCount is the number of pages; zero when there are no records.
func (t *Table[T]) PageCount() int {
	return (len(t.view) + t.pageSize - 1) / t.pageSize
}

func (t *Table[T]) PageIndex() int { return t.pageIndex }

// Page returns the rows on the current page.
func (t *Table[T]) Page() []T {
	start := t.pageIndex * t.pageSize
	if start >= len(t.view) {
		return []T{}
	}
	end := min(start+t.pageSize, len(t.view))
	return slices.Clone(t.view[start:end])
}

func (t *Table[T]) CanPreviousPage() bool { return t.pageIndex > 0 }
func (t *Table[T]) CanNextPage() bool     { return t.pageIndex < t.PageCount()-1 }

// GotoPage moves to page i, clamped to the available pages.
func (t *Table[T]) GotoPage(i int) {
	last := max(t.PageCount()-1, 0)
	t.pageIndex = min(max(i, 0), last)
}

func (t *Table[T]) FirstPage() { t.GotoPage(0) }
func (t *Table[T]) LastPage()  { t.GotoPage(t.PageCount() - 1) }

func (t *Table[T]) NextPage() {
	if t.CanNextPage() {
		t.pageIndex++
	}
}

func (t *Table[T]) PreviousPage() {
	if t.CanPreviousPage() {
		t.pageIndex--
	}
}
