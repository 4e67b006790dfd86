// Package viewer holds the presentation client state: filters, fetch status
// and the customer table.
package viewer

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/unclebandit/customer-viewer/internal/client"
	"github.com/unclebandit/customer-viewer/internal/model"
	"github.com/unclebandit/customer-viewer/internal/queue"
	"github.com/unclebandit/customer-viewer/internal/table"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "idle"
}

// Fetcher loads customers for a filter. *client.Client satisfies it.
type Fetcher interface {
	ListCustomers(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error)
}

type Options struct {
	// Location is the zone the date and time columns are shown in. Defaults to time.Local.
	Location *time.Location
	PageSize int
	// DiscardStale drops responses from fetches that a later filter change
	// has superseded. When false, whichever response arrives last is shown.
	DiscardStale bool
	// OnChange is called, without locks held, after every state change.
	OnChange func()
}

type Viewer struct {
	ctx     context.Context
	fetcher Fetcher
	opts    Options

	mu         sync.Mutex
	filter     model.CustomerFilter
	status     Status
	err        error
	table      *table.Table[client.Row]
	generation uint64
	pending    int

	inflight sync.WaitGroup
}

func New(ctx context.Context, fetcher Fetcher, opts Options) *Viewer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.PageSize < 1 {
		opts.PageSize = table.DefaultPageSize
	}
	return &Viewer{
		ctx:     ctx,
		fetcher: fetcher,
		opts:    opts,
		table:   table.New(Columns, opts.PageSize),
	}
}

// SetNameFilter updates the name filter and fetches right away.
func (v *Viewer) SetNameFilter(name string) {
	v.mu.Lock()
	v.filter.Name = name
	v.mu.Unlock()
	v.fetch()
}

// SetLocationFilter updates the location filter and fetches right away.
func (v *Viewer) SetLocationFilter(location string) {
	v.mu.Lock()
	v.filter.Location = location
	v.mu.Unlock()
	v.fetch()
}

// Refresh fetches again with the current filters.
func (v *Viewer) Refresh() {
	v.fetch()
}

// RefreshOn refetches every time a seed batch lands.
func (v *Viewer) RefreshOn(q queue.Queue) error {
	return q.Subscribe(queue.TopicCustomersSeeded, queue.SeedEventHandler(func(ev queue.SeedEvent) {
		log.Printf("📩 %d customers seeded, refreshing\n", ev.Inserted)
		v.Refresh()
	}))
}

// Wait blocks until every fetch started so far has been applied or dropped.
func (v *Viewer) Wait() {
	v.inflight.Wait()
}

func (v *Viewer) fetch() {
	v.mu.Lock()
	v.generation++
	v.pending++
	gen := v.generation
	filter := v.filter
	v.status = StatusLoading
	v.err = nil
	v.inflight.Add(1)
	v.mu.Unlock()
	v.notify()

	go func() {
		defer v.inflight.Done()
		customers, err := v.fetcher.ListCustomers(v.ctx, filter)
		v.apply(gen, customers, err)
	}()
}

// apply records one fetch result. Status stays loading while any other
// fetch is still outstanding.
func (v *Viewer) apply(gen uint64, customers []model.Customer, err error) {
	v.mu.Lock()
	v.pending--
	switch {
	case v.opts.DiscardStale && gen != v.generation:
		// superseded, only the status may change
	case err != nil:
		log.Println("❌ Error:", err)
		v.err = err
	default:
		v.err = nil
		v.table.SetData(client.SplitAll(customers, v.opts.Location))
	}

	switch {
	case v.pending > 0:
		v.status = StatusLoading
	case v.err != nil:
		v.status = StatusError
	default:
		v.status = StatusSuccess
	}
	v.mu.Unlock()
	v.notify()
}

func (v *Viewer) notify() {
	if v.opts.OnChange != nil {
		v.opts.OnChange()
	}
}

// Snapshot is a consistent copy of what should be on screen.
type Snapshot struct {
	Filter    model.CustomerFilter
	Status    Status
	Err       error
	Page      []client.Row
	PageIndex int
	PageCount int
	Total     int
	SortKey   string
	SortDesc  bool
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	key, desc, _ := v.table.SortState()
	return Snapshot{
		Filter:    v.filter,
		Status:    v.status,
		Err:       v.err,
		Page:      v.table.Page(),
		PageIndex: v.table.PageIndex(),
		PageCount: v.table.PageCount(),
		Total:     v.table.Len(),
		SortKey:   key,
		SortDesc:  desc,
	}
}

// withTable runs fn on the table under the lock and then notifies.
func (v *Viewer) withTable(fn func(t *table.Table[client.Row]) error) error {
	v.mu.Lock()
	err := fn(v.table)
	v.mu.Unlock()
	if err == nil {
		v.notify()
	}
	return err
}

func (v *Viewer) ToggleSort(key string) error {
	return v.withTable(func(t *table.Table[client.Row]) error { return t.ToggleSort(key) })
}

func (v *Viewer) FirstPage() { v.withTable(func(t *table.Table[client.Row]) error { t.FirstPage(); return nil }) }
func (v *Viewer) LastPage()  { v.withTable(func(t *table.Table[client.Row]) error { t.LastPage(); return nil }) }
func (v *Viewer) NextPage()  { v.withTable(func(t *table.Table[client.Row]) error { t.NextPage(); return nil }) }

func (v *Viewer) PreviousPage() {
	v.withTable(func(t *table.Table[client.Row]) error { t.PreviousPage(); return nil })
}

// GotoPage takes a zero-based page index.
func (v *Viewer) GotoPage(i int) {
	v.withTable(func(t *table.Table[client.Row]) error { t.GotoPage(i); return nil })
}
