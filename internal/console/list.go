package console

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"creativehub/internal/client"
	"creativehub/internal/domain/entity"

	"github.com/pkg/errors"
)

// FilterAll matches every status or type.
const FilterAll = "all"

// SortOrder selects the comparator applied by Visible.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
)

// ParseSortOrder validates a user-supplied sort key.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortNone, SortNewest, SortOldest, SortPriceLow, SortPriceHigh, SortRating:
		return o, nil
	default:
		return SortNone, errors.Errorf("unknown sort %q (newest, oldest, price-low, price-high, rating)", s)
	}
}

// ErrClosed is returned by a controller after Close.
var ErrClosed = errors.New("view closed")

// Query is the client-side view state of a list page.
type Query struct {
	Search string
	Status string
	Type   string
	SortBy SortOrder
}

// Fields tells a list controller how to read an entity. Nil accessors disable the matching
// filter or sort.
type Fields[T any] struct {
	ID        func(T) string
	Search    func(T) []string
	Status    func(T) string
	Type      func(T) string
	CreatedAt func(T) time.Time
	Price     func(T) float64 // effective price
	Rating    func(T) float64
}

// Counts are the aggregates shown above a list.
type Counts struct {
	Total     int
	Published int
	Draft     int
	Pending   int
}

// Apply filters items by q and sorts the survivors. It never modifies items.
func Apply[T any](items []T, f Fields[T], q Query) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, f, q, needle) {
			out = append(out, item)
		}
	}

	if cmpFn := comparator(f, q.SortBy); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}

	return out
}

func matches[T any](item T, f Fields[T], q Query, needle string) bool {
	if q.Status != "" && q.Status != FilterAll && f.Status != nil && f.Status(item) != q.Status {
		return false
	}
	if q.Type != "" && q.Type != FilterAll && f.Type != nil && f.Type(item) != q.Type {
		return false
	}
	if needle == "" || f.Search == nil {
		return true
	}
	for _, field := range f.Search(item) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func comparator[T any](f Fields[T], order SortOrder) func(a, b T) int {
	switch {
	case order == SortNewest && f.CreatedAt != nil:
		return func(a, b T) int { return f.CreatedAt(b).Compare(f.CreatedAt(a)) }
	case order == SortOldest && f.CreatedAt != nil:
		return func(a, b T) int { return f.CreatedAt(a).Compare(f.CreatedAt(b)) }
	case order == SortPriceLow && f.Price != nil:
		return func(a, b T) int { return cmp.Compare(f.Price(a), f.Price(b)) }
	case order == SortPriceHigh && f.Price != nil:
		return func(a, b T) int { return cmp.Compare(f.Price(b), f.Price(a)) }
	case order == SortRating && f.Rating != nil:
		return func(a, b T) int { return cmp.Compare(f.Rating(b), f.Rating(a)) }
	default:
		return nil
	}
}

// CountsOf tallies items by publish status.
func CountsOf[T any](items []T, f Fields[T]) Counts {
	c := Counts{Total: len(items)}
	if f.Status == nil {
		return c
	}
	for _, item := range items {
		switch entity.PublishStatus(f.Status(item)) {
		case entity.StatusPublished:
			c.Published++
		case entity.StatusDraft:
			c.Draft++
		case entity.StatusPending:
			c.Pending++
		}
	}

	return c
}

// Lister is the slice of the resource client a list page needs.
type Lister[T any] interface {
	List(ctx context.Context, filters url.Values) ([]T, error)
	Remove(ctx context.Context, id string) error
}

// ListOptions configures a ListController.
type ListOptions struct {
	// Noun names one entity in toasts, e.g. "Graphic".
	Noun string
	// Filters are sent with every list request.
	Filters   url.Values
	Notifier  Notifier
	Confirmer Confirmer
}

// ListController owns the entities shown on one list page.
type ListController[T any] struct {
	source    Lister[T]
	fields    Fields[T]
	noun      string
	filters   url.Values
	notifier  Notifier
	confirmer Confirmer

	viewCtx context.Context
	cancel  context.CancelFunc

	mu      sync.RWMutex
	items   []T
	query   Query
	loading bool
	lastErr error
	gen     uint64
	closed  bool
}

// NewListController binds a controller to source. The controller lives until Close.
func NewListController[T any](source Lister[T], fields Fields[T], opts ListOptions) *ListController[T] {
	viewCtx, cancel := context.WithCancel(context.Background())
	if opts.Notifier == nil {
		opts.Notifier = NewRecorder()
	}
	if opts.Noun == "" {
		opts.Noun = "Item"
	}

	return &ListController[T]{
		source:    source,
		fields:    fields,
		noun:      opts.Noun,
		filters:   opts.Filters,
		notifier:  opts.Notifier,
		confirmer: opts.Confirmer,
		viewCtx:   viewCtx,
		cancel:    cancel,
		query:     Query{Status: FilterAll, Type: FilterAll},
	}
}

// Load replaces the list with a fresh fetch. A failure empties the list; the error is
// notified and returned. Results of a load superseded by a newer one are dropped.
func (lc *ListController[T]) Load(ctx context.Context) error {
	lc.mu.Lock()
	if lc.closed {
		lc.mu.Unlock()

		return ErrClosed
	}
	lc.gen++
	gen := lc.gen
	lc.loading = true
	lc.mu.Unlock()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(lc.viewCtx, cancel)
	defer stop()

	items, err := lc.source.List(reqCtx, lc.filters)

	lc.mu.Lock()
	if lc.closed {
		lc.mu.Unlock()

		return ErrClosed
	}
	if gen != lc.gen {
		lc.mu.Unlock()

		return nil
	}
	lc.loading = false
	lc.lastErr = err
	if err != nil {
		lc.items = nil
	} else {
		lc.items = items
	}
	lc.mu.Unlock()

	if err != nil {
		lc.notifier.Error(client.Message(err, fmt.Sprintf("Failed to load %s list", strings.ToLower(lc.noun))))

		return err
	}

	return nil
}

// SetQuery replaces the view filters. Empty status or type means FilterAll.
func (lc *ListController[T]) SetQuery(q Query) {
	if q.Status == "" {
		q.Status = FilterAll
	}
	if q.Type == "" {
		q.Type = FilterAll
	}

	lc.mu.Lock()
	lc.query = q
	lc.mu.Unlock()
}

// Query returns the current view filters.
func (lc *ListController[T]) Query() Query {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return lc.query
}

// Items returns the full fetched list.
func (lc *ListController[T]) Items() []T {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return slices.Clone(lc.items)
}

// Visible returns the filtered and sorted list for the current query.
func (lc *ListController[T]) Visible() []T {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return Apply(lc.items, lc.fields, lc.query)
}

// Counts recomputes the aggregates over the full list.
func (lc *ListController[T]) Counts() Counts {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return CountsOf(lc.items, lc.fields)
}

// Loading reports whether a load is in flight.
func (lc *ListController[T]) Loading() bool {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return lc.loading
}

// Err is the error of the last completed load.
func (lc *ListController[T]) Err() error {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return lc.lastErr
}

// Delete removes one entity after confirmation, then refetches the whole list.
func (lc *ListController[T]) Delete(ctx context.Context, id, label string) error {
	if lc.isClosed() {
		return ErrClosed
	}
	if lc.confirmer == nil {
		return errors.New("delete requires a confirmer")
	}

	prompt := fmt.Sprintf("Delete %s %q? This cannot be undone.", strings.ToLower(lc.noun), label)
	err := Guarded(ctx, lc.confirmer, lc.notifier, prompt, func(ctx context.Context) error {
		if err := lc.source.Remove(ctx, id); err != nil {
			lc.notifier.Error(client.Message(err, fmt.Sprintf("Failed to delete %s", strings.ToLower(lc.noun))))

			return err
		}
		lc.notifier.Success(lc.noun + " deleted successfully")

		return nil
	})
	if err != nil {
		return err
	}

	return lc.Load(ctx)
}

// Close cancels in-flight requests and discards their results.
func (lc *ListController[T]) Close() {
	lc.mu.Lock()
	lc.closed = true
	lc.mu.Unlock()
	lc.cancel()
}

func (lc *ListController[T]) isClosed() bool {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	return lc.closed
}
