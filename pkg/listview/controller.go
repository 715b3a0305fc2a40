// Package listview implements the fetch/filter/sort/mutate/refresh pattern
// every resource screen of the console instantiates. The raw list is a
// read-through cache of the backend: mutations never patch it locally, they
// re-fetch after the API call succeeds.
package listview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/example/martadmin/pkg/api"
	"go.uber.org/zap"
)

type SortDirection string

const (
	SortDesc SortDirection = "desc"
	SortAsc  SortDirection = "asc"
)

// Mutation actions, used for notifications and the audit trail.
const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionSetStatus = "set-status"
)

var pastTense = map[string]string{
	ActionCreate:    "created",
	ActionUpdate:    "updated",
	ActionDelete:    "deleted",
	ActionSetStatus: "status updated",
}

// Notifier receives the non-blocking success/failure toasts the flows raise.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Auditor records successful mutations. *audit.Recorder satisfies this; a
// nil recorder is a no-op.
type Auditor interface {
	Record(ctx context.Context, resource, action, entityID string)
}

// Stats is a resource-specific reduction over the raw list, recomputed from
// items on every read and never stored independently.
type Stats map[string]float64

// Descriptor parameterizes the controller for one resource.
type Descriptor[T any] struct {
	Resource string // plural route/audit key, e.g. "categories"
	Label    string // singular display name, e.g. "Category"

	Fetch        func(ctx context.Context) ([]T, error)
	SearchFields func(T) []string
	SortKey      func(T) int64
	Filters      map[string]func(T) string
	Stats        func([]T) Stats
}

type Controller[T any] struct {
	desc    Descriptor[T]
	logger  *zap.Logger
	notify  Notifier
	auditor Auditor

	mu              sync.Mutex
	items           []T
	searchText      string
	direction       SortDirection
	filters         map[string]string
	busy            bool
	mutating        bool
	lastRefreshedAt time.Time
}

func New[T any](desc Descriptor[T], logger *zap.Logger, notify Notifier, auditor Auditor) *Controller[T] {
	return &Controller[T]{
		desc:      desc,
		logger:    logger,
		notify:    notify,
		auditor:   auditor,
		direction: SortDesc,
		filters:   make(map[string]string),
	}
}

// Refresh replaces the raw list wholesale with the server's response. The
// lock is not held across the network call, so two concurrent refreshes race
// and the last response wins; that matches the screens' behavior and is kept
// deliberately (see DESIGN.md).
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.busy = true
	fetch := c.desc.Fetch
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		c.items = nil
		c.logger.Warn("list refresh failed",
			zap.String("resource", c.desc.Resource),
			zap.Error(err))
		c.notify.Error(api.UserMessage(err, fmt.Sprintf("Failed to load %s", c.desc.Resource)))
		return err
	}
	c.items = items
	c.lastRefreshedAt = time.Now()
	return nil
}

func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchText = text
}

func (c *Controller[T]) SetSortDirection(d SortDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d != SortAsc {
		d = SortDesc
	}
	c.direction = d
}

// SetFilter activates the named equality filter; an empty value deactivates
// it.
func (c *Controller[T]) SetFilter(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		delete(c.filters, name)
		return
	}
	c.filters[name] = value
}

// Items returns the raw list in server order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// View computes the filtered, sorted view from the current query state.
func (c *Controller[T]) View() []T {
	c.mu.Lock()
	items := c.items
	search := c.searchText
	direction := c.direction
	filters := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		filters[k] = v
	}
	c.mu.Unlock()
	return ApplyView(c.desc, items, search, filters, direction)
}

// Stats runs the resource's reducer over the raw list.
func (c *Controller[T]) Stats() Stats {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()
	if c.desc.Stats == nil {
		return Stats{"total": float64(len(items))}
	}
	return c.desc.Stats(items)
}

func (c *Controller[T]) LastRefreshedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefreshedAt
}

func (c *Controller[T]) IsBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Controller[T]) IsMutating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mutating
}

// Mutate runs one call-then-refresh flow. call returns the affected entity
// id for the audit trail. On API failure the raw list is left untouched and
// the server's message (or a generic fallback) is raised; on success the
// list is re-fetched first and the success toast follows only once the
// re-fetch lands, so a failed refresh shows its error alone.
func (c *Controller[T]) Mutate(ctx context.Context, action string, call func(context.Context) (string, error)) error {
	c.mu.Lock()
	c.mutating = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.mutating = false
		c.mu.Unlock()
	}()

	entityID, err := call(ctx)
	if err != nil {
		fallback := fmt.Sprintf("Failed to %s %s", action, strings.ToLower(c.desc.Label))
		c.notify.Error(api.UserMessage(err, fallback))
		return err
	}

	if c.auditor != nil {
		c.auditor.Record(ctx, c.desc.Resource, action, entityID)
	}
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.notify.Success(fmt.Sprintf("%s %s", c.desc.Label, pastTense[action]))
	return nil
}

// ApplyView is the pure filter+sort pipeline: identical inputs always yield
// an identical result, and the input slice is never mutated.
func ApplyView[T any](desc Descriptor[T], items []T, search string, filters map[string]string, direction SortDirection) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, item := range items {
		if needle != "" && !matchesSearch(desc, item, needle) {
			continue
		}
		if !matchesFilters(desc, item, filters) {
			continue
		}
		out = append(out, item)
	}

	if desc.SortKey != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if direction == SortAsc {
				return desc.SortKey(out[i]) < desc.SortKey(out[j])
			}
			return desc.SortKey(out[i]) > desc.SortKey(out[j])
		})
	}
	return out
}

// matchesSearch passes when any designated field case-insensitively contains
// the needle. Absent or empty fields never match.
func matchesSearch[T any](desc Descriptor[T], item T, needle string) bool {
	if desc.SearchFields == nil {
		return false
	}
	for _, field := range desc.SearchFields(item) {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// matchesFilters applies every active equality filter; inactive filters
// exclude nothing.
func matchesFilters[T any](desc Descriptor[T], item T, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" {
			continue
		}
		extract, ok := desc.Filters[name]
		if !ok {
			continue
		}
		if !strings.EqualFold(extract(item), want) {
			return false
		}
	}
	return true
}
