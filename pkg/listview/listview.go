package listview

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// DefaultPageSize is the fixed dashboard page size
const DefaultPageSize = 10

// State classifies what a dashboard should render for a result set
type State string

const (
	// StateOK means there are rows to show
	StateOK State = "ok"
	// StateNoData means the collection is empty overall; dashboards show the
	// "no data found" affordance with a creation shortcut
	StateNoData State = "no_data"
	// StateNoResults means data exists but the current filter/search matched
	// nothing; dashboards show an inline "no results" row, not the creation
	// affordance
	StateNoResults State = "no_results"
)

// Page is one rendered page of a filtered, searched, paginated list
type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int   `json:"total_pages"`
	Total       int   `json:"total"`
	Matched     int   `json:"matched"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
	State       State `json:"state"`
}

// Options configures one Build pass
type Options[T any] struct {
	// Decorate joins a denormalized display field onto each record before
	// filtering so the joined value is searchable too. Optional.
	Decorate func(T) T
	// Filter is the equality filter applied after decoration. Optional.
	Filter func(T) bool
	// Search is the free-text term matched case-insensitively against every
	// stringified field value of a record.
	Search string
	// Page is the requested page, clamped to [1, TotalPages].
	Page int
	// PageSize defaults to DefaultPageSize when zero.
	PageSize int
}

// Build runs the dashboard pipeline in its fixed order: decorate, equality
// filter, free-text search, paginate. The full record list is expected; there
// is no server-side pagination upstream.
func Build[T any](items []T, opts Options[T]) Page[T] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	decorated := items
	if opts.Decorate != nil {
		decorated = make([]T, len(items))
		for i, item := range items {
			decorated[i] = opts.Decorate(item)
		}
	}

	matched := decorated
	if opts.Filter != nil {
		matched = make([]T, 0, len(decorated))
		for _, item := range decorated {
			if opts.Filter(item) {
				matched = append(matched, item)
			}
		}
	}

	if term := strings.TrimSpace(opts.Search); term != "" {
		searched := make([]T, 0, len(matched))
		for _, item := range matched {
			if matchesSearch(item, term) {
				searched = append(searched, item)
			}
		}
		matched = searched
	}

	totalPages := int(math.Ceil(float64(len(matched)) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	state := StateOK
	if len(items) == 0 {
		state = StateNoData
	} else if len(matched) == 0 {
		state = StateNoResults
	}

	return Page[T]{
		Items:       matched[start:end],
		CurrentPage: page,
		PerPage:     pageSize,
		TotalPages:  totalPages,
		Total:       len(items),
		Matched:     len(matched),
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
		State:       state,
	}
}

// matchesSearch reports whether any stringified field value of item contains
// term, case-insensitively. Records are flattened through their JSON form so
// nested lists (phone numbers, comments) are searchable as well.
func matchesSearch(item any, term string) bool {
	raw, err := json.Marshal(item)
	if err != nil {
		return false
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return false
	}

	term = strings.ToLower(term)
	var values []string
	collectValues(generic, &values)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func collectValues(v any, out *[]string) {
	switch val := v.(type) {
	case map[string]any:
		for _, child := range val {
			collectValues(child, out)
		}
	case []any:
		for _, child := range val {
			collectValues(child, out)
		}
	case nil:
		// skip
	case string:
		*out = append(*out, val)
	case float64:
		// trim the ".0" json gives integers
		if val == math.Trunc(val) {
			*out = append(*out, fmt.Sprintf("%d", int64(val)))
		} else {
			*out = append(*out, fmt.Sprintf("%v", val))
		}
	default:
		*out = append(*out, fmt.Sprintf("%v", val))
	}
}

// View tracks the UI state of one dashboard: current page, search term and
// equality filter. Changing the search term or the filter resets the page to
// 1; plain page navigation does not.
type View struct {
	page   int
	search string
	filter string
}

// NewView creates a view positioned on page 1 with no search or filter
func NewView() *View {
	return &View{page: 1}
}

// SetSearch updates the search term, resetting the page when it changes
func (v *View) SetSearch(term string) {
	if term != v.search {
		v.search = term
		v.page = 1
	}
}

// SetFilter updates the equality filter value, resetting the page when it changes
func (v *View) SetFilter(value string) {
	if value != v.filter {
		v.filter = value
		v.page = 1
	}
}

// SetPage moves to the requested page; clamping happens in Build
func (v *View) SetPage(page int) {
	v.page = page
}

// Sync records the clamped page Build actually rendered
func (v *View) Sync(rendered int) {
	v.page = rendered
}

func (v *View) Page() int      { return v.page }
func (v *View) Search() string { return v.search }
func (v *View) Filter() string { return v.filter }
