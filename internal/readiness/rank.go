package readiness

import (
	"sort"

	"github.com/Ezio016/MyFridge/internal/domain"
)

// Pagination and mode defaults applied when a caller passes zero or
// negative values
const (
	DefaultPageSize         = 12
	DefaultLightningMaxTime = 15
)

// Candidate pairs a recipe with its readiness for ranking. UsesExpiring
// is supplied by the caller (the engine does not look at expiry data).
type Candidate struct {
	Recipe       domain.Recipe          `json:"recipe"`
	Readiness    domain.RecipeReadiness `json:"readiness"`
	UsesExpiring bool                   `json:"uses_expiring"`
}

// Options select mode, filters and pagination for one ranking call.
// All selection state is passed explicitly per call; nothing is held
// between passes.
type Options struct {
	Mode           domain.BrowseMode
	MaxTimeMinutes int // lightning threshold; <= 0 uses the default
	ExpiringOnly   bool
	PageSize       int
	Page           int // 1-indexed
}

// Page is the display-ready result of one ranking call
type Page struct {
	Mode          domain.BrowseMode `json:"mode"`
	Results       []Candidate       `json:"results"`
	TotalMatching int               `json:"total_matching"`
	TotalPages    int               `json:"total_pages"`
	ReadyCount    int               `json:"ready_count"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
}

// Rank filters the candidates by mode, orders them for display and
// returns the requested page. Input order is the catalog order; both
// modes are stable with respect to it. Invalid page numbers and sizes
// are normalized, never allowed to produce negative slice bounds, and a
// page past the end yields an empty result - a normal outcome, not an
// error.
func Rank(candidates []Candidate, opts Options) Page {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Mode == "" {
		opts.Mode = domain.ModeExplore
	}

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if opts.ExpiringOnly && !c.UsesExpiring {
			continue
		}
		filtered = append(filtered, c)
	}

	switch opts.Mode {
	case domain.ModeLightning:
		threshold := opts.MaxTimeMinutes
		if threshold <= 0 {
			threshold = DefaultLightningMaxTime
		}
		kept := filtered[:0]
		for _, c := range filtered {
			if anyMainMatched(c.Readiness) && c.Recipe.TotalTimeMinutes < threshold {
				kept = append(kept, c)
			}
		}
		filtered = kept
	default: // explore
		// Ready recipes first, then ascending missing count. Stability is
		// mandatory: ties keep catalog order.
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i].Readiness, filtered[j].Readiness
			if a.Ready != b.Ready {
				return a.Ready
			}
			return a.MissingMainCount < b.MissingMainCount
		})
	}

	page := Page{
		Mode:          opts.Mode,
		Results:       []Candidate{},
		TotalMatching: len(filtered),
		Page:          opts.Page,
		PageSize:      opts.PageSize,
	}
	for _, c := range filtered {
		if c.Readiness.Ready {
			page.ReadyCount++
		}
	}
	if page.TotalMatching > 0 {
		page.TotalPages = (page.TotalMatching + opts.PageSize - 1) / opts.PageSize
	}

	start := (opts.Page - 1) * opts.PageSize
	if start < page.TotalMatching {
		end := start + opts.PageSize
		if end > page.TotalMatching {
			end = page.TotalMatching
		}
		page.Results = append(page.Results, filtered[start:end]...)
	}

	return page
}

func anyMainMatched(r domain.RecipeReadiness) bool {
	for _, has := range r.HasMain {
		if has {
			return true
		}
	}
	return false
}
