package api

import "encoding/json"

// PageInfo is the canonical pagination block every list result carries.
// All fields are non-negative; TotalPages is never 0 so pagination controls
// can render unconditionally.
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// List is the canonical list result.
type List[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"page_info"`
}

// ListQuery carries the caller's paging intent and is the fallback source for
// fields the backend's metadata omits.
type ListQuery struct {
	Page  int
	Limit int
}

const defaultLimit = 20

func (q ListQuery) fallbackPage() int {
	if q.Page > 0 {
		return q.Page
	}
	return 1
}

func (q ListQuery) fallbackLimit() int {
	if q.Limit > 0 {
		return q.Limit
	}
	return defaultLimit
}

// rawPageMeta tolerates both the snake_case and camelCase spellings seen in
// the wild, and both the `meta` and `pagination` key vocabularies.
type rawPageMeta struct {
	Page        *int `json:"page"`
	Limit       *int `json:"limit"`
	PerPage     *int `json:"per_page"`
	PerPage2    *int `json:"perPage"`
	Total       *int `json:"total"`
	TotalCount  *int `json:"total_count"`
	TotalCount2 *int `json:"totalCount"`
	TotalPages  *int `json:"total_pages"`
	TotalPages2 *int `json:"totalPages"`
}

// adaptPage produces canonical PageInfo from raw metadata. It never fails:
// unparseable or absent metadata falls back to the caller's query and the
// item count (a bare array is one full page). A server-supplied total_pages
// is authoritative; we only compute ceil(total/limit) when the server sent
// none, to avoid disagreeing with the backend.
func adaptPage(u unwrapped, q ListQuery, itemCount int) PageInfo {
	info := PageInfo{
		Page:  q.fallbackPage(),
		Limit: q.fallbackLimit(),
		Total: itemCount,
	}

	var meta rawPageMeta
	haveMeta := u.hasMeta && json.Unmarshal(u.meta, &meta) == nil
	if haveMeta {
		if meta.Page != nil && *meta.Page > 0 {
			info.Page = *meta.Page
		}
		if meta.Limit != nil && *meta.Limit > 0 {
			info.Limit = *meta.Limit
		} else if meta.PerPage != nil && *meta.PerPage > 0 {
			info.Limit = *meta.PerPage
		} else if meta.PerPage2 != nil && *meta.PerPage2 > 0 {
			info.Limit = *meta.PerPage2
		}
		if meta.Total != nil && *meta.Total >= 0 {
			info.Total = *meta.Total
		} else if meta.TotalCount != nil && *meta.TotalCount >= 0 {
			info.Total = *meta.TotalCount
		} else if meta.TotalCount2 != nil && *meta.TotalCount2 >= 0 {
			info.Total = *meta.TotalCount2
		}
	}

	switch {
	case haveMeta && meta.TotalPages != nil:
		info.TotalPages = *meta.TotalPages
	case haveMeta && meta.TotalPages2 != nil:
		info.TotalPages = *meta.TotalPages2
	case !haveMeta:
		info.TotalPages = 1
	default:
		info.TotalPages = ceilDiv(info.Total, info.Limit)
	}
	if info.TotalPages < 1 {
		info.TotalPages = 1
	}
	return info
}

func ceilDiv(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}
