package stub

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the success-wrapped error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   map[string]any{"code": code, "message": message},
	})
}

type pageReq struct {
	page  int
	limit int
}

func parsePage(r *http.Request) pageReq {
	p := pageReq{page: 1, limit: 20}
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.limit = n
		}
	}
	return p
}

// slicePage applies paging to an already-filtered slice and returns the page
// plus the pre-paging total.
func slicePage[T any](items []T, p pageReq) ([]T, int) {
	total := len(items)
	start := (p.page - 1) * p.limit
	if start >= total {
		return []T{}, total
	}
	end := start + p.limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

func totalPages(total, limit int) int {
	if limit <= 0 || total == 0 {
		return 1
	}
	n := (total + limit - 1) / limit
	if n < 1 {
		n = 1
	}
	return n
}

// writeSuccessMeta answers in the {success, data, meta} vocabulary.
func writeSuccessMeta(w http.ResponseWriter, items any, p pageReq, total int) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    items,
		"meta": map[string]any{
			"page":        p.page,
			"limit":       p.limit,
			"total":       total,
			"total_pages": totalPages(total, p.limit),
		},
	})
}

// writeNamedList answers in the {<name>: [...], pagination} vocabulary.
func writeNamedList(w http.ResponseWriter, name string, items any, p pageReq, total int) {
	writeJSON(w, http.StatusOK, map[string]any{
		name: items,
		"pagination": map[string]any{
			"page":        p.page,
			"limit":       p.limit,
			"total":       total,
			"total_pages": totalPages(total, p.limit),
		},
	})
}

// writeDataPagination answers in the {data, pagination} vocabulary.
func writeDataPagination(w http.ResponseWriter, items any, p pageReq, total int) {
	writeJSON(w, http.StatusOK, map[string]any{
		"data": items,
		"pagination": map[string]any{
			"page":        p.page,
			"limit":       p.limit,
			"total":       total,
			"total_pages": totalPages(total, p.limit),
		},
	})
}

// writeEntity answers {success, data} around one entity.
func writeEntity(w http.ResponseWriter, status int, entity any) {
	writeJSON(w, status, map[string]any{"success": true, "data": entity})
}

// sortedValues returns map values ordered by key for deterministic listings.
func sortedValues[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
