package api

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func metaOf(t *testing.T, raw string) unwrapped {
	t.Helper()
	return unwrapped{payload: json.RawMessage(`[]`), meta: json.RawMessage(raw), hasMeta: true}
}

func TestAdaptPageFromMeta(t *testing.T) {
	got := adaptPage(metaOf(t, `{"page":2,"limit":10,"total":45,"total_pages":5}`), ListQuery{}, 10)
	want := PageInfo{Page: 2, Limit: 10, Total: 45, TotalPages: 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("adaptPage mismatch (-want +got):\n%s", diff)
	}
}

// The server's total_pages wins even when it disagrees with ceil(total/limit).
func TestAdaptPageServerTotalPagesAuthoritative(t *testing.T) {
	got := adaptPage(metaOf(t, `{"page":1,"limit":10,"total":45,"total_pages":4}`), ListQuery{}, 10)
	assert.Equal(t, 4, got.TotalPages)
}

func TestAdaptPageComputesWhenServerOmitsTotalPages(t *testing.T) {
	got := adaptPage(metaOf(t, `{"page":1,"limit":10,"total":45}`), ListQuery{}, 10)
	assert.Equal(t, 5, got.TotalPages)
}

// Bare array: caller's paging intent is preserved, total comes from the item
// count, and the page counts as one full page.
func TestAdaptPageBareArraySynthesis(t *testing.T) {
	got := adaptPage(unwrapped{payload: json.RawMessage(`["a","b"]`)}, ListQuery{Page: 2, Limit: 5}, 2)
	want := PageInfo{Page: 2, Limit: 5, Total: 2, TotalPages: 1}
	assert.Equal(t, want, got)
}

func TestAdaptPageDefaultsWithoutQuery(t *testing.T) {
	got := adaptPage(unwrapped{}, ListQuery{}, 3)
	want := PageInfo{Page: 1, Limit: 20, Total: 3, TotalPages: 1}
	assert.Equal(t, want, got)
}

// An empty result set still reports one page so pagination controls render.
func TestAdaptPageClampsZeroTotalPages(t *testing.T) {
	got := adaptPage(metaOf(t, `{"page":1,"limit":20,"total":0,"total_pages":0}`), ListQuery{}, 0)
	assert.Equal(t, 1, got.TotalPages)
}

func TestAdaptPageAlternateFieldSpellings(t *testing.T) {
	got := adaptPage(metaOf(t, `{"page":3,"per_page":25,"total_count":70,"totalPages":3}`), ListQuery{}, 20)
	want := PageInfo{Page: 3, Limit: 25, Total: 70, TotalPages: 3}
	assert.Equal(t, want, got)
}

func TestAdaptPageCamelFieldSpellings(t *testing.T) {
	got := adaptPage(metaOf(t, `{"page":2,"perPage":15,"totalCount":31}`), ListQuery{}, 15)
	want := PageInfo{Page: 2, Limit: 15, Total: 31, TotalPages: 3}
	assert.Equal(t, want, got)
}

// Individually-missing fields fall back to the caller's query.
func TestAdaptPagePartialMeta(t *testing.T) {
	got := adaptPage(metaOf(t, `{"total":12}`), ListQuery{Page: 2, Limit: 6}, 6)
	want := PageInfo{Page: 2, Limit: 6, Total: 12, TotalPages: 2}
	assert.Equal(t, want, got)
}

func TestAdaptPageMalformedMetaFallsBack(t *testing.T) {
	got := adaptPage(metaOf(t, `"oops"`), ListQuery{Page: 1, Limit: 10}, 4)
	want := PageInfo{Page: 1, Limit: 10, Total: 4, TotalPages: 1}
	assert.Equal(t, want, got)
}
