package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// exec runs one call through the full normalization path: raw transport
// errors become transport-kind APIErrors, non-2xx statuses go through the
// error normalizer, and a success-wrapped error on a 2xx is surfaced too.
func exec(ctx context.Context, t *Transport, method, endpoint string, params url.Values, body any) (*Response, error) {
	resp, err := t.do(ctx, method, endpoint, params, body)
	if err != nil {
		return nil, transportError(err)
	}
	if !resp.IsSuccess() {
		return nil, normalizeError(resp.StatusCode, resp.StatusText, resp.Body)
	}
	if ae := successFalseError(resp.Body); ae != nil {
		return nil, ae
	}
	return resp, nil
}

// listResource fetches a paginated list: unwrap by precedence, decode with
// list intent, adapt pagination with the caller's query as fallback.
func listResource[T any](ctx context.Context, t *Transport, endpoint, plural string, params url.Values, q ListQuery) (List[T], error) {
	resp, err := exec(ctx, t, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return List[T]{}, err
	}
	u := unwrapBody(resp.Body, plural)
	items, err := decodeList[T](u)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{Items: items, PageInfo: adaptPage(u, q, len(items))}, nil
}

func getEntity[T any](ctx context.Context, t *Transport, endpoint string) (T, error) {
	var zero T
	resp, err := exec(ctx, t, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return zero, err
	}
	return decodeEntity[T](unwrapBody(resp.Body, ""))
}

func postEntity[T any](ctx context.Context, t *Transport, endpoint string, body any) (T, error) {
	var zero T
	resp, err := exec(ctx, t, http.MethodPost, endpoint, nil, body)
	if err != nil {
		return zero, err
	}
	return decodeEntity[T](unwrapBody(resp.Body, ""))
}

func putEntity[T any](ctx context.Context, t *Transport, endpoint string, body any) (T, error) {
	var zero T
	resp, err := exec(ctx, t, http.MethodPut, endpoint, nil, body)
	if err != nil {
		return zero, err
	}
	return decodeEntity[T](unwrapBody(resp.Body, ""))
}

// deleteResource resolves on any 2xx; the body is not consulted. A non-2xx
// is the only delete failure signal.
func deleteResource(ctx context.Context, t *Transport, endpoint string) error {
	_, err := exec(ctx, t, http.MethodDelete, endpoint, nil, nil)
	return err
}

// resource bundles the standard CRUD surface every facade shares. Actions and
// sub-resources stay on the facades themselves.
type resource[T any] struct {
	t      *Transport
	path   string // e.g. "/products"
	plural string // list key for resource-named envelopes, e.g. "products"
}

func (r resource[T]) list(ctx context.Context, params url.Values, q ListQuery) (List[T], error) {
	return listResource[T](ctx, r.t, r.path, r.plural, params, q)
}

func (r resource[T]) get(ctx context.Context, id string) (T, error) {
	return getEntity[T](ctx, r.t, r.path+"/"+url.PathEscape(id))
}

func (r resource[T]) create(ctx context.Context, body any) (T, error) {
	return postEntity[T](ctx, r.t, r.path, body)
}

func (r resource[T]) update(ctx context.Context, id string, patch any) (T, error) {
	return putEntity[T](ctx, r.t, r.path+"/"+url.PathEscape(id), patch)
}

func (r resource[T]) delete(ctx context.Context, id string) error {
	return deleteResource(ctx, r.t, r.path+"/"+url.PathEscape(id))
}

// action POSTs to an action sub-path and unwraps the updated entity.
func (r resource[T]) action(ctx context.Context, id, name string, body any) (T, error) {
	return postEntity[T](ctx, r.t, r.path+"/"+url.PathEscape(id)+"/"+name, body)
}

// pageParams encodes the common paging keys; facade filters add their own.
func pageParams(q ListQuery) url.Values {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}
