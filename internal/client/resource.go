package client

import (
	"context"
	"net/http"
	"net/url"
)

// ResourceClient is bound to one collection under /api/<name>.
type ResourceClient[T any] struct {
	client *Client
	name   string
}

// NewResource returns the client for /api/<name>.
func NewResource[T any](c *Client, name string) *ResourceClient[T] {
	return &ResourceClient[T]{client: c, name: name}
}

// Name is the collection segment, e.g. "graphics".
func (r *ResourceClient[T]) Name() string {
	return r.name
}

func (r *ResourceClient[T]) path(segments ...string) string {
	p := "/api/" + r.name
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}

	return p
}

// List issues GET /api/<name> with optional query filters.
func (r *ResourceClient[T]) List(ctx context.Context, filters url.Values) ([]T, error) {
	items := make([]T, 0)
	if err := r.client.Do(ctx, http.MethodGet, r.path(), filters, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// ListNested issues GET /api/<name>/<parent>/<parentID>, e.g. /api/modules/course/:courseId.
func (r *ResourceClient[T]) ListNested(ctx context.Context, parent, parentID string) ([]T, error) {
	items := make([]T, 0)
	if err := r.client.Do(ctx, http.MethodGet, r.path(parent, parentID), nil, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// Get issues GET /api/<name>/<id>.
func (r *ResourceClient[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	err := r.client.Do(ctx, http.MethodGet, r.path(id), nil, nil, &item)

	return item, err
}

// Create issues POST /api/<name>.
func (r *ResourceClient[T]) Create(ctx context.Context, payload any) (T, error) {
	var item T
	err := r.client.Do(ctx, http.MethodPost, r.path(), nil, payload, &item)

	return item, err
}

// Update issues PATCH /api/<name>/<id>.
func (r *ResourceClient[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	var item T
	err := r.client.Do(ctx, http.MethodPatch, r.path(id), nil, payload, &item)

	return item, err
}

// Remove issues DELETE /api/<name>/<id>.
func (r *ResourceClient[T]) Remove(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.path(id), nil, nil, nil)
}

// Transition issues PATCH /api/<name>/<id>/<action>, e.g. a certificate revoke.
func (r *ResourceClient[T]) Transition(ctx context.Context, id, action string) (T, error) {
	var item T
	err := r.client.Do(ctx, http.MethodPatch, r.path(id, action), nil, nil, &item)

	return item, err
}
