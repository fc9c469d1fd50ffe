package services

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"eoapi/internal/events"
	"eoapi/internal/utils"
)

// NavigateEvent asks the frontend router to show path with queryParams.
type NavigateEvent struct {
	Path        string            `json:"path"`
	QueryParams map[string]string `json:"queryParams,omitempty"`
}

// RouterService mirrors the frontend route and drives navigation from Go.
type RouterService struct {
	context context.Context
	emitter events.Emitter

	mu      sync.Mutex
	current string
}

func NewRouterService(emitter events.Emitter) *RouterService {
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	return &RouterService{emitter: emitter, current: "/"}
}

func (r *RouterService) Startup(ctx context.Context) {
	r.context = ctx
}

// SetCurrentRoute is called by the frontend after every navigation.
func (r *RouterService) SetCurrentRoute(route string) {
	r.mu.Lock()
	r.current = route
	r.mu.Unlock()
}

func (r *RouterService) CurrentRoute() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *RouterService) Navigate(path string, queryParams map[string]string) error {
	if path == "" {
		return fmt.Errorf("router: path is required")
	}
	r.mu.Lock()
	r.current = path
	if len(queryParams) > 0 {
		q := url.Values{}
		for k, v := range queryParams {
			q.Set(k, v)
		}
		r.current += "?" + q.Encode()
	}
	r.mu.Unlock()

	if r.context != nil {
		r.emitter.Emit(r.context, events.AppEventNavigate, NavigateEvent{Path: path, QueryParams: queryParams})
	}
	return nil
}

// Refresh re-renders the current view by leaving it through the wildcard
// route and navigating back with the same query parameters.
func (r *RouterService) Refresh() error {
	base, _ := url.Parse(utils.FallbackBaseURL)
	ref, err := url.Parse(r.CurrentRoute())
	if err != nil {
		return fmt.Errorf("router: parse current route: %w", err)
	}
	u := base.ResolveReference(ref)

	query := map[string]string{}
	for k, v := range u.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	if err := r.Navigate("**", nil); err != nil {
		return err
	}
	return r.Navigate(u.Path, query)
}
