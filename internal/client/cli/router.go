package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/views"
	"github.com/dmitrijs2005/jobboard/internal/common"
)

// Navigate implements services.Navigator. The route is rendered by the
// command that triggered it once the service call returns.
func (a *App) Navigate(route string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.route = route
	a.navigated = true
}

// Route returns the active route.
func (a *App) Route() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

// takeNavigation reports the route set by Navigate since the last call.
func (a *App) takeNavigation() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	pending := a.navigated
	a.navigated = false
	return a.route, pending
}

// followNavigation renders the route set by the last Navigate, if any.
func (a *App) followNavigation(ctx context.Context) error {
	route, pending := a.takeNavigation()
	if !pending {
		return nil
	}
	return a.enter(ctx, route)
}

// enter mounts the view for route. Each view entry starts a fresh fetch, the
// other view's loader is torn down.
func (a *App) enter(ctx context.Context, route string) error {
	kind, id, err := parseRoute(route)
	if err != nil {
		return err
	}

	switch kind {
	case routeList:
		a.detail.Close()
		a.list.Deactivate()
		a.list.Activate(ctx)
		st, err := a.list.Wait(ctx)
		if err != nil {
			return err
		}
		return views.RenderList(a.out, st)

	case routeDetail:
		a.list.Deactivate()
		a.detail.Close()
		a.detail.SetID(ctx, id)
		st, err := a.detail.Wait(ctx)
		if err != nil {
			return err
		}
		return views.RenderDetail(a.out, st, a.isLoggedIn())

	default:
		return a.editForm(ctx, id)
	}
}

type routeKind int

const (
	routeList routeKind = iota
	routeDetail
	routeEdit
)

func parseRoute(route string) (routeKind, string, error) {
	if route == common.RouteRoot {
		return routeList, "", nil
	}
	if rest, ok := strings.CutPrefix(route, "/jobs/edit/"); ok && rest != "" {
		id, err := url.PathUnescape(rest)
		return routeEdit, id, err
	}
	if rest, ok := strings.CutPrefix(route, "/jobs/"); ok && rest != "" && !strings.Contains(rest, "/") {
		id, err := url.PathUnescape(rest)
		return routeDetail, id, err
	}
	return 0, "", fmt.Errorf("unknown route %q", route)
}
