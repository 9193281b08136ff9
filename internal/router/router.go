// Package router decides which view a navigation ends up on. Every view
// switch in the client goes through Resolve so the access rules live in one
// place.
package router

import (
	"errors"
	"fmt"
)

const (
	RootPath    = "/"
	LoginPath   = "/login"
	LotteryPath = "/lottery"
)

// maxHops bounds redirect chains.
const maxHops = 8

var (
	// ErrNotFound is returned for a path with no route.
	ErrNotFound = errors.New("router: no route")
	// ErrRedirectLoop is returned when redirects do not settle.
	ErrRedirectLoop = errors.New("router: redirect loop")
)

// Meta is the access-control metadata of a route.
type Meta struct {
	RequiresAuth  bool
	RequiresGuest bool
}

// Route maps a path to a named view. A route with Redirect set has no view of
// its own.
type Route struct {
	Path     string
	Name     string
	Redirect string
	Meta     Meta
}

// Decision is the result of Guard. The zero value means proceed.
type Decision struct {
	Redirect string
}

// Proceed reports whether navigation continues to the requested route.
func (d Decision) Proceed() bool { return d.Redirect == "" }

// Guard is evaluated before every navigation.
func Guard(target Route, loggedIn bool) Decision {
	if target.Meta.RequiresAuth && !loggedIn {
		return Decision{Redirect: LoginPath}
	}
	if target.Meta.RequiresGuest && loggedIn {
		return Decision{Redirect: LotteryPath}
	}
	return Decision{}
}

// Router is a static route table.
type Router struct {
	routes map[string]Route
}

// New builds a router from routes. Later routes replace earlier ones with the
// same path.
func New(routes ...Route) *Router {
	r := &Router{routes: make(map[string]Route, len(routes))}
	for _, rt := range routes {
		r.routes[rt.Path] = rt
	}
	return r
}

// Default returns the client's route table: "/" goes to the lottery, the
// login view is guest-only and the lottery view requires a session.
func Default() *Router {
	return New(
		Route{Path: RootPath, Redirect: LotteryPath},
		Route{Path: LoginPath, Name: "login", Meta: Meta{RequiresGuest: true}},
		Route{Path: LotteryPath, Name: "lottery", Meta: Meta{RequiresAuth: true}},
	)
}

// Resolve follows static and guard redirects from path and returns the route
// that should be shown.
func (r *Router) Resolve(path string, loggedIn bool) (Route, error) {
	current := path
	for hop := 0; hop < maxHops; hop++ {
		rt, ok := r.routes[current]
		if !ok {
			return Route{}, fmt.Errorf("%w: %s", ErrNotFound, current)
		}
		if rt.Redirect != "" {
			current = rt.Redirect
			continue
		}
		d := Guard(rt, loggedIn)
		if d.Proceed() {
			return rt, nil
		}
		current = d.Redirect
	}
	return Route{}, fmt.Errorf("%w: from %s", ErrRedirectLoop, path)
}
