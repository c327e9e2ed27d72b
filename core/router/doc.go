// Package router holds the page route table of the app server.
//
// A Route binds a path pattern (with :name parameter segments) to a named view and
// a loading strategy. Eager views exist when the table is built; lazy views are
// produced by a Loader on the first navigation to their route. The Router
// validates the table once (unique names, no two paths matching the same
// requests, absolute paths), resolves request paths against it in declaration
// order, and caches lazily loaded views. Concurrent first navigations to a lazy
// route share one load through a singleflight group.
//
// Unmatched paths yield ErrNoMatch; the table declares no catch-all route.
//
//	r, err := router.New(router.Options{Routes: []router.Route{
//	    router.EagerRoute("/", "Home", home),
//	    router.LazyRoute("/preview/:filename", "Preview", loadPreview),
//	}})
//	nav, err := r.Navigate(ctx, "/preview/report.csv")
//	// nav.Params["filename"] == "report.csv"
package router
