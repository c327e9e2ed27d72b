// Package app is the application instance of the app server and its bootstrap.
//
// Bootstrap performs the one-time setup in a fixed order:
//
//  1. register the UI library with its locale,
//  2. register the state container,
//  3. register the router,
//  4. mount: attach every route onto the fiber router and render each view
//     inside the host element named by the anchor.
//
// Registrations after Mount fail with ErrMounted, so nothing is added to a live
// application.
package app
