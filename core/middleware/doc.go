// Package middleware contains HTTP middleware for the Fiber applications.
//
// # Components
//
//   - Auth: Implements API key validation to protect the backend API.
//   - RayID: Assigns a Request ID (RayID) to every incoming request, injecting it
//     into the context and response headers for tracing. An incoming X-Ray-ID is
//     reused, so a page request and the API calls it triggers through the proxy
//     share one id.
//
// These middleware components are registered globally in the start and backend commands.
package middleware
