// Package proxy forwards /api requests from the app server to the backend.
//
// Every method under the configured prefix is sent to the target origin with the
// original path and query. Only the Host header is rewritten, to the target
// host. An unreachable backend answers 502, a timeout 504.
package proxy
