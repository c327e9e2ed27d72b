// Package checks holds the individual dataset integrity checks.
package checks
