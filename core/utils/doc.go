// Package utils provides common conversion helpers for values decoded from JSON
// request bodies, such as fill values and random seeds.
package utils
