// Package models holds the dataset metadata table and API payloads.
package models
