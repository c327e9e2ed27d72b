// Package datasets stores uploaded CSV files in object storage and serves
// listings and previews of them.
//
// Datasets live under the "datasets/" prefix of the configured bucket. When a
// database is connected, a metadata row with the row and column counts is kept
// per dataset; without one the feature works from storage alone.
package datasets
