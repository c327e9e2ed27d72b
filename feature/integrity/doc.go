// Package integrity checks that dataset storage and metadata agree.
//
// # Checks Provided
//
//   - Bucket: the dataset bucket exists (supports ?fix=true to create it).
//   - Metadata: every object under datasets/ has a metadata row with the same
//     size, and every row has an object (supports ?fix=true to reindex or
//     forget rows).
//   - Schema: the datasets table has every column of the model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/bucket
//   - GET /integrity/metadata
//   - GET /integrity/schema
package integrity
