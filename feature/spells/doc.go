// Package spells implements the spell archive mining feature.
//
// It drives the full pipeline over a dump of tagged spell records:
//  1. Source (directory or S3/MinIO): the raw JSON record documents.
//  2. Materialization: tagged records become typed variant trees.
//  3. Flattening: trees become ordered, parent-linked relational rows.
//  4. Store: rows are persisted, one table per variant.
//
// Records that fail to resolve or materialize are isolated into a failure
// side-channel and never abort a pass.
//
// # Components
//
//   - Service: Orchestrates ingestion passes and read-back queries.
//   - Handler: Exposes HTTP endpoints for ingestion and inspection.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /spells/ingest : Run an ingestion pass over the configured source.
//   - GET  /spells : List persisted record IDs.
//   - GET  /spells/rows?record= : Raw persisted rows of one record.
//   - GET  /spells/tree?record= : Rows reassembled into the original tree shape.
//   - GET  /spells/passes : The ingestion pass log.
package spells
