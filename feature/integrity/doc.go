// Package integrity provides system health checks for the spell pipeline.
//
// Unlike the 'spells' package which runs the pipeline itself, this package
// validates that the pipeline's three sides of truth stay in agreement:
//
//   - Source: the record IDs present in the archive dump.
//   - Store: the record IDs persisted as relational row sets.
//   - Failures: the record IDs captured in the failure side-channel.
//
// # Checks Provided
//
//   - Coverage: Every source record must be accounted for, either
//     persisted or captured as a failure. Records persisted but no longer
//     present in the source are reported as orphaned.
//   - Schema: Validates that the live database tables carry every column
//     the registered variant schemas declare.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/coverage : Runs the coverage accounting.
//   - GET /integrity/schema : Runs the schema check.
package integrity
