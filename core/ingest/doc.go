// Package ingest drives the record pipeline: fetch, materialize, flatten,
// persist.
//
// Each source record is processed in a failure-isolated unit; records that
// fail materialization or flattening are routed to a failure side-channel
// with their original content and a structured error, and the pass
// continues. Successful row sets are committed in batches. Only transient
// store faults are retried, as a whole batch with bounded backoff;
// structural errors are deterministic and never retried. Parallelism is
// applied solely by partitioning the input record set across workers.
package ingest
