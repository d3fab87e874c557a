// Package swiss implements an open-addressed hash table using the Swiss
// Table design: byte-wide control metadata scanned a group at a time,
// backing a keys-only Set and a Map. The table is single-threaded; no
// locking or atomics guard any operation.
package swiss
