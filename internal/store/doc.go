// Package store keeps a SQLite catalog of sampling runs.
//
// Every run is one row keyed by a UUIDv7, so listing by id is listing by
// creation time. The database uses WAL mode and a single connection.
package store
