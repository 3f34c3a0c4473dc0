// Package dictionary holds the user's personal vocabulary: a flat list of
// {id, english, translation} records with create/read/update/delete. The
// store is in-memory by design; it is the only state in the backend that
// outlives a single request.
package dictionary
