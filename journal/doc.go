// Package journal provides an append-only journal of numbered text entries.
//
// A Journal keeps its entries in memory, numbering them from 1 upwards.
// Entries can be removed by position, but entry numbers are never reused,
// so rendered lines stay stable after removals.
//
// Persistence is pluggable: the filestore subpackage writes a rendered
// journal to a text file, the postgresengine subpackage keeps a durable
// journal in PostgreSQL with optimistic concurrency control.
//
// Common usage pattern:
//
//	j := journal.New()
//
//	number, err := j.AddEntry("I cried today")
//	if err != nil {
//		// handle error
//	}
//
//	err = filestore.Save("journal.txt", j)
package journal
