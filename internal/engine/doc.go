// Package engine contains the four-product scans. It never imports app, writers,
// cli, or output; keep it domain-only.
//
// Every direction walks explicit anchor ranges 0..dim-4 over a read-only Grid,
// so the three scans may run concurrently without locking.
package engine
