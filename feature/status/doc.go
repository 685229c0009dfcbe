// Package status exposes operational checks for the directory service.
//
// The schema check compares the live database tables against the column sets
// the models expect, catching drift between migrations and code:
//
//   - GET /api/status/schema : per-table report of missing columns.
package status
