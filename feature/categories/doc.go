// Package categories implements the category listing feature.
//
// Categories are the named groupings servers are filed under; the server list
// endpoint filters on their names. This feature only exposes the read side:
//
//   - GET /api/category : all categories ordered by name.
package categories
