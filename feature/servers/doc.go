// Package servers implements the server directory feature.
//
// Its center is the list query pipeline (Compose): a fixed-order composition
// of optional refinements over the base collection of servers.
//
// # Filter order
//
//  1. Auth gate: by_user and by_serverid require an authenticated identity.
//  2. category: exact, case-sensitive match on the category name.
//  3. qty: truncate to a prefix of the current result, in ascending id order.
//  4. by_user: keep servers the requesting user is a member of.
//  5. with_num_members: annotate each row with its member count.
//  6. by_serverid: keep the single server with that id; zero rows is an error.
//
// Later steps act on the output of earlier ones. In particular qty truncates
// BEFORE the membership and id filters, which therefore only see the
// truncated prefix (it becomes a derived table in the generated SQL).
//
// # Components
//
//   - Compose/ListParams: the pipeline itself, pure over *gorm.DB values.
//   - Service: executes the composed query, owns icon storage operations.
//   - Handler: the HTTP surface (/api/server/select and the icon endpoints).
//   - Feature: registers the feature with the application loader.
package servers
