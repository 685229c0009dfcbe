package servers

import (
	"strconv"

	"chat-directory/core/auth"
	"chat-directory/feature/servers/models"

	"gorm.io/gorm"
)

// ListParams are the raw filter parameters of the server list endpoint.
// Empty string fields mean the filter is not applied.
type ListParams struct {
	// Category narrows results to servers whose category name matches exactly.
	Category string
	// Qty caps the result count, taking a prefix in ascending id order.
	Qty string
	// ByUser narrows results to servers the requesting user is a member of.
	ByUser bool
	// ByServerID narrows results to the single server with that id.
	ByServerID string
	// WithNumMembers annotates each result with its member count.
	WithNumMembers bool
}

// restricted reports whether the params request an identity-scoped filter.
func (p ListParams) restricted() bool {
	return p.ByUser || p.ByServerID != ""
}

// Compose builds the list query as a pure pipeline: every step derives a new
// query value from the previous one, so the application order is explicit
// data flow rather than mutation of a shared queryset.
//
// The order is fixed and observable: category narrowing, quantity truncation,
// membership narrowing, member-count annotation, id lookup. Quantity
// truncation is applied before the membership and id filters, so those act on
// the truncated prefix; the truncated set becomes a derived table the later
// steps select from.
func Compose(db *gorm.DB, p ListParams, id auth.Identity) (*gorm.DB, error) {
	if p.restricted() && !id.Authenticated {
		return nil, ErrAuthenticationRequired
	}

	tx := db.Model(&models.Server{}).Select("servers.*").Order("servers.id")

	if p.Category != "" {
		tx = tx.Joins("JOIN categories ON categories.id = servers.category_id").
			Where("categories.name = ?", p.Category)
	}

	if p.Qty != "" {
		qty, err := strconv.Atoi(p.Qty)
		if err != nil {
			return nil, ErrInvalidQuantity
		}
		if qty < 0 {
			qty = 0
		}
		tx = db.Table("(?) AS servers", tx.Limit(qty)).Order("servers.id")
	}

	if p.ByUser {
		tx = tx.Where("servers.id IN (SELECT server_id FROM server_members WHERE user_id = ?)", id.UserID)
	}

	if p.WithNumMembers {
		tx = tx.Select("servers.*, (SELECT COUNT(*) FROM server_members WHERE server_members.server_id = servers.id) AS num_members")
	}

	if p.ByServerID != "" {
		serverID, err := strconv.Atoi(p.ByServerID)
		if err != nil {
			return nil, ErrInvalidServerID
		}
		tx = tx.Where("servers.id = ?", serverID)
	}

	return tx, nil
}
