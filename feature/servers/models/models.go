package models

import "time"

// Category is a named grouping applied to servers, filtered by exact name match.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex" json:"name"`
	Description string `gorm:"size:250" json:"description"`
	Icon        string `gorm:"size:250" json:"icon"`
}

// User is an account that can own servers and appear in member sets.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Server is a directory record representing a chat community.
type Server struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100" json:"name"`
	OwnerID     uint      `gorm:"column:owner_id" json:"owner"`
	CategoryID  uint      `gorm:"column:category_id" json:"category"`
	Description string    `gorm:"size:250" json:"description"`
	Icon        string    `gorm:"size:250" json:"icon"`
	Banner      string    `gorm:"size:250" json:"banner"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServerMember links a user to a server they are a member of. The list query
// filters and counts against this table directly.
type ServerMember struct {
	ServerID uint `gorm:"primaryKey" json:"server_id"`
	UserID   uint `gorm:"primaryKey" json:"user_id"`
}

// TableName names the membership join table.
func (ServerMember) TableName() string {
	return "server_members"
}

// AnnotatedServer is a Server scanned together with the optional num_members
// annotation produced by the list query.
type AnnotatedServer struct {
	Server
	NumMembers int64 `gorm:"column:num_members" json:"num_members"`
}

// TableName keeps annotated scans on the servers table.
func (AnnotatedServer) TableName() string {
	return "servers"
}

// ServerResponse is the serialized form of a server list item. NumMembers is
// only populated when the request asked for the annotation.
type ServerResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Owner       uint      `json:"owner"`
	Category    uint      `json:"category"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Banner      string    `json:"banner"`
	NumMembers  *int64    `json:"num_members,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Response converts an annotated row into its serialized form, including the
// member count only when requested.
func (s AnnotatedServer) Response(withNumMembers bool) ServerResponse {
	resp := ServerResponse{
		ID:          s.ID,
		Name:        s.Name,
		Owner:       s.OwnerID,
		Category:    s.CategoryID,
		Description: s.Description,
		Icon:        s.Icon,
		Banner:      s.Banner,
		CreatedAt:   s.CreatedAt,
	}
	if withNumMembers {
		n := s.NumMembers
		resp.NumMembers = &n
	}
	return resp
}
