package status

import (
	"chat-directory/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// expectedSchema lists the columns each directory table must carry.
var expectedSchema = map[string][]string{
	"servers":        {"id", "name", "owner_id", "category_id", "description", "icon", "banner", "created_at"},
	"categories":     {"id", "name", "description", "icon"},
	"users":          {"id", "username", "password_hash", "created_at"},
	"server_members": {"server_id", "user_id"},
}

// TableReport describes how one table compares to its expected columns.
type TableReport struct {
	Table          string   `json:"table"`
	OK             bool     `json:"ok"`
	MissingColumns []string `json:"missing_columns,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// SchemaReport is the combined result over all directory tables.
type SchemaReport struct {
	OK     bool          `json:"ok"`
	Tables []TableReport `json:"tables"`
}

// Service handles schema status checks.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new status service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CheckSchema compares every directory table against its expected columns.
// A missing table surfaces as a per-table error rather than failing the whole
// report.
func (s *Service) CheckSchema() SchemaReport {
	report := SchemaReport{OK: true}

	// Fixed iteration order keeps the report stable.
	for _, table := range []string{"servers", "categories", "users", "server_members"} {
		tr := TableReport{Table: table, OK: true}

		missing, err := database.MissingColumns(s.db, table, expectedSchema[table])
		switch {
		case err != nil:
			tr.OK = false
			tr.Error = err.Error()
		case len(missing) > 0:
			tr.OK = false
			tr.MissingColumns = missing
		}

		if !tr.OK {
			report.OK = false
		}
		report.Tables = append(report.Tables, tr)
	}

	return report
}
