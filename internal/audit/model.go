package audit

import "time"

// Actions recorded in the admin activity log.
const (
	ActionCreateArticle  = "create_article"
	ActionEditArticle    = "edit_article"
	ActionCreateCategory = "create_category"
	ActionRenameCategory = "rename_category"
	ActionArchiveToggle  = "archive_toggle"
	ActionStaffToggle    = "staff_only_toggle"
)

// Entry is one persisted admin activity record. Archived/staff-only
// toggles don't produce content versions, so this log is the only
// durable trace of them.
type Entry struct {
	ID         uint64    `json:"id"`
	ActorID    uint64    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityKind string    `json:"entity_kind"` // "card" or "section"
	EntityID   int       `json:"entity_id"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}
