package content

import (
	"fmt"
	"strings"
	"time"
)

// SectionVersion is one immutable snapshot of a category's editable
// fields. Versions are dense from 1 in append order.
type SectionVersion struct {
	VersionID int       `json:"versionId"`
	Title     string    `json:"title"`
	EditedBy  int       `json:"editedBy"`
	EditDate  time.Time `json:"editDate"`
	Diffs     string    `json:"diffs,omitempty"`
	Changes   []string  `json:"changes,omitempty"`
}

// Section groups cards under a versioned title.
type Section struct {
	ID       int              `json:"id"`
	Versions []SectionVersion `json:"versions"`
	Cards    []*Card          `json:"cards"`
}

// CardVersion is one immutable snapshot of an article's editable
// fields. Category membership lives here, not on the Card: "which
// section is this card in" is always read from the latest version.
type CardVersion struct {
	VersionID           int       `json:"versionId"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailedDescription"`
	Category            int       `json:"category"`
	EditedBy            int       `json:"editedBy"`
	EditDate            time.Time `json:"editDate"`
	Diffs               string    `json:"diffs,omitempty"`
	Changes             []string  `json:"changes,omitempty"`
}

// Card is an article. The id is unique across the whole repository.
// Archived and StaffOnly are toggled directly and do not produce
// version records.
type Card struct {
	ID        int           `json:"id"`
	ImgSrc    string        `json:"imgSrc"`
	Slug      string        `json:"slug"`
	Archived  bool          `json:"archived"`
	StaffOnly bool          `json:"staffOnly"`
	Versions  []CardVersion `json:"versions"`
}

// MatchFlags are transient per-search hits against an article's latest
// version. Never persisted, recomputed for every query.
type MatchFlags struct {
	Title               bool `json:"title"`
	Description         bool `json:"description"`
	DetailedDescription bool `json:"detailedDescription"`
}

// Latest returns the current version. Every card is born with version 1,
// so an empty history is a construction bug, not a recoverable state.
func (c *Card) Latest() CardVersion {
	if len(c.Versions) == 0 {
		panic(fmt.Sprintf("content: card %d has empty version history", c.ID))
	}
	return c.Versions[len(c.Versions)-1]
}

// Latest returns the current version, panicking on an empty history for
// the same reason as Card.Latest.
func (s *Section) Latest() SectionVersion {
	if len(s.Versions) == 0 {
		panic(fmt.Sprintf("content: section %d has empty version history", s.ID))
	}
	return s.Versions[len(s.Versions)-1]
}

// CardUpdate carries the fields an edit may override. Nil means "keep
// the latest version's value".
type CardUpdate struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Category            *int
}

// appendVersion applies the version-store append contract: copy the
// latest version forward, bump the id, override the supplied fields and
// describe each real change in the fixed order title, description,
// detailed description, category.
func (c *Card) appendVersion(fields CardUpdate, editedBy int, now time.Time) CardVersion {
	latest := c.Latest()
	next := latest
	next.VersionID = latest.VersionID + 1
	next.EditedBy = editedBy
	next.EditDate = now
	next.Changes = nil
	next.Diffs = ""

	if fields.Title != nil && *fields.Title != latest.Title {
		next.Changes = append(next.Changes, fmt.Sprintf("Title changed from %q to %q", latest.Title, *fields.Title))
		next.Title = *fields.Title
	}
	if fields.Description != nil && *fields.Description != latest.Description {
		next.Changes = append(next.Changes, "Description changed")
		next.Description = *fields.Description
	}
	if fields.DetailedDescription != nil && *fields.DetailedDescription != latest.DetailedDescription {
		next.Changes = append(next.Changes, "Detailed description changed")
		next.DetailedDescription = *fields.DetailedDescription
	}
	if fields.Category != nil && *fields.Category != latest.Category {
		next.Changes = append(next.Changes, fmt.Sprintf("Moved from category %q to %q", fmt.Sprint(latest.Category), fmt.Sprint(*fields.Category)))
		next.Category = *fields.Category
	}

	c.Versions = append(c.Versions, next)
	return next
}

func (s *Section) appendVersion(title string, editedBy int, now time.Time) SectionVersion {
	latest := s.Latest()
	next := latest
	next.VersionID = latest.VersionID + 1
	next.EditedBy = editedBy
	next.EditDate = now
	next.Changes = nil
	next.Diffs = ""

	if title != latest.Title {
		next.Changes = append(next.Changes, fmt.Sprintf("Title changed from %q to %q", latest.Title, title))
		next.Title = title
	}

	s.Versions = append(s.Versions, next)
	return next
}

// GenerateSlug derives the URL-safe identifier from a title. Lookups
// slugify the latest title with this same transform; changing it in one
// place silently breaks links.
func GenerateSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// Reason codes for failed repository mutations.
type Reason string

const (
	ReasonDuplicateTitle Reason = "duplicate_title"
	ReasonNotFound       Reason = "not_found"
)

// Outcome is the result of a repository mutation. Expected failures
// (duplicate title, missing target) come back as Success=false with a
// reason code; the repository never returns an error for them.
type Outcome struct {
	Success bool   `json:"success"`
	Reason  Reason `json:"reason,omitempty"`
}

func succeeded() Outcome      { return Outcome{Success: true} }
func failed(r Reason) Outcome { return Outcome{Success: false, Reason: r} }
