package content

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// NewArticle carries the fields for article creation.
type NewArticle struct {
	Title               string
	Description         string
	DetailedDescription string
	Category            int
	ImgSrc              string
	EditedBy            int
}

// CategorySummary is a category id with its latest title.
type CategorySummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// SearchResult pairs a card snapshot with its transient match flags.
type SearchResult struct {
	Card    Card       `json:"card"`
	Matches MatchFlags `json:"matches"`
}

// Repository is the aggregate of all sections and cards. Lookups return
// nil (or a zero value) for missing entities and mutations return an
// Outcome; no expected failure surfaces as an error.
type Repository interface {
	FindCardBySlug(slug string) *Card
	FindCardByID(id int) *Card
	FindCategoryByID(id int) *Section
	CheckArticleExists(title string) bool
	CheckCategoryExists(title string) bool
	ListCategories() []CategorySummary
	Search(query string) []SearchResult

	AddNewArticle(input NewArticle) (int, Outcome)
	AddNewCategory(title string, editedBy int) (int, Outcome)
	UpdateCategory(id int, title string, editedBy int) Outcome
	EditCard(id int, fields CardUpdate, editedBy int) Outcome
	SetArchived(id int, archived bool) Outcome
	SetStaffOnly(id int, staffOnly bool) Outcome
}

// MemoryRepository holds the whole content store in process memory.
// A single RWMutex serializes writers; the store was designed for one
// synchronous caller and the lock is what makes it safe behind a
// multi-request server. Lookups return deep copies so callers never
// observe a slice mid-append.
type MemoryRepository struct {
	mu       sync.RWMutex
	sections map[int]*Section
	now      func() time.Time
}

func NewRepository() *MemoryRepository {
	return &MemoryRepository{
		sections: make(map[int]*Section),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// FindCardBySlug scans every section's cards and matches the slug of
// each card's latest title. Linear over the whole store, which is fine
// at help-center scale.
func (r *MemoryRepository) FindCardBySlug(slug string) *Card {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.sectionIDs() {
		for _, card := range r.sections[id].Cards {
			if GenerateSlug(card.Latest().Title) == slug {
				return cloneCard(card)
			}
		}
	}
	return nil
}

func (r *MemoryRepository) FindCardByID(id int) *Card {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if card := r.findCard(id); card != nil {
		return cloneCard(card)
	}
	return nil
}

func (r *MemoryRepository) FindCategoryByID(id int) *Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, ok := r.sections[id]
	if !ok {
		return nil
	}
	return cloneSection(section)
}

// CheckArticleExists matches case-insensitively against every card's
// latest title, ignoring surrounding whitespace in the query.
func (r *MemoryRepository) CheckArticleExists(title string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.articleExists(title)
}

func (r *MemoryRepository) CheckCategoryExists(title string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categoryExists(title)
}

func (r *MemoryRepository) ListCategories() []CategorySummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]CategorySummary, 0, len(r.sections))
	for _, id := range r.sectionIDs() {
		section := r.sections[id]
		if len(section.Versions) == 0 {
			// Shell created by AddNewArticle targeting a missing
			// category; it has no title until someone names it.
			continue
		}
		summaries = append(summaries, CategorySummary{ID: id, Title: section.Latest().Title})
	}
	return summaries
}

// Search computes match flags for every card whose latest version
// contains the query (case-insensitive) in any searchable field.
func (r *MemoryRepository) Search(query string) []SearchResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var results []SearchResult
	for _, id := range r.sectionIDs() {
		for _, card := range r.sections[id].Cards {
			latest := card.Latest()
			matches := MatchFlags{
				Title:               strings.Contains(strings.ToLower(latest.Title), needle),
				Description:         strings.Contains(strings.ToLower(latest.Description), needle),
				DetailedDescription: strings.Contains(strings.ToLower(latest.DetailedDescription), needle),
			}
			if matches.Title || matches.Description || matches.DetailedDescription {
				results = append(results, SearchResult{Card: *cloneCard(card), Matches: matches})
			}
		}
	}
	return results
}

// AddNewArticle creates a card with a single version. Duplicate titles
// (case-insensitive) are rejected. A missing target category gets an
// empty section shell so the card still has a home.
func (r *MemoryRepository) AddNewArticle(input NewArticle) (int, Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.articleExists(input.Title) {
		return 0, failed(ReasonDuplicateTitle)
	}

	id := r.nextCardID()
	card := &Card{
		ID:        id,
		ImgSrc:    input.ImgSrc,
		Slug:      GenerateSlug(input.Title),
		Archived:  false,
		StaffOnly: false,
		Versions: []CardVersion{{
			VersionID:           1,
			Title:               input.Title,
			Description:         input.Description,
			DetailedDescription: input.DetailedDescription,
			Category:            input.Category,
			EditedBy:            input.EditedBy,
			EditDate:            r.now(),
			Changes:             []string{"Initial creation"},
		}},
	}

	section, ok := r.sections[input.Category]
	if !ok {
		section = &Section{ID: input.Category}
		r.sections[input.Category] = section
	}
	section.Cards = append(section.Cards, card)

	return id, succeeded()
}

func (r *MemoryRepository) AddNewCategory(title string, editedBy int) (int, Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.categoryExists(title) {
		return 0, failed(ReasonDuplicateTitle)
	}

	id := r.nextSectionID()
	r.sections[id] = &Section{
		ID: id,
		Versions: []SectionVersion{{
			VersionID: 1,
			Title:     title,
			EditedBy:  editedBy,
			EditDate:  r.now(),
		}},
	}
	return id, succeeded()
}

func (r *MemoryRepository) UpdateCategory(id int, title string, editedBy int) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, ok := r.sections[id]
	if !ok || len(section.Versions) == 0 {
		return failed(ReasonNotFound)
	}
	section.appendVersion(title, editedBy, r.now())
	return succeeded()
}

// EditCard appends a new version with the overridden fields. Category
// reassignment is recorded in the version only; the card stays in its
// original section slice and membership is derived from the latest
// version.
func (r *MemoryRepository) EditCard(id int, fields CardUpdate, editedBy int) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	card := r.findCard(id)
	if card == nil {
		return failed(ReasonNotFound)
	}
	card.appendVersion(fields, editedBy, r.now())
	return succeeded()
}

func (r *MemoryRepository) SetArchived(id int, archived bool) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	card := r.findCard(id)
	if card == nil {
		return failed(ReasonNotFound)
	}
	card.Archived = archived
	return succeeded()
}

func (r *MemoryRepository) SetStaffOnly(id int, staffOnly bool) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	card := r.findCard(id)
	if card == nil {
		return failed(ReasonNotFound)
	}
	card.StaffOnly = staffOnly
	return succeeded()
}

// loadSection installs a pre-built section, used by the seed data.
func (r *MemoryRepository) loadSection(section *Section) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections[section.ID] = section
}

// callers hold r.mu

func (r *MemoryRepository) findCard(id int) *Card {
	for _, section := range r.sections {
		for _, card := range section.Cards {
			if card.ID == id {
				return card
			}
		}
	}
	return nil
}

func (r *MemoryRepository) articleExists(title string) bool {
	normalized := strings.ToLower(strings.TrimSpace(title))
	for _, section := range r.sections {
		for _, card := range section.Cards {
			if strings.ToLower(card.Latest().Title) == normalized {
				return true
			}
		}
	}
	return false
}

func (r *MemoryRepository) categoryExists(title string) bool {
	normalized := strings.ToLower(strings.TrimSpace(title))
	for _, section := range r.sections {
		if len(section.Versions) == 0 {
			continue
		}
		if strings.ToLower(section.Latest().Title) == normalized {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) nextCardID() int {
	highest := 0
	for _, section := range r.sections {
		for _, card := range section.Cards {
			if card.ID > highest {
				highest = card.ID
			}
		}
	}
	return highest + 1
}

func (r *MemoryRepository) nextSectionID() int {
	highest := 0
	for id := range r.sections {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}

func (r *MemoryRepository) sectionIDs() []int {
	ids := make([]int, 0, len(r.sections))
	for id := range r.sections {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func cloneCard(card *Card) *Card {
	clone := *card
	clone.Versions = make([]CardVersion, len(card.Versions))
	copy(clone.Versions, card.Versions)
	return &clone
}

func cloneSection(section *Section) *Section {
	clone := *section
	clone.Versions = make([]SectionVersion, len(section.Versions))
	copy(clone.Versions, section.Versions)
	clone.Cards = make([]*Card, len(section.Cards))
	for i, card := range section.Cards {
		clone.Cards[i] = cloneCard(card)
	}
	return &clone
}
