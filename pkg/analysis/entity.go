package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContactInfo holds every contact mention found in the text, deduplicated in
// first-seen order. Matches are raw substrings and are not validated.
type ContactInfo struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	LinkedIn []string `json:"linkedin"`
	GitHub   []string `json:"github"`
	Websites []string `json:"websites"`
}

// SkillSet groups matched skills by category. Values are the substrings as
// found in the lower-cased text, not canonical skill names.
type SkillSet struct {
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	Databases   []string `json:"databases"`
	Cloud       []string `json:"cloud"`
	Tools       []string `json:"tools"`
	SoftSkills  []string `json:"softSkills"`
}

// All flattens the categories in declaration order, dropping repeats.
func (s SkillSet) All() []string {
	set := newOrderedSet()
	for _, c := range skillCategories {
		for _, v := range *c.pick(&s) {
			set.add(v)
		}
	}
	return set.list()
}

// VerbHit is one action verb and the number of times it occurs.
type VerbHit struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// SectionMap flags which resume sections have a recognizable header.
type SectionMap struct {
	Summary        bool `json:"summary"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Skills         bool `json:"skills"`
	Projects       bool `json:"projects"`
	Certifications bool `json:"certifications"`
	Awards         bool `json:"awards"`
	Publications   bool `json:"publications"`
	Languages      bool `json:"languages"`
	References     bool `json:"references"`
	Volunteer      bool `json:"volunteer"`
}

// Found lists present sections in declaration order.
func (m SectionMap) Found() []string {
	out := []string{}
	for _, p := range sectionPatterns {
		if *p.pick(&m) {
			out = append(out, p.name)
		}
	}
	return out
}

// Has reports whether the named section is present.
func (m SectionMap) Has(name string) bool {
	for _, p := range sectionPatterns {
		if p.name == name {
			return *p.pick(&m)
		}
	}
	return false
}

// ContactSummary is the first hit of each contact kind; nil encodes as null.
type ContactSummary struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

type Skills struct {
	Present    []string `json:"present"`
	Missing    []string `json:"missing"`
	Categories SkillSet `json:"categories"`
}

type Metadata struct {
	PageCount            int      `json:"pageCount"`
	WordCount            int      `json:"wordCount"`
	ActionVerbCount      int      `json:"actionVerbCount"`
	QuantifiableCount    int      `json:"quantifiableCount"`
	SectionsFound        []string `json:"sectionsFound"`
	ActionVerbsFound     []string `json:"actionVerbsFound"`
	QuantifiableExamples []string `json:"quantifiableExamples"`
	Websites             []string `json:"websites"`
	EducationFields      []string `json:"educationFields"`
}

// Result is the full assessment of one resume text.
type Result struct {
	Score                int            `json:"score"`
	ScoreBreakdown       Breakdown      `json:"scoreBreakdown"`
	ContactInfo          ContactSummary `json:"contactInfo"`
	Skills               Skills         `json:"skills"`
	Metadata             Metadata       `json:"metadata"`
	Education            []string       `json:"education"`
	ExperienceHighlights []string       `json:"experienceHighlights"`
	Strengths            []string       `json:"strengths"`
	Improvements         []string       `json:"improvements"`
	ExtractedText        string         `json:"extractedText"`
	FullTextLength       int            `json:"fullTextLength"`
}

// Record is a stored analysis owned by a user.
type Record struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"ownerId"`
	ResumeID  *uuid.UUID `json:"resumeId,omitempty"`
	Filename  string     `json:"filename"`
	Score     int        `json:"score"`
	Result    Result     `json:"result"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ErrNotFound is returned when a record does not exist or belongs to someone else.
var ErrNotFound = errors.New("analysis not found")

// Repository is the storage port for analysis records.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
	LatestForOwner(ctx context.Context, ownerID uuid.UUID) (Record, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
