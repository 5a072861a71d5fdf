package domain

import "time"

// PersonalInfo holds the scalar header fields of the resume.
type PersonalInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Title       string `json:"title"`
	Location    string `json:"location"`
}

// Experience is one entry of the work-experience list. IDs are assigned
// once on insert and never change.
type Experience struct {
	ID           string    `json:"id"`
	Position     string    `json:"position"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Duration     string    `json:"duration"`
	Description  string    `json:"description"`
	Current      bool      `json:"current"`
	Achievements []string  `json:"achievements,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Education is one entry of the education list.
type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Location    string    `json:"location"`
	Duration    string    `json:"duration"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resume is the whole document. Exactly one active resume exists; it is
// stored and rewritten as a single JSONB value.
type Resume struct {
	ID           string       `json:"id"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Highlights   []string     `json:"highlights"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PersonalInfoPatch is a partial update for PersonalInfo. Nil fields are
// left untouched so a patch can never null out data it does not mention.
type PersonalInfoPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	LinkedInURL *string `json:"linkedin_url,omitempty"`
	Title       *string `json:"title,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p PersonalInfoPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil &&
		p.LinkedInURL == nil && p.Title == nil && p.Location == nil
}

// ExperienceInput carries the caller-supplied fields for a new experience
// entry. The id and timestamps are assigned by the service.
type ExperienceInput struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements,omitempty"`
	SortOrder    int      `json:"sort_order"`
}

// ExperiencePatch is a partial update for one experience entry.
type ExperiencePatch struct {
	Position     *string   `json:"position,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Duration     *string   `json:"duration,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Current      *bool     `json:"current,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
	SortOrder    *int      `json:"sort_order,omitempty"`
}

func (p ExperiencePatch) Empty() bool {
	return p.Position == nil && p.Company == nil && p.Location == nil &&
		p.Duration == nil && p.Description == nil && p.Current == nil &&
		p.Achievements == nil && p.SortOrder == nil
}

// EducationInput carries the caller-supplied fields for a new education entry.
type EducationInput struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	SortOrder   int    `json:"sort_order"`
}

// EducationPatch is a partial update for one education entry.
type EducationPatch struct {
	Degree      *string `json:"degree,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Location    *string `json:"location,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

func (p EducationPatch) Empty() bool {
	return p.Degree == nil && p.Institution == nil && p.Location == nil &&
		p.Duration == nil && p.SortOrder == nil
}
