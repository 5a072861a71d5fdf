package pdf

import (
	"sort"
	"strings"

	"resume-api/internal/domain"
)

// A story is the ordered content stream handed to the layout stage:
// paragraphs with a style, and vertical spacers. Pagination is the layout
// stage's problem, not the story builder's.

type flowKind int

const (
	flowParagraph flowKind = iota
	flowSpacer
)

type flowable struct {
	kind flowKind
	text string
	sty  style
	gap  float64 // spacer height in points
}

func paragraph(text string, sty style) flowable {
	return flowable{kind: flowParagraph, text: text, sty: sty}
}

func spacer(gap float64) flowable {
	return flowable{kind: flowSpacer, gap: gap}
}

type style struct {
	variant string // "", "B" or "I"
	size    float64
	color   [3]int
	align   string
	before  float64 // extra space above, points
	after   float64 // extra space below, points
}

var (
	brown = [3]int{139, 69, 19} // saddle brown
	ink   = [3]int{102, 51, 26}

	titleStyle    = style{variant: "B", size: 24, color: brown, align: "C", after: 12}
	subtitleStyle = style{variant: "I", size: 14, color: brown, align: "C", after: 20}
	headingStyle  = style{variant: "B", size: 16, color: brown, align: "L", before: 20, after: 10}
	bodyStyle     = style{size: 11, color: ink, align: "L", after: 6}
	bodyBold      = style{variant: "B", size: 11, color: ink, align: "L", after: 6}
	bodyItalic    = style{variant: "I", size: 11, color: ink, align: "L", after: 6}
	contactStyle  = style{size: 10, color: brown, align: "C", after: 10}
)

const (
	headingHighlights = "Highlights of Qualifications"
	headingExperience = "Professional Experience"
	headingEducation  = "Education & Certifications"
	headingSkills     = "Core Competencies"

	separator = " • "
)

// buildStory flattens the resume into the content stream. Sections with no
// data are skipped entirely; missing header fields are omitted without
// placeholders, so a sparse resume still renders.
func buildStory(r *domain.Resume) []flowable {
	var story []flowable

	pi := r.PersonalInfo
	if pi.Name != "" {
		story = append(story, paragraph(pi.Name, titleStyle))
	}
	if pi.Title != "" {
		story = append(story, paragraph(pi.Title, subtitleStyle))
	}
	var contact []string
	for _, part := range []string{pi.Email, pi.Phone, pi.Location} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		story = append(story, paragraph(strings.Join(contact, separator), contactStyle))
	}
	if pi.LinkedInURL != "" {
		story = append(story, paragraph("LinkedIn: "+pi.LinkedInURL, contactStyle))
	}
	story = append(story, spacer(20))

	if len(r.Highlights) > 0 {
		story = append(story, paragraph(headingHighlights, headingStyle))
		for _, h := range r.Highlights {
			story = append(story, paragraph("• "+h, bodyStyle))
		}
		story = append(story, spacer(15))
	}

	if len(r.Experience) > 0 {
		story = append(story, paragraph(headingExperience, headingStyle))
		for _, exp := range sortedExperience(r.Experience) {
			story = append(story, paragraph(exp.Position, bodyBold))
			story = append(story, paragraph(exp.Company+separator+exp.Location, bodyStyle))
			duration := exp.Duration
			if exp.Current {
				duration += " (Current)"
			}
			story = append(story, paragraph(duration, bodyItalic))
			story = append(story, paragraph(exp.Description, bodyStyle))
			for _, a := range exp.Achievements {
				story = append(story, paragraph("• "+a, bodyStyle))
			}
			story = append(story, spacer(12))
		}
	}

	if len(r.Education) > 0 {
		story = append(story, paragraph(headingEducation, headingStyle))
		for _, edu := range sortedEducation(r.Education) {
			story = append(story, paragraph(edu.Degree, bodyBold))
			institution := edu.Institution
			if edu.Location != "" {
				institution += separator + edu.Location
			}
			story = append(story, paragraph(institution, bodyStyle))
			story = append(story, paragraph(edu.Duration, bodyItalic))
			story = append(story, spacer(8))
		}
	}

	if len(r.Skills) > 0 {
		story = append(story, paragraph(headingSkills, headingStyle))
		story = append(story, paragraph(strings.Join(r.Skills, separator), bodyStyle))
	}

	return story
}

// Entries are laid out by sort_order; ties keep stored (insertion) order.
func sortedExperience(in []domain.Experience) []domain.Experience {
	out := make([]domain.Experience, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func sortedEducation(in []domain.Education) []domain.Education {
	out := make([]domain.Education, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}
