// Package section describes the text content that scrolls over the backdrop.
// Sections know nothing about the 3D scenes beyond the scroll range they share
// with them; both layers read the same scroll progress.
package section

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
)

// Section is one full-height block of page content.
type Section struct {
	// Label is the small caps line above the heading.
	Label string
	// Heading is the section title.
	Heading string
	// Context is the line under the heading.
	Context string
	// Points are the bullet or metric lines of the section body.
	Points []string

	// Start and End bound the scroll progress during which the section is
	// the one under the viewport center.
	Start float64
	End   float64

	// Scene is the backdrop scene shown behind the section.
	Scene scene.ID
}

// Contains reports whether p falls in [Start, End). The last section also owns 1.
func (s Section) Contains(p float64) bool {
	return p >= s.Start && (p < s.End || (s.End == 1 && p == 1))
}

// Revealed reports whether the section's entrance has played at p.
// Entrances play once the section is reached and reverse only when scrolling
// back above its start.
func (s Section) Revealed(p float64) bool {
	return p >= s.Start
}

// Progress returns how far the viewport center has moved through the section.
func (s Section) Progress(p float64) float64 {
	return common.Clamp01(common.Ratio(p-s.Start, s.End-s.Start))
}

var sections = []Section{
	{
		Heading: "Farrukh Mirzaev",
		Start:   0,
		End:     0.125,
		Scene:   scene.FloatingShapes,
	},
	{
		Label:   "THE REALITY",
		Heading: "Your team is drowning in repetitive work",
		Context: "Sound familiar?",
		Points: []string{
			"5-day month-end close cycles",
			"Manual reconciliation errors costing thousands",
			"Hours wasted on data entry and validation",
		},
		Start: 0.125,
		End:   0.255,
		Scene: scene.ChaosElements,
	},
	{
		Label:   "THE TRANSFORMATION",
		Heading: "From chaos to clarity in milliseconds",
		Context: "Watch complexity become simplicity through intelligent automation",
		Points: []string{
			"95% faster: processing time",
			"Zero errors: accuracy rate",
			"2-day close: new timeline",
		},
		Start: 0.255,
		End:   0.395,
		Scene: scene.OrderElements,
	},
	{
		Label:   "CASE STUDY 01",
		Heading: "Month-End Close Automation",
		Context: "Global manufacturing firm, $2B revenue",
		Points: []string{
			"80% time reduction: 5 days to 1 day",
			"Zero manual errors: 100% accuracy",
			"$200K annual savings: ROI in 6 months",
		},
		Start: 0.395,
		End:   0.52,
		Scene: scene.CalendarViz,
	},
	{
		Label:   "CASE STUDY 02",
		Heading: "Bank Reconciliation Automation",
		Start:   0.52,
		End:     0.6475,
		Scene:   scene.MatchingViz,
	},
	{
		Label:   "CASE STUDY 03",
		Heading: "Enterprise Data Pipeline",
		Context: "Tech company, 50M+ records daily",
		Points: []string{
			"15 systems unified: single pipeline",
			"94% faster processing: 4hr to 15min",
			"95% error reduction: near-zero defects",
		},
		Start: 0.6475,
		End:   0.76,
		Scene: scene.PipelineViz,
	},
	{
		Label:   "MY APPROACH",
		Heading: "Humans should do interesting work. Let AI handle the rest.",
		Context: "Technology serves people, not the other way around.",
		Points: []string{
			"Start with the problem, not the tool",
			"Automate the boring, amplify the human",
			"Build for maintainability, not just speed",
			"Measure impact in hours saved and errors prevented",
		},
		Start: 0.76,
		End:   1,
		Scene: scene.PrinciplesViz,
	},
}

// All returns the page sections in document order.
//
// Returns:
//   - []Section: a copy of the section list
func All() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// At returns the section under the viewport center at progress p.
// Out-of-range progress is clamped, so every p resolves to a section.
//
// Parameters:
//   - p: global scroll progress
//
// Returns:
//   - Section: the current section
//   - int: its index in All
func At(p float64) (Section, int) {
	p = common.Clamp01(p)
	for i, s := range sections {
		if s.Contains(p) {
			return s, i
		}
	}
	return sections[len(sections)-1], len(sections) - 1
}
