package content

import (
	"iconsherald/internal/models"
	"iconsherald/internal/tiers"
)

// Builder wizard steps in order. Forward navigation requires the current
// step to be valid; backward navigation is always allowed.
const (
	StepBasicInfo    = "basic_info"
	StepTierSections = "tier_sections"
	StepAchievements = "achievements"
	StepLinksMedia   = "links_media"
	StepReview       = "review"
)

var StepOrder = []string{
	StepBasicInfo, StepTierSections, StepAchievements, StepLinksMedia, StepReview,
}

// StepStatus is the server-side validity report for one wizard step.
type StepStatus struct {
	Step    string   `json:"step"`
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
}

// Steps evaluates every step's validity predicate against the document.
func Steps(d *Document, tier models.Tier) []StepStatus {
	out := make([]StepStatus, 0, len(StepOrder))
	for _, step := range StepOrder {
		valid, missing := stepValid(d, tier, step)
		out = append(out, StepStatus{Step: step, Valid: valid, Missing: missing})
	}
	return out
}

func stepValid(d *Document, tier models.Tier, step string) (bool, []string) {
	switch step {
	case StepBasicInfo:
		var missing []string
		if d.BasicInfo.Name == "" {
			missing = append(missing, "basic_info.name")
		}
		if d.BasicInfo.Headline == "" {
			missing = append(missing, "basic_info.headline")
		}
		if d.BasicInfo.Bio == "" {
			missing = append(missing, "basic_info.bio")
		}
		return len(missing) == 0, missing

	case StepTierSections:
		// Tier sections are individually optional mid-flight; the step is
		// passable once any visible section has data or none are visible.
		sections := tiers.VisibleSections(tier)
		if len(sections) == 0 {
			return true, nil
		}
		for _, s := range sections {
			if sectionFilled(d, s) {
				return true, nil
			}
		}
		return false, []string{"tier_sections"}

	case StepAchievements:
		if len(d.Achievements) == 0 {
			return false, []string{"achievements"}
		}
		return true, nil

	case StepLinksMedia:
		if len(d.Links) == 0 {
			return false, []string{"links"}
		}
		return true, nil

	case StepReview:
		return ReadyToPublish(d, tier), nil
	}
	return false, nil
}

func sectionFilled(d *Document, s tiers.Section) bool {
	switch s {
	case tiers.SectionHeroVideo:
		return d.HeroVideoURL != ""
	case tiers.SectionImpactMetrics:
		return len(d.ImpactMetrics) > 0
	case tiers.SectionFutureVision:
		return d.FutureVision != ""
	case tiers.SectionMilestones:
		return len(d.Milestones) > 0
	case tiers.SectionGallery:
		return len(d.Gallery) > 0
	case tiers.SectionTributes:
		return len(d.Tributes) > 0
	}
	return false
}
