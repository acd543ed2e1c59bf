package content

import (
	"iconsherald/internal/models"
	"iconsherald/internal/tiers"
)

// PublishThreshold is the minimum completion percentage required before a
// draft may be submitted for payment.
const PublishThreshold = 90

// check is one tier-required field with its fill predicate.
type check struct {
	Field  string
	Filled func(d *Document) bool
}

func baseChecks() []check {
	return []check{
		{"basic_info.name", func(d *Document) bool { return d.BasicInfo.Name != "" }},
		{"basic_info.headline", func(d *Document) bool { return d.BasicInfo.Headline != "" }},
		{"basic_info.bio", func(d *Document) bool { return d.BasicInfo.Bio != "" }},
		{"basic_info.photo_url", func(d *Document) bool { return d.BasicInfo.PhotoURL != "" }},
		{"basic_info.location", func(d *Document) bool { return d.BasicInfo.Location != "" }},
		{"achievements", func(d *Document) bool { return len(d.Achievements) > 0 }},
		{"links", func(d *Document) bool { return len(d.Links) > 0 }},
	}
}

func sectionChecks(tier models.Tier) []check {
	var out []check
	if tiers.SectionVisible(tier, tiers.SectionHeroVideo) {
		out = append(out, check{"hero_video_url", func(d *Document) bool { return d.HeroVideoURL != "" }})
	}
	if tiers.SectionVisible(tier, tiers.SectionImpactMetrics) {
		out = append(out, check{"impact_metrics", func(d *Document) bool { return len(d.ImpactMetrics) > 0 }})
	}
	if tiers.SectionVisible(tier, tiers.SectionFutureVision) {
		out = append(out, check{"future_vision", func(d *Document) bool { return d.FutureVision != "" }})
	}
	if tiers.SectionVisible(tier, tiers.SectionMilestones) {
		out = append(out, check{"milestones", func(d *Document) bool { return len(d.Milestones) > 0 }})
	}
	if tiers.SectionVisible(tier, tiers.SectionGallery) {
		out = append(out, check{"gallery", func(d *Document) bool { return len(d.Gallery) > 0 }})
	}
	if tiers.SectionVisible(tier, tiers.SectionTributes) {
		out = append(out, check{"tributes", func(d *Document) bool { return len(d.Tributes) > 0 }})
	}
	return out
}

// Completion returns the percentage (0-100) of tier-required fields that
// are non-empty, plus the list of fields still missing.
func Completion(d *Document, tier models.Tier) (percent int, missing []string) {
	checks := append(baseChecks(), sectionChecks(tier)...)
	filled := 0
	for _, c := range checks {
		if c.Filled(d) {
			filled++
		} else {
			missing = append(missing, c.Field)
		}
	}
	if len(checks) == 0 {
		return 100, nil
	}
	return filled * 100 / len(checks), missing
}

// ReadyToPublish reports whether the document clears the publish gate.
func ReadyToPublish(d *Document, tier models.Tier) bool {
	percent, _ := Completion(d, tier)
	return percent >= PublishThreshold
}
