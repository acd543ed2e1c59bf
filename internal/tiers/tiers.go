// Package tiers is the single source of truth for everything a membership
// tier controls: section visibility, per-section entry limits, the fields
// counted toward completion and pricing. Nothing else in the codebase may
// hard-code a tier rule.
package tiers

import "iconsherald/internal/models"

// Section names the optional builder sections whose visibility is
// tier-dependent.
type Section string

const (
	SectionHeroVideo     Section = "hero_video"
	SectionImpactMetrics Section = "impact_metrics"
	SectionTributes      Section = "tributes"
	SectionFutureVision  Section = "future_vision"
	SectionMilestones    Section = "milestones"
	SectionGallery       Section = "gallery"
)

// ListKind names the ordered entry lists managed by the builder.
type ListKind string

const (
	ListAchievements ListKind = "achievements"
	ListLinks        ListKind = "links"
	ListGallery      ListKind = "gallery"
	ListMilestones   ListKind = "milestones"
	ListQuotes       ListKind = "quotes"
	ListTributes     ListKind = "tributes"
)

// ListKinds enumerates every managed list, for route/param validation.
var ListKinds = []ListKind{
	ListAchievements, ListLinks, ListGallery,
	ListMilestones, ListQuotes, ListTributes,
}

func ValidListKind(kind string) bool {
	for _, k := range ListKinds {
		if string(k) == kind {
			return true
		}
	}
	return false
}

// visibility maps each tier to the optional sections its builder shows and
// its templates render.
var visibility = map[models.Tier]map[Section]bool{
	models.TierRising: {
		SectionMilestones: true,
	},
	models.TierElite: {
		SectionImpactMetrics: true,
		SectionMilestones:    true,
		SectionGallery:       true,
		SectionFutureVision:  true,
	},
	models.TierLegacy: {
		SectionHeroVideo:     true,
		SectionImpactMetrics: true,
		SectionTributes:      true,
		SectionFutureVision:  true,
		SectionMilestones:    true,
		SectionGallery:       true,
	},
}

// limits maps each tier to the maximum entry count per list. Add beyond
// the cap is a no-op with a notice, never an error.
var limits = map[models.Tier]map[ListKind]int{
	models.TierRising: {
		ListAchievements: 5,
		ListLinks:        3,
		ListGallery:      0,
		ListMilestones:   3,
		ListQuotes:       2,
		ListTributes:     0,
	},
	models.TierElite: {
		ListAchievements: 10,
		ListLinks:        5,
		ListGallery:      4,
		ListMilestones:   8,
		ListQuotes:       5,
		ListTributes:     3,
	},
	models.TierLegacy: {
		ListAchievements: 25,
		ListLinks:        15,
		ListGallery:      25,
		ListMilestones:   20,
		ListQuotes:       10,
		ListTributes:     12,
	},
}

// Pricing per tier, charged when a draft is submitted for publication.
type Price struct {
	Amount   float64
	Currency string
}

var pricing = map[models.Tier]Price{
	models.TierRising: {Amount: 99, Currency: "USD"},
	models.TierElite:  {Amount: 249, Currency: "USD"},
	models.TierLegacy: {Amount: 499, Currency: "USD"},
}

// SectionVisible reports whether the tier's builder and templates include
// the section.
func SectionVisible(tier models.Tier, section Section) bool {
	return visibility[tier][section]
}

// VisibleSections returns the tier's visible optional sections.
func VisibleSections(tier models.Tier) []Section {
	all := []Section{
		SectionHeroVideo, SectionImpactMetrics, SectionTributes,
		SectionFutureVision, SectionMilestones, SectionGallery,
	}
	var out []Section
	for _, s := range all {
		if visibility[tier][s] {
			out = append(out, s)
		}
	}
	return out
}

// Limit returns the maximum entry count for a list on the given tier.
// Unknown combinations return 0 (section not available).
func Limit(tier models.Tier, kind ListKind) int {
	return limits[tier][kind]
}

// PriceFor returns the tier's publication price.
func PriceFor(tier models.Tier) Price {
	return pricing[tier]
}
