package render

import (
	"sort"

	"iconsherald/internal/content"
	"iconsherald/internal/models"
	"iconsherald/internal/tiers"
)

// View is the data handed to a profile template. It carries only what
// the profile's tier is allowed to show: hidden entries are dropped,
// lists are ordered, and sections outside the tier's template are empty.
type View struct {
	Tier     models.Tier
	Slug     string
	Theme    models.ThemeSettings
	Basic    content.BasicInfo
	ViewerNo int64

	HeroVideoURL  string
	ImpactMetrics []content.Metric
	FutureVision  string

	Achievements []content.Entry
	Links        []content.Entry
	Gallery      []content.Entry
	Milestones   []content.Entry
	Quotes       []content.Entry
	Tributes     []content.Entry
}

// BuildView filters the document down to what the tier renders.
func BuildView(profile *models.Profile, doc *content.Document) *View {
	v := &View{
		Tier:     profile.Tier,
		Slug:     profile.Slug,
		Theme:    profile.GetTheme(),
		Basic:    doc.BasicInfo,
		ViewerNo: profile.ViewCount,

		Achievements: visibleOrdered(doc.Achievements),
		Links:        visibleOrdered(doc.Links),
		Quotes:       visibleOrdered(doc.Quotes),
	}

	if tiers.SectionVisible(profile.Tier, tiers.SectionHeroVideo) {
		v.HeroVideoURL = doc.HeroVideoURL
	}
	if tiers.SectionVisible(profile.Tier, tiers.SectionImpactMetrics) {
		v.ImpactMetrics = doc.ImpactMetrics
	}
	if tiers.SectionVisible(profile.Tier, tiers.SectionFutureVision) {
		v.FutureVision = doc.FutureVision
	}
	if tiers.SectionVisible(profile.Tier, tiers.SectionMilestones) {
		v.Milestones = visibleOrdered(doc.Milestones)
	}
	if tiers.SectionVisible(profile.Tier, tiers.SectionGallery) {
		v.Gallery = visibleOrdered(doc.Gallery)
	}
	if tiers.SectionVisible(profile.Tier, tiers.SectionTributes) {
		v.Tributes = visibleOrdered(doc.Tributes)
	}

	return v
}

// visibleOrdered copies the visible entries in order. The source list is
// never mutated.
func visibleOrdered(list []content.Entry) []content.Entry {
	out := make([]content.Entry, 0, len(list))
	for _, e := range list {
		if e.IsVisible {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
