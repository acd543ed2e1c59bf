package models

// Tier is the membership level of a nominee and their profile. The tier
// controls pricing, which builder sections are visible, per-section entry
// limits and which rendering template family is used.
type Tier string

const (
	TierRising Tier = "rising"
	TierElite  Tier = "elite"
	TierLegacy Tier = "legacy"
)

// Tiers lists all valid tiers in ascending order of standing.
var Tiers = []Tier{TierRising, TierElite, TierLegacy}

func (t Tier) Valid() bool {
	switch t {
	case TierRising, TierElite, TierLegacy:
		return true
	}
	return false
}
