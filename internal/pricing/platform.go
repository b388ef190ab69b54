package pricing

type siteTier int

const (
	tierSimple siteTier = iota + 1
	tierStandard
	tierApp
)

// siteTypeTier classifies every known site type. Adding a SiteType without
// a case here leaves it unclassified, which the tests reject.
func siteTypeTier(st SiteType) (siteTier, bool) {
	switch st {
	case SiteBillboard, SiteServiceBusiness, SiteEvents:
		return tierSimple, true
	case SiteRetail, SiteRetailShipping, SiteEducational, SiteCreative:
		return tierStandard, true
	case SiteWebApp:
		return tierApp, true
	default:
		return 0, false
	}
}

// DerivePlatform picks the platform for a submission. Rules are evaluated
// in priority order and the first match wins.
func (e *Engine) DerivePlatform(in Input) Platform {
	tier, ok := siteTypeTier(in.SiteType)
	if _, known := e.cat.SiteTypes[in.SiteType]; !ok || !known {
		return PlatformWebflow
	}

	calculator := in.LeadGenType == LeadGenCalculator
	switch {
	case tier == tierApp:
		return PlatformNextJS
	case calculator && in.WantsCustomAnimations:
		return PlatformWebflow
	case calculator:
		return PlatformNextJS
	case in.IsBudgetConscious && !in.WantsCustomAnimations && tier == tierSimple:
		return PlatformBuilder
	case in.WantsCustomAnimations:
		return PlatformWebflow
	default:
		return PlatformWebflow
	}
}

// isHybridLeadGen reports whether the lead generator is a custom app
// embedded in a no-code site, which is billed at the custom platform rate.
func isHybridLeadGen(in Input, platform Platform) bool {
	return in.LeadGenType == LeadGenCalculator && in.WantsCustomAnimations && platform == PlatformWebflow
}
