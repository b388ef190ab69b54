package pricing

// DerivePageCount sums the page contributions of the selected sections.
// Count-driven sections contribute the matching quantity from counts.
// Sections flagged always-included (home) are added when missing from the
// selection, so the result is never below the home page's contribution.
// Unknown and duplicate identifiers are ignored.
func (e *Engine) DerivePageCount(selected []Section, counts SectionCounts) int {
	total := 0
	seen := make(map[Section]bool, len(selected))
	for _, s := range selected {
		spec, ok := e.cat.Sections[s]
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		if spec.RequiresCount {
			total += nonNegative(counts.For(s))
			continue
		}
		total += spec.PageCount
	}

	for _, s := range Sections() {
		spec, ok := e.cat.Sections[s]
		if ok && spec.AlwaysIncluded && !seen[s] {
			total += spec.PageCount
		}
	}

	return total
}

// pageSplit is the reconciliation of requested pages against the pages a
// site type includes in its base price.
type pageSplit struct {
	total        int
	base         int
	freeNew      int
	freeUpdated  int
	extraNew     int
	extraUpdated int
}

func (e *Engine) reconcilePages(in Input, site SiteTypeSpec) pageSplit {
	split := pageSplit{base: nonNegative(site.BasePages)}

	if !in.IsRebuild {
		newPages := nonNegative(in.TotalPages)
		if len(in.SelectedPages) > 0 {
			newPages = e.DerivePageCount(in.SelectedPages, in.SectionCounts)
		}
		split.total = newPages
		split.freeNew = min(newPages, split.base)
		split.extraNew = newPages - split.freeNew
		return split
	}

	// Each non-empty selection set is counted on its own, home included.
	updated := nonNegative(in.UpdatedPages)
	if len(in.SelectedPagesToUpdate) > 0 {
		updated = e.DerivePageCount(in.SelectedPagesToUpdate, in.SectionCounts)
	}
	added := nonNegative(in.NewPages)
	if len(in.SelectedPagesToAdd) > 0 {
		added = e.DerivePageCount(in.SelectedPagesToAdd, in.SectionCounts)
	}

	split.total = updated + added
	remaining := split.base
	split.freeUpdated = min(updated, remaining)
	remaining -= split.freeUpdated
	split.freeNew = min(added, remaining)
	split.extraUpdated = updated - split.freeUpdated
	split.extraNew = added - split.freeNew
	return split
}

// SitemapEntry is a section of a default sitemap with its display data.
type SitemapEntry struct {
	Section       Section `json:"id"`
	Label         string  `json:"label"`
	PageCount     int     `json:"pageCount"`
	RequiresCount bool    `json:"requiresCount,omitempty"`
}

// SitemapView is a default sitemap resolved against the section catalog.
type SitemapView struct {
	SiteType    SiteType       `json:"siteType"`
	Label       string         `json:"label"`
	Core        []SitemapEntry `json:"core"`
	Recommended []SitemapEntry `json:"recommended"`
	Optional    []SitemapEntry `json:"optional"`
}

// Sitemap returns the default sitemap proposal for a site type.
func (e *Engine) Sitemap(st SiteType) (SitemapView, bool) {
	sm, ok := e.cat.Sitemaps[st]
	if !ok {
		return SitemapView{}, false
	}
	return SitemapView{
		SiteType:    st,
		Label:       sm.Label,
		Core:        e.entries(sm.Core),
		Recommended: e.entries(sm.Recommended),
		Optional:    e.entries(sm.Optional),
	}, true
}

func (e *Engine) entries(sections []Section) []SitemapEntry {
	out := make([]SitemapEntry, 0, len(sections))
	for _, s := range sections {
		spec, ok := e.cat.Sections[s]
		if !ok {
			continue
		}
		out = append(out, SitemapEntry{
			Section:       s,
			Label:         spec.Label,
			PageCount:     spec.PageCount,
			RequiresCount: spec.RequiresCount,
		})
	}
	return out
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
