package pricing

// Section identifies a page or group of pages on a site.
type Section string

const (
	SectionHome           Section = "home"
	SectionAbout          Section = "about"
	SectionServices       Section = "services"
	SectionServiceDetails Section = "serviceDetails"
	SectionProducts       Section = "products"
	SectionProductDetails Section = "productDetails"
	SectionShipping       Section = "shipping"
	SectionLocations      Section = "locations"
	SectionLookbook       Section = "lookbook"
	SectionGiftCards      Section = "giftCards"
	SectionContact        Section = "contact"
	SectionHowItWorks     Section = "howItWorks"
	SectionBlog           Section = "blog"
	SectionPortfolio      Section = "portfolio"
	SectionCaseStudies    Section = "caseStudies"
	SectionFAQ            Section = "faq"
	SectionResources      Section = "resources"
	SectionCourses        Section = "courses"
	SectionEvents         Section = "events"
	SectionInstructors    Section = "instructors"
	SectionProcess        Section = "process"
	SectionPress          Section = "press"
	SectionSchedule       Section = "schedule"
	SectionSpeakers       Section = "speakers"
	SectionTickets        Section = "tickets"
	SectionSponsors       Section = "sponsors"
	SectionVenue          Section = "venue"
	SectionPastEvents     Section = "pastEvents"
	SectionFeatures       Section = "features"
	SectionDocs           Section = "docs"
	SectionSupport        Section = "support"
	SectionChangelog      Section = "changelog"
	SectionPricing        Section = "pricing"
	SectionLogin          Section = "login"
	SectionSignup         Section = "signup"
	SectionThankYou       Section = "thankYou"
	SectionLegal          Section = "legal"
	SectionPrivacy        Section = "privacy"
	SectionTerms          Section = "terms"
	SectionCookiePolicy   Section = "cookiePolicy"
	SectionShippingPolicy Section = "shippingPolicy"
	SectionReturnsPolicy  Section = "returnsPolicy"
)

// SectionSpec describes how a section contributes to the page count.
// Count-driven sections contribute the caller-supplied quantity instead
// of PageCount.
type SectionSpec struct {
	Label          string `json:"label"`
	PageCount      int    `json:"pageCount"`
	AlwaysIncluded bool   `json:"alwaysIncluded,omitempty"`
	RequiresCount  bool   `json:"requiresCount,omitempty"`
}

// Sitemap is the default page proposal for a site type.
type Sitemap struct {
	Label       string    `json:"label"`
	Core        []Section `json:"core"`
	Recommended []Section `json:"recommended"`
	Optional    []Section `json:"optional"`
}

// SectionCounts carries the quantities of count-driven sections.
type SectionCounts struct {
	ServiceDetails int `json:"serviceDetailsCount"`
	CaseStudies    int `json:"caseStudyCount"`
	Courses        int `json:"courseCount"`
	ProductDetails int `json:"productDetailsCount"`
}

// For returns the user-supplied quantity for a count-driven section.
func (c SectionCounts) For(s Section) int {
	switch s {
	case SectionServiceDetails:
		return c.ServiceDetails
	case SectionCaseStudies:
		return c.CaseStudies
	case SectionCourses:
		return c.Courses
	case SectionProductDetails:
		return c.ProductDetails
	default:
		return 0
	}
}

// Sections returns every section identifier in catalog order.
func Sections() []Section {
	return []Section{
		SectionHome, SectionAbout, SectionServices, SectionServiceDetails,
		SectionProducts, SectionProductDetails, SectionShipping, SectionLocations,
		SectionLookbook, SectionGiftCards, SectionContact, SectionHowItWorks,
		SectionBlog, SectionPortfolio, SectionCaseStudies, SectionFAQ,
		SectionResources, SectionCourses, SectionEvents, SectionInstructors,
		SectionProcess, SectionPress, SectionSchedule, SectionSpeakers,
		SectionTickets, SectionSponsors, SectionVenue, SectionPastEvents,
		SectionFeatures, SectionDocs, SectionSupport, SectionChangelog,
		SectionPricing, SectionLogin, SectionSignup, SectionThankYou,
		SectionLegal, SectionPrivacy, SectionTerms, SectionCookiePolicy,
		SectionShippingPolicy, SectionReturnsPolicy,
	}
}

func page(label string) SectionSpec {
	return SectionSpec{Label: label, PageCount: 1}
}

func counted(label string) SectionSpec {
	return SectionSpec{Label: label, RequiresCount: true}
}

func defaultSections() map[Section]SectionSpec {
	return map[Section]SectionSpec{
		SectionHome:           {Label: "Home page", PageCount: 1, AlwaysIncluded: true},
		SectionAbout:          page("About page"),
		SectionServices:       page("Services / Products listing page"),
		SectionServiceDetails: counted("Individual service detail pages"),
		SectionProducts:       page("Products listing page"),
		SectionProductDetails: counted("Individual product detail pages"),
		SectionShipping:       page("Shipping overview page"),
		SectionLocations:      page("Store locations page"),
		SectionLookbook:       page("Lookbook / Gallery page"),
		SectionGiftCards:      page("Gift cards page"),
		SectionContact:        page("Contact page"),
		SectionHowItWorks:     page("How it works / Process page"),
		// Listing page plus post template.
		SectionBlog:         {Label: "Blog / News section", PageCount: 2},
		SectionPortfolio:    page("Portfolio / Work showcase"),
		SectionCaseStudies:  counted("Case studies / Project details"),
		SectionFAQ:          page("FAQ page"),
		SectionResources:    page("Resources / Downloads section"),
		SectionCourses:      counted("Course / Learning track pages"),
		SectionEvents:       page("Events page"),
		SectionInstructors:  page("Instructors / Team page"),
		SectionProcess:      page("Process / Methodology page"),
		SectionPress:        page("Press / Awards page"),
		SectionSchedule:     page("Schedule / Timeline page"),
		SectionSpeakers:     page("Speakers page"),
		SectionTickets:      page("Tickets / Registration page"),
		SectionSponsors:     page("Sponsors page"),
		SectionVenue:        page("Venue / Location page"),
		SectionPastEvents:   page("Past events / Archive page"),
		SectionFeatures:     page("Features page"),
		SectionDocs:         page("Documentation / API docs"),
		SectionSupport:      page("Support / Help center"),
		SectionChangelog:    page("Changelog / Updates page"),
		SectionPricing:      page("Pricing page"),
		SectionLogin:        page("Login page"),
		SectionSignup:       page("Sign up page"),
		SectionThankYou:     page("Thank you / Confirmation page"),
		// Privacy policy plus terms bundle.
		SectionLegal:          {Label: "Legal pages (Privacy Policy, Terms, etc.)", PageCount: 2},
		SectionPrivacy:        page("Privacy Policy page"),
		SectionTerms:          page("Terms of Service page"),
		SectionCookiePolicy:   page("Cookie Policy page"),
		SectionShippingPolicy: page("Shipping Policy page"),
		SectionReturnsPolicy:  page("Returns / Refund Policy page"),
	}
}

func defaultSitemaps() map[SiteType]Sitemap {
	retailCore := []Section{SectionHome, SectionAbout, SectionProducts, SectionContact, SectionLegal}
	retailOptional := []Section{
		SectionBlog, SectionLookbook, SectionGiftCards, SectionShippingPolicy,
		SectionReturnsPolicy, SectionPrivacy, SectionTerms,
	}

	return map[SiteType]Sitemap{
		SiteBillboard: {
			Label:       "Billboard / One-pager",
			Core:        []Section{SectionHome},
			Recommended: []Section{SectionThankYou},
			Optional:    []Section{SectionPrivacy},
		},
		SiteServiceBusiness: {
			Label:       "Service Business",
			Core:        []Section{SectionHome, SectionAbout, SectionServices, SectionHowItWorks, SectionContact},
			Recommended: []Section{SectionServiceDetails, SectionFAQ, SectionResources},
			Optional:    []Section{SectionBlog, SectionPrivacy, SectionTerms},
		},
		SiteRetail: {
			Label:       "Retail / Shop",
			Core:        retailCore,
			Recommended: []Section{SectionProductDetails, SectionFAQ, SectionLocations},
			Optional:    retailOptional,
		},
		SiteRetailShipping: {
			Label:       "Retail + Shipping",
			Core:        append([]Section(nil), retailCore...),
			Recommended: []Section{SectionProductDetails, SectionFAQ, SectionHowItWorks, SectionLocations},
			Optional:    append([]Section(nil), retailOptional...),
		},
		SiteEducational: {
			Label:       "Educational / Info Resource",
			Core:        []Section{SectionHome, SectionAbout, SectionResources, SectionContact},
			Recommended: []Section{SectionBlog, SectionCourses, SectionFAQ},
			Optional:    []Section{SectionEvents, SectionInstructors, SectionPrivacy, SectionTerms},
		},
		SiteCreative: {
			Label:       "Creative / Portfolio",
			Core:        []Section{SectionHome, SectionAbout, SectionPortfolio, SectionCaseStudies, SectionContact},
			Recommended: []Section{SectionServices, SectionProcess, SectionFAQ},
			Optional:    []Section{SectionBlog, SectionPress, SectionPrivacy, SectionTerms},
		},
		SiteEvents: {
			Label:       "Events / Conferences / Gatherings",
			Core:        []Section{SectionHome, SectionAbout, SectionContact},
			Recommended: []Section{SectionSchedule, SectionSpeakers, SectionTickets, SectionFAQ},
			Optional:    []Section{SectionSponsors, SectionVenue, SectionPastEvents, SectionPrivacy, SectionTerms},
		},
		SiteWebApp: {
			Label:       "Web App / SaaS",
			Core:        []Section{SectionHome, SectionAbout, SectionContact, SectionResources, SectionLegal},
			Recommended: []Section{SectionFeatures, SectionDocs, SectionSupport, SectionChangelog},
			Optional: []Section{
				SectionPricing, SectionLogin, SectionSignup, SectionPrivacy,
				SectionTerms, SectionCookiePolicy,
			},
		},
	}
}
