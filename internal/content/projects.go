package content

// SiteKind says who a project site is for.
type SiteKind string

const (
	SitePublic      SiteKind = "public"
	SiteInHouse     SiteKind = "in-house"
	SiteApplication SiteKind = "application"
)

// Label returns the display name of k.
func (k SiteKind) Label() string {
	switch k {
	case SitePublic:
		return "Public Site"
	case SiteInHouse:
		return "In-House Application"
	case SiteApplication:
		return "Application"
	default:
		return string(k)
	}
}

// Framework is what a project site is built with.
type Framework string

const (
	FrameworkNextJS    Framework = "nextjs"
	FrameworkWordPress Framework = "wordpress"
	FrameworkWebflow   Framework = "webflow"
	FrameworkBuilder   Framework = "builder"
	FrameworkCustom    Framework = "custom"
	FrameworkOther     Framework = "other"
)

// Label returns the display name of f.
func (f Framework) Label() string {
	switch f {
	case FrameworkNextJS:
		return "Next.js"
	case FrameworkWordPress:
		return "WordPress"
	case FrameworkWebflow:
		return "Webflow"
	case FrameworkBuilder:
		return "Website Builder"
	case FrameworkCustom:
		return "Custom"
	default:
		return "Other"
	}
}

type ProjectSite struct {
	Name        string
	URL         string
	Kind        SiteKind
	Framework   Framework
	Description string
	Primary     bool
}

type BrandColor struct {
	Name string
	Hex  string
}

// Project is a portfolio entry.
type Project struct {
	Slug         string
	Title        string
	Description  string
	Overview     []string
	Services     []string
	BrandColors  []BrandColor
	Sites        []ProjectSite
	Technologies []string
	Year         int
	Category     string
	Featured     bool
}

// PrimarySite returns the site marked primary, or the first one.
func (p Project) PrimarySite() (ProjectSite, bool) {
	for _, s := range p.Sites {
		if s.Primary {
			return s, true
		}
	}
	if len(p.Sites) > 0 {
		return p.Sites[0], true
	}
	return ProjectSite{}, false
}

var projects = []Project{
	{
		Slug:        "justinception",
		Title:       "JustInception Studio",
		Description: "Design, development, and fast delivery to help a brand launch with confidence.",
		Overview: []string{
			"The studio's own site and service model: one design system delivered on two platforms.",
			"Built in Next.js with Tailwind CSS and as a hand-written classic WordPress theme with Gutenberg blocks.",
		},
		Services: []string{"Brand Identity", "Design & Dev", "Motion & Media", "Launch Support"},
		BrandColors: []BrandColor{
			{Name: "Purple", Hex: "#8B5CF6"},
			{Name: "Yellow", Hex: "#FBBF24"},
			{Name: "Blue", Hex: "#3B82F6"},
			{Name: "Background", Hex: "#0A0A0F"},
		},
		Sites: []ProjectSite{
			{Name: "Public Website", URL: "https://justinception.com", Kind: SitePublic, Framework: FrameworkNextJS, Primary: true},
			{Name: "WordPress Site", Kind: SitePublic, Framework: FrameworkWordPress, Description: "Custom classic theme built without page builders."},
		},
		Technologies: []string{"Next.js", "React", "TypeScript", "Tailwind CSS", "WordPress", "PHP"},
		Year:         2025,
		Category:     "Portfolio",
		Featured:     true,
	},
	{
		Slug:        "locoal",
		Title:       "LOCOAL",
		Description: "A platform connecting local businesses with their communities.",
		Overview: []string{
			"Front-end, internal tools and analytics for an early-stage climate technology company.",
			"Shipped a real-time equipment monitoring application, an admin center and a Webflow marketing site.",
		},
		Services: []string{"Design & Dev", "Launch Support", "Microsoft 365 Administrator"},
		Sites: []ProjectSite{
			{Name: "Public Website", URL: "https://locoal.com", Kind: SitePublic, Framework: FrameworkNextJS, Primary: true},
			{Name: "Admin Dashboard", Kind: SiteInHouse, Framework: FrameworkNextJS, Description: "Internal admin application for managing organizations and sites."},
		},
		Technologies: []string{"Next.js", "React", "TypeScript", "AWS", "Azure", "Power BI", "Webflow"},
		Year:         2025,
		Category:     "Platform",
		Featured:     true,
	},
	{
		Slug:        "azul-pool-services",
		Title:       "Azul Pool Services",
		Description: "Professional pool maintenance and service company website.",
		Overview: []string{
			"Brand identity and a customer site with a guided quote flow.",
			"Includes dynamic pricing, automated email handling and an admin dashboard for incoming requests.",
		},
		Services: []string{"Brand Identity", "Design & Dev", "Launch Support", "Motion & Media"},
		BrandColors: []BrandColor{
			{Name: "Azul", Hex: "#0EA5E9"},
			{Name: "Deep Water", Hex: "#0C4A6E"},
		},
		Sites: []ProjectSite{
			{Name: "Public Website", Kind: SitePublic, Framework: FrameworkNextJS, Primary: true},
			{Name: "Quote Dashboard", Kind: SiteApplication, Framework: FrameworkCustom},
		},
		Technologies: []string{"Next.js", "React", "Tailwind CSS", "Resend"},
		Year:         2025,
		Category:     "Service Business",
		Featured:     true,
	},
	{
		Slug:         "bridgehead-capital",
		Title:        "Bridge Head Capital Partners",
		Description:  "Investment firm website with a focus on trust and clarity.",
		Services:     []string{"Design & Dev"},
		Sites:        []ProjectSite{{Name: "Public Website", Kind: SitePublic, Framework: FrameworkWebflow, Primary: true}},
		Technologies: []string{"Webflow"},
		Year:         2023,
		Category:     "Finance",
	},
	{
		Slug:         "cupcake-dream-shop",
		Title:        "The Cupcake Dream Shop",
		Description:  "Bakery storefront with online ordering.",
		Services:     []string{"Brand Identity", "Design & Dev"},
		Sites:        []ProjectSite{{Name: "Storefront", Kind: SitePublic, Framework: FrameworkBuilder, Primary: true}},
		Technologies: []string{"Shopify"},
		Year:         2023,
		Category:     "Retail",
	},
}

// Projects returns every project in display order.
func Projects() []Project {
	return projects
}

// FeaturedProjects returns the projects shown on the home page.
func FeaturedProjects() []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ProjectBySlug looks up a project.
func ProjectBySlug(slug string) (Project, bool) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}
