package content

// Document keys. Each key maps to exactly one stored document; the document is
// the unit of storage and the unit of update.
const (
	KeyHome         = "home"
	KeyTeam         = "team"
	KeyProjects     = "projects"
	KeyFAQ          = "faq"
	KeyFooter       = "footer"
	KeyPageSettings = "page_settings"
)

// Keys returns all valid document keys.
func Keys() []string {
	return []string{KeyHome, KeyTeam, KeyProjects, KeyFAQ, KeyFooter, KeyPageSettings}
}

// ValidKey reports whether key names a known document.
func ValidKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Image placement within a content section
const (
	ImagePositionLeft  = "left"
	ImagePositionRight = "right"
)

// Section background colors
const (
	BackgroundWhite = "white"
	BackgroundIvory = "ivory"
)

// Project statuses. Status is stored as free text; these are the values the
// admin panel offers.
const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusComingSoon = "Coming Soon"
	StatusPlanning   = "Planning"
)

// Hero is the banner block shared by the public pages.
type Hero struct {
	Enabled         bool   `json:"enabled"`
	BackgroundImage string `json:"backgroundImage"`
	Title           string `json:"title"`
	ShowSeparator   bool   `json:"showSeparator"`
}

// Introduction is the text block under the home hero.
type Introduction struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
}

// ContentSection is one image-and-text band on the home page.
type ContentSection struct {
	ID              int64  `json:"id"`
	Enabled         bool   `json:"enabled"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	ImagePosition   string `json:"imagePosition"`
	BackgroundColor string `json:"backgroundColor"`
}

// HomeDocument is the configuration for the home page.
type HomeDocument struct {
	Hero         Hero             `json:"hero"`
	Introduction Introduction     `json:"introduction"`
	Sections     []ContentSection `json:"sections"`
}

// TeamMember is one person on the team page. All four text fields are
// mandatory for a member to be persisted.
type TeamMember struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// TeamDocument is the configuration for the team page.
type TeamDocument struct {
	Hero    Hero         `json:"hero"`
	Members []TeamMember `json:"members"`
}

// Specification is a key/value row in a project's detail table.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Project is one project listing.
type Project struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Location          string          `json:"location"`
	Image             string          `json:"image"`
	Description       string          `json:"description"`
	Status            string          `json:"status"`
	Size              string          `json:"size,omitempty"`
	Link              string          `json:"link,omitempty"`
	DetailDescription string          `json:"detailDescription,omitempty"`
	CompletionDate    string          `json:"completionDate,omitempty"`
	ClientName        string          `json:"clientName,omitempty"`
	ImageGallery      []string        `json:"imageGallery,omitempty"`
	Specifications    []Specification `json:"specifications,omitempty"`
}

// ProjectsDocument is the configuration for the projects page.
type ProjectsDocument struct {
	Projects []Project `json:"projects"`
}

// CategoryFilter controls the FAQ category filter bar.
type CategoryFilter struct {
	Enabled       bool `json:"enabled"`
	ShowAllOption bool `json:"showAllOption"`
}

// FAQDisplay controls how FAQ entries are rendered.
type FAQDisplay struct {
	Enabled            bool `json:"enabled"`
	ShowCategoryBadges bool `json:"showCategoryBadges"`
}

// FAQItem is one question/answer pair. Question, answer and category are all
// mandatory.
type FAQItem struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// FAQDocument is the configuration for the FAQ page.
type FAQDocument struct {
	Hero           Hero           `json:"hero"`
	CategoryFilter CategoryFilter `json:"categoryFilter"`
	FAQs           FAQDisplay     `json:"faqs"`
	FAQItems       []FAQItem      `json:"faqItems"`
}

// CompanyInfo is the footer's company blurb.
type CompanyInfo struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
}

// FooterLink is one navigation link in the footer.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NavigationSection is the footer's link column.
type NavigationSection struct {
	Enabled bool         `json:"enabled"`
	Links   []FooterLink `json:"links"`
}

// ContactSection is the footer's contact column.
type ContactSection struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SocialPlatform is one social media entry, keyed by platform name in
// SocialSection.Platforms. Username and Value are alternatives; which one a
// platform uses is up to the frontend.
type SocialPlatform struct {
	Enabled  bool   `json:"enabled"`
	Username string `json:"username,omitempty"`
	Value    string `json:"value,omitempty"`
}

// SocialSection is the footer's social media column.
type SocialSection struct {
	Enabled   bool                      `json:"enabled"`
	Platforms map[string]SocialPlatform `json:"platforms"`
}

// FooterSections groups the independently toggleable footer blocks.
type FooterSections struct {
	CompanyInfo CompanyInfo       `json:"companyInfo"`
	Navigation  NavigationSection `json:"navigation"`
	Contact     ContactSection    `json:"contact"`
	Social      SocialSection     `json:"social"`
}

// FooterDocument is the configuration for the site footer.
type FooterDocument struct {
	Sections  FooterSections `json:"sections"`
	Copyright string         `json:"copyright"`
}

// PageSettings holds the per-page visibility flags consulted by the page gate.
type PageSettings struct {
	Home     bool `json:"home"`
	Team     bool `json:"team"`
	Projects bool `json:"projects"`
	FAQ      bool `json:"faq"`
}

// PageEnabled reports whether the named public page is enabled. The second
// return value is false for pages that have no visibility flag; such pages are
// always served.
func (s PageSettings) PageEnabled(page string) (enabled, known bool) {
	switch page {
	case KeyHome:
		return s.Home, true
	case KeyTeam:
		return s.Team, true
	case KeyProjects:
		return s.Projects, true
	case KeyFAQ:
		return s.FAQ, true
	}
	return true, false
}
