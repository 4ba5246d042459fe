package content

// Built-in default documents, used whenever a key has never been written to
// the store. The public pages render these until an editor saves for the first
// time; editors seed their draft from them on a not-found fetch.

// DefaultHome returns the seed home page configuration.
func DefaultHome() HomeDocument {
	return HomeDocument{
		Hero: Hero{
			Enabled:       true,
			Title:         "Building spaces worth living in",
			ShowSeparator: true,
		},
		Introduction: Introduction{
			Enabled: true,
			Text:    "Kulana is a development company focused on residential and mixed-use projects built to last.",
		},
		Sections: []ContentSection{},
	}
}

// DefaultTeam returns the seed team page configuration: hero defaults and an
// empty members list.
func DefaultTeam() TeamDocument {
	return TeamDocument{
		Hero: Hero{
			Enabled:       true,
			Title:         "Our Team",
			ShowSeparator: true,
		},
		Members: []TeamMember{},
	}
}

// DefaultProjects returns the seed projects page configuration.
func DefaultProjects() ProjectsDocument {
	return ProjectsDocument{Projects: []Project{}}
}

// DefaultFAQ returns the seed FAQ page configuration.
func DefaultFAQ() FAQDocument {
	return FAQDocument{
		Hero: Hero{
			Enabled:       true,
			Title:         "Frequently Asked Questions",
			ShowSeparator: true,
		},
		CategoryFilter: CategoryFilter{Enabled: true, ShowAllOption: true},
		FAQs:           FAQDisplay{Enabled: true, ShowCategoryBadges: true},
		FAQItems:       []FAQItem{},
	}
}

// DefaultFooter returns the seed footer configuration.
func DefaultFooter() FooterDocument {
	return FooterDocument{
		Sections: FooterSections{
			CompanyInfo: CompanyInfo{Enabled: true, Name: "Kulana"},
			Navigation:  NavigationSection{Enabled: true, Links: []FooterLink{}},
			Contact:     ContactSection{Enabled: true},
			Social: SocialSection{
				Enabled:   false,
				Platforms: map[string]SocialPlatform{},
			},
		},
		Copyright: "© Kulana. All rights reserved.",
	}
}

// DefaultPageSettings returns the seed visibility flags. Every page starts
// enabled; the gate additionally fails open when the store is unreachable.
func DefaultPageSettings() PageSettings {
	return PageSettings{Home: true, Team: true, Projects: true, FAQ: true}
}

// Default returns the built-in document for key, or ok=false for unknown keys.
func Default(key string) (doc interface{}, ok bool) {
	switch key {
	case KeyHome:
		return DefaultHome(), true
	case KeyTeam:
		return DefaultTeam(), true
	case KeyProjects:
		return DefaultProjects(), true
	case KeyFAQ:
		return DefaultFAQ(), true
	case KeyFooter:
		return DefaultFooter(), true
	case KeyPageSettings:
		return DefaultPageSettings(), true
	}
	return nil, false
}
