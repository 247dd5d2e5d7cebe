// Package content holds the fixed portfolio content rendered by the site:
// owner metadata, navigation, the tech stack catalog, expertise areas and
// social links.
package content

import "strings"

// SiteConfig describes the site owner.
type SiteConfig struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Email       string `json:"email" yaml:"email"`
	GitHub      string `json:"github" yaml:"github"`
	LinkedIn    string `json:"linkedin" yaml:"linkedin"`
	Twitter     string `json:"twitter" yaml:"twitter"`
	Domain      string `json:"domain" yaml:"domain"`

	// FormEndpoint receives contact form POSTs. Empty means the page falls
	// back to opening the visitor's email client.
	FormEndpoint string `json:"formEndpoint,omitempty" yaml:"formEndpoint,omitempty"`
}

// HasFormEndpoint reports whether a contact form endpoint is configured.
func (s SiteConfig) HasFormEndpoint() bool {
	return strings.TrimSpace(s.FormEndpoint) != ""
}

// ContactAction returns the form endpoint, or a mailto: link to Email when
// no endpoint is set.
func (s SiteConfig) ContactAction() string {
	if s.HasFormEndpoint() {
		return strings.TrimSpace(s.FormEndpoint)
	}
	return "mailto:" + s.Email
}

type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Technology is a single badge in the tech stack section. Color is a
// gradient class pair such as "from-orange-500 to-red-500".
type Technology struct {
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

type TechCategory struct {
	Key          string       `json:"key" yaml:"key"`
	Name         string       `json:"name" yaml:"name"`
	Technologies []Technology `json:"technologies" yaml:"technologies"`
}

type ExpertiseArea struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Icon         string   `json:"icon" yaml:"icon"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// SocialLink is a profile badge. Icon is SVG path data for a 24x24 viewBox.
type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon" yaml:"icon"`
}

// Snapshot bundles every record for a single page render.
type Snapshot struct {
	Site           SiteConfig      `json:"site" yaml:"site"`
	Navigation     []NavItem       `json:"navigation" yaml:"navigation"`
	TechCategories []TechCategory  `json:"techCategories" yaml:"techCategories"`
	ExpertiseAreas []ExpertiseArea `json:"expertiseAreas" yaml:"expertiseAreas"`
	SocialLinks    []SocialLink    `json:"socialLinks" yaml:"socialLinks"`
}

// Site returns the owner metadata.
func Site() SiteConfig {
	return site
}

// Navigation returns the header entries in display order.
func Navigation() []NavItem {
	out := make([]NavItem, len(navigation))
	copy(out, navigation)
	return out
}

// TechCategories returns the catalog in authoring order.
func TechCategories() []TechCategory {
	out := make([]TechCategory, len(techCategories))
	for i, c := range techCategories {
		out[i] = c.clone()
	}
	return out
}

// LookupTechCategory finds a category by key ("frontend", "backend", ...).
func LookupTechCategory(key string) (TechCategory, bool) {
	for _, c := range techCategories {
		if c.Key == key {
			return c.clone(), true
		}
	}
	return TechCategory{}, false
}

// TechCategoryMap returns the catalog keyed by category key.
func TechCategoryMap() map[string]TechCategory {
	out := make(map[string]TechCategory, len(techCategories))
	for _, c := range techCategories {
		out[c.Key] = c.clone()
	}
	return out
}

func ExpertiseAreas() []ExpertiseArea {
	out := make([]ExpertiseArea, len(expertiseAreas))
	for i, a := range expertiseAreas {
		a.Technologies = append([]string(nil), a.Technologies...)
		out[i] = a
	}
	return out
}

// SocialLinks returns the profile badges. URLs come from Site so the two
// never disagree.
func SocialLinks() []SocialLink {
	return []SocialLink{
		{Name: "GitHub", URL: site.GitHub, Icon: githubIcon},
		{Name: "LinkedIn", URL: site.LinkedIn, Icon: linkedInIcon},
		{Name: "Twitter", URL: site.Twitter, Icon: twitterIcon},
	}
}

// Load returns a copy of all content.
func Load() Snapshot {
	return Snapshot{
		Site:           Site(),
		Navigation:     Navigation(),
		TechCategories: TechCategories(),
		ExpertiseAreas: ExpertiseAreas(),
		SocialLinks:    SocialLinks(),
	}
}

func (c TechCategory) clone() TechCategory {
	c.Technologies = append([]Technology(nil), c.Technologies...)
	return c
}
