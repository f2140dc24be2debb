package profile

// The document is supplied externally and read once per render pass. Every
// field is optional: the zero value means the field was absent and the
// corresponding page section is left unrendered. Absent and empty are
// deliberately equivalent: an empty string or empty slice suppresses the
// same output a missing key does.

// Document is the single profile document driving all rendering.
type Document struct {
	Profile        Person          `json:"profile"`
	Bio            Bio             `json:"bio"`
	Navigation     []NavLink       `json:"navigation"`
	Contact        Contact         `json:"contact"`
	Publications   []Publication   `json:"publications"`
	Projects       []Project       `json:"projects"`
	Skills         SkillSet        `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Education      []Education     `json:"education"`
	SiteConfig     SiteConfig      `json:"siteConfig"`
}

// Person carries the identity fields shown in the page header and banner.
type Person struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	ProfileImage string   `json:"profileImage"`
	CVPath       string   `json:"cvPath"`
	Metrics      []string `json:"metrics"`
}

// Bio holds the three rich-text fields. The values are raw HTML and are
// injected without escaping; the data source owns that trust boundary.
type Bio struct {
	Introduction  string `json:"introduction"`
	Background    string `json:"background"`
	ResearchFocus string `json:"researchFocus"`
}

// NavLink describes one primary navigation entry, in document order.
type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Contact lists the optional contact URLs appended after the primary
// navigation, in the fixed order email, LinkedIn, GitHub, Google Scholar.
type Contact struct {
	Email         string `json:"email"`
	LinkedIn      string `json:"linkedin"`
	GitHub        string `json:"github"`
	GoogleScholar string `json:"googleScholar"`
}

// Publication describes one publication card.
type Publication struct {
	Title       string           `json:"title"`
	Authors     string           `json:"authors"`
	Venue       string           `json:"venue"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Links       PublicationLinks `json:"links"`
}

// PublicationLinks holds the optional publication actions. Paper takes
// precedence over Status when both are present.
type PublicationLinks struct {
	Paper  string `json:"paper"`
	Status string `json:"status"`
	GitHub string `json:"github"`
}

// Project describes one project card.
type Project struct {
	Title            string   `json:"title"`
	Year             string   `json:"year"`
	ShortDescription string   `json:"shortDescription"`
	Metrics          []Metric `json:"metrics"`
	TechStack        []string `json:"techStack"`
}

// Metric is a value/label pair rendered in metric strips and project cards.
type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SkillSet groups skills under the five fixed category keys. Categories render
// in declaration order; an absent or empty category produces no output block.
type SkillSet struct {
	Salesforce   []string `json:"salesforce"`
	Integration  []string `json:"integration"`
	Analytics    []string `json:"analytics"`
	Productivity []string `json:"productivity"`
	Professional []string `json:"professional"`
}

// Certification describes one certification row.
type Certification struct {
	Name         string `json:"name"`
	CredentialID string `json:"credentialId"`
	Date         string `json:"date"`
}

// Education describes one education row.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
}

// SiteConfig carries presentation settings that ride along with the document.
type SiteConfig struct {
	ThemeColors map[string]string `json:"themeColors"`
}
