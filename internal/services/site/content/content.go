// Package content serves the static informational pages of the site: the
// company profile, services, careers, gallery and contact details.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

var (
	// ErrServiceNotFound reports an unknown service slug.
	ErrServiceNotFound = apperrors.E(apperrors.KindNotFound, "service not found")
	// ErrJobNotFound reports an unknown job slug.
	ErrJobNotFound = apperrors.E(apperrors.KindNotFound, "job not found")
)

// Certification is one industry certification shown on the about page.
type Certification struct {
	Name string `yaml:"name" json:"name"`
	Logo string `yaml:"logo" json:"logo"`
}

// Project is one completed reference project.
type Project struct {
	ID          int      `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Location    string   `yaml:"location" json:"location"`
	Year        string   `yaml:"year" json:"year"`
	Description string   `yaml:"description" json:"description"`
	Services    []string `yaml:"services" json:"services"`
	Images      []string `yaml:"images" json:"images"`
}

// Company is the about-page profile.
type Company struct {
	Name           string          `yaml:"name" json:"name"`
	LegalName      string          `yaml:"legal_name" json:"legal_name"`
	Founded        int             `yaml:"founded" json:"founded"`
	HeadOffice     string          `yaml:"head_office" json:"head_office"`
	Offices        []string        `yaml:"offices" json:"offices"`
	Summary        string          `yaml:"summary" json:"summary"`
	Commitment     string          `yaml:"commitment" json:"commitment"`
	Sectors        []string        `yaml:"sectors" json:"sectors"`
	Mission        string          `yaml:"mission" json:"mission"`
	Vision         string          `yaml:"vision" json:"vision"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	Projects       []Project       `yaml:"projects" json:"projects"`
}

// Service is one offered service.
type Service struct {
	Slug            string   `yaml:"slug" json:"slug"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	FullDescription string   `yaml:"full_description" json:"full_description"`
	Features        []string `yaml:"features" json:"features"`
	Benefits        []string `yaml:"benefits" json:"benefits"`
	Image           string   `yaml:"image" json:"image"`
	RelatedProducts []string `yaml:"related_products" json:"related_products"`
}

// Job is one job opening.
type Job struct {
	Slug             string   `yaml:"slug" json:"slug"`
	Listed           bool     `yaml:"listed" json:"-"`
	Title            string   `yaml:"title" json:"title"`
	Location         string   `yaml:"location" json:"location"`
	Type             string   `yaml:"type" json:"type"`
	Department       string   `yaml:"department" json:"department"`
	Experience       string   `yaml:"experience" json:"experience"`
	Education        string   `yaml:"education" json:"education"`
	Description      string   `yaml:"description" json:"description"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
	Qualifications   []string `yaml:"qualifications" json:"qualifications"`
	Benefits         []string `yaml:"benefits" json:"benefits"`
}

// Benefit is one reason to work for the company.
type Benefit struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Careers is the careers page: listed openings plus workplace benefits.
type Careers struct {
	Jobs     []Job     `json:"jobs"`
	Benefits []Benefit `json:"benefits"`
}

// GalleryImage is one gallery picture.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// GalleryCategory is one gallery tab.
type GalleryCategory struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Images []GalleryImage `json:"images"`
}

// Office is one branch office.
type Office struct {
	Name    string   `yaml:"name" json:"name"`
	Address []string `yaml:"address" json:"address,omitempty"`
	Phone   string   `yaml:"phone" json:"phone"`
	Email   string   `yaml:"email" json:"email"`
	MapURL  string   `yaml:"map_url" json:"map_url,omitempty"`
}

// DirectoryEntry is one department contact.
type DirectoryEntry struct {
	Department string `yaml:"department" json:"department"`
	Phone      string `yaml:"phone" json:"phone"`
	Email      string `yaml:"email" json:"email"`
}

// Contact is the contact page.
type Contact struct {
	Hours      string           `yaml:"hours" json:"hours"`
	HeadOffice Office           `yaml:"head_office" json:"head_office"`
	Offices    []Office         `yaml:"offices" json:"offices"`
	Directory  []DirectoryEntry `yaml:"directory" json:"directory"`
}

type galleryDoc struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	ImageText string `yaml:"image_text"`
	Alt       string `yaml:"alt"`
	Count     int    `yaml:"count"`
}

type document struct {
	Company  Company   `yaml:"company"`
	Services []Service `yaml:"services"`
	Careers  struct {
		Benefits []Benefit `yaml:"benefits"`
		Jobs     []Job     `yaml:"jobs"`
	} `yaml:"careers"`
	Gallery []galleryDoc `yaml:"gallery"`
	Contact Contact      `yaml:"contact"`
}

// Site is the loaded informational content. It is read-only after Load.
type Site struct {
	company  Company
	services []Service
	jobs     []Job
	benefits []Benefit
	gallery  []GalleryCategory
	contact  Contact
}

// Default loads the embedded site content.
func Default() (*Site, error) {
	return Load(siteYAML)
}

// Load parses and validates a site content document. Unknown keys are
// rejected.
func Load(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("validate site content: %w", err)
	}
	return &Site{
		company:  doc.Company,
		services: doc.Services,
		jobs:     doc.Careers.Jobs,
		benefits: doc.Careers.Benefits,
		gallery:  expandGallery(doc.Gallery),
		contact:  doc.Contact,
	}, nil
}

func (d document) validate() error {
	var errs []error
	if strings.TrimSpace(d.Company.Name) == "" {
		errs = append(errs, errors.New("company name is required"))
	}
	seen := map[string]bool{}
	for i, svc := range d.Services {
		switch {
		case svc.Slug == "" || svc.Title == "":
			errs = append(errs, fmt.Errorf("service %d: slug and title are required", i))
		case seen[svc.Slug]:
			errs = append(errs, fmt.Errorf("service %q: duplicate slug", svc.Slug))
		}
		seen[svc.Slug] = true
	}
	seen = map[string]bool{}
	for i, job := range d.Careers.Jobs {
		switch {
		case job.Slug == "" || job.Title == "":
			errs = append(errs, fmt.Errorf("job %d: slug and title are required", i))
		case seen[job.Slug]:
			errs = append(errs, fmt.Errorf("job %q: duplicate slug", job.Slug))
		}
		seen[job.Slug] = true
	}
	for _, category := range d.Gallery {
		if category.ID == "" || category.Count < 0 {
			errs = append(errs, fmt.Errorf("gallery category %q: id and non-negative count are required", category.ID))
		}
	}
	return errors.Join(errs...)
}

func expandGallery(docs []galleryDoc) []GalleryCategory {
	categories := make([]GalleryCategory, 0, len(docs))
	for _, doc := range docs {
		category := GalleryCategory{
			ID:     doc.ID,
			Title:  doc.Title,
			Images: make([]GalleryImage, 0, doc.Count),
		}
		for n := 1; n <= doc.Count; n++ {
			query := url.Values{}
			query.Set("height", "400")
			query.Set("width", "600")
			query.Set("text", fmt.Sprintf("%s %d", doc.ImageText, n))
			category.Images = append(category.Images, GalleryImage{
				Src: "/placeholder.svg?" + query.Encode(),
				Alt: fmt.Sprintf("%s %d", doc.Alt, n),
			})
		}
		categories = append(categories, category)
	}
	return categories
}

// Company returns the about-page profile.
func (s *Site) Company() Company {
	return s.company
}

// Services returns every service in display order.
func (s *Site) Services() []Service {
	return slices.Clone(s.services)
}

// Service returns one service by slug.
func (s *Site) Service(slug string) (Service, error) {
	idx := slices.IndexFunc(s.services, func(svc Service) bool { return svc.Slug == slug })
	if idx < 0 {
		return Service{}, ErrServiceNotFound
	}
	return s.services[idx], nil
}

// Jobs returns the listed job openings.
func (s *Site) Jobs() []Job {
	jobs := make([]Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if job.Listed {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// Job returns one opening by slug, including unlisted ones such as the
// general application.
func (s *Site) Job(slug string) (Job, error) {
	idx := slices.IndexFunc(s.jobs, func(job Job) bool { return job.Slug == slug })
	if idx < 0 {
		return Job{}, ErrJobNotFound
	}
	return s.jobs[idx], nil
}

// Careers returns the careers page.
func (s *Site) Careers() Careers {
	return Careers{Jobs: s.Jobs(), Benefits: slices.Clone(s.benefits)}
}

// Gallery returns the gallery tabs.
func (s *Site) Gallery() []GalleryCategory {
	return slices.Clone(s.gallery)
}

// Contact returns the contact page.
func (s *Site) Contact() Contact {
	return s.contact
}
