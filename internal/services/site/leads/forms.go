package leads

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// DefaultJobTitle is used when a career application names no opening.
const DefaultJobTitle = "General Application"

// ContactForm is a general contact message.
type ContactForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Service    string `json:"service,omitempty"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
}

func (f *ContactForm) Kind() Kind { return KindContact }
func (f *ContactForm) Contact() (string, string) { return f.Name, f.Email }
func (f *ContactForm) normalize() {
	trim(&f.Name, &f.Email, &f.Phone, &f.Company, &f.Service, &f.Subject, &f.Message)
}

func (f *ContactForm) validate() fieldErrors {
	errs := fieldErrors{}
	errs.required("name", f.Name, maxNameLength)
	errs.email("email", f.Email)
	errs.optional("phone", f.Phone, maxPhoneLength)
	errs.optional("company", f.Company, maxCompanyLength)
	errs.oneOf("service", f.Service, contactServices)
	errs.required("subject", f.Subject, maxSubjectLength)
	errs.required("message", f.Message, maxMessageLength)
	return errs
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (f *ContactForm) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", f.Name)
	enc.AddString("email", f.Email)
	enc.AddString("phone", f.Phone)
	enc.AddString("company", f.Company)
	enc.AddString("service", f.Service)
	enc.AddString("subject", f.Subject)
	enc.AddString("message", f.Message)
	enc.AddBool("newsletter", f.Newsletter)
	return nil
}

// CareerApplication is a job application with an attached resume.
type CareerApplication struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	JobTitle    string  `json:"job_title"`
	CoverLetter string  `json:"cover_letter,omitempty"`
	Resume      *Resume `json:"resume"`
}

func (f *CareerApplication) Kind() Kind { return KindCareerApplication }
func (f *CareerApplication) Contact() (string, string) { return f.Name, f.Email }
func (f *CareerApplication) normalize() {
	trim(&f.Name, &f.Email, &f.Phone, &f.JobTitle, &f.CoverLetter)
	if f.JobTitle == "" {
		f.JobTitle = DefaultJobTitle
	}
}

func (f *CareerApplication) validate() fieldErrors {
	errs := fieldErrors{}
	errs.required("name", f.Name, maxNameLength)
	errs.email("email", f.Email)
	errs.required("phone", f.Phone, maxPhoneLength)
	errs.optional("job_title", f.JobTitle, maxTitleLength)
	errs.optional("cover_letter", f.CoverLetter, maxMessageLength)
	if f.Resume == nil {
		errs["resume"] = "is required"
	} else if err := f.Resume.validate(); err != nil {
		errs["resume"] = err.Error()
	}
	return errs
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Resume bytes are
// summarized, not logged.
func (f *CareerApplication) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", f.Name)
	enc.AddString("email", f.Email)
	enc.AddString("phone", f.Phone)
	enc.AddString("job_title", f.JobTitle)
	enc.AddString("cover_letter", f.CoverLetter)
	if f.Resume != nil {
		return enc.AddObject("resume", f.Resume)
	}
	return nil
}

// ProductEnquiry asks about one catalog product.
type ProductEnquiry struct {
	Product    string `json:"product"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	Urgency    string `json:"urgency,omitempty"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
}

func (f *ProductEnquiry) Kind() Kind { return KindProductEnquiry }
func (f *ProductEnquiry) Contact() (string, string) { return f.Name, f.Email }
func (f *ProductEnquiry) normalize() {
	trim(&f.Product, &f.Name, &f.Email, &f.Phone, &f.Company, &f.Quantity, &f.Urgency, &f.Message)
}

func (f *ProductEnquiry) validate() fieldErrors {
	errs := fieldErrors{}
	errs.required("product", f.Product, maxTitleLength)
	errs.required("name", f.Name, maxNameLength)
	errs.email("email", f.Email)
	errs.optional("phone", f.Phone, maxPhoneLength)
	errs.optional("company", f.Company, maxCompanyLength)
	errs.optional("quantity", f.Quantity, maxQuantityLength)
	errs.oneOf("urgency", f.Urgency, urgencyOptions)
	errs.required("message", f.Message, maxMessageLength)
	return errs
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (f *ProductEnquiry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("product", f.Product)
	enc.AddString("name", f.Name)
	enc.AddString("email", f.Email)
	enc.AddString("phone", f.Phone)
	enc.AddString("company", f.Company)
	enc.AddString("quantity", f.Quantity)
	enc.AddString("urgency", f.Urgency)
	enc.AddString("message", f.Message)
	enc.AddBool("newsletter", f.Newsletter)
	return nil
}

// ServiceEnquiry asks about one of the offered services.
type ServiceEnquiry struct {
	Service     string `json:"service"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
	Location    string `json:"location,omitempty"`
	Timeframe   string `json:"timeframe,omitempty"`
	Message     string `json:"message"`
	Newsletter  bool   `json:"newsletter"`
}

func (f *ServiceEnquiry) Kind() Kind { return KindServiceEnquiry }
func (f *ServiceEnquiry) Contact() (string, string) { return f.Name, f.Email }
func (f *ServiceEnquiry) normalize() {
	trim(&f.Service, &f.Name, &f.Email, &f.Phone, &f.Company, &f.ProjectType, &f.Location, &f.Timeframe, &f.Message)
}

func (f *ServiceEnquiry) validate() fieldErrors {
	errs := fieldErrors{}
	errs.required("service", f.Service, maxTitleLength)
	errs.required("name", f.Name, maxNameLength)
	errs.email("email", f.Email)
	errs.optional("phone", f.Phone, maxPhoneLength)
	errs.optional("company", f.Company, maxCompanyLength)
	errs.oneOf("project_type", f.ProjectType, projectTypeOptions)
	errs.optional("location", f.Location, maxLocationLength)
	errs.oneOf("timeframe", f.Timeframe, timeframeOptions)
	errs.required("message", f.Message, maxMessageLength)
	return errs
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (f *ServiceEnquiry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("service", f.Service)
	enc.AddString("name", f.Name)
	enc.AddString("email", f.Email)
	enc.AddString("phone", f.Phone)
	enc.AddString("company", f.Company)
	enc.AddString("project_type", f.ProjectType)
	enc.AddString("location", f.Location)
	enc.AddString("timeframe", f.Timeframe)
	enc.AddString("message", f.Message)
	enc.AddBool("newsletter", f.Newsletter)
	return nil
}

// EnquiryLine is one product line of a submitted enquiry list.
type EnquiryLine struct {
	Title    string   `json:"title"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (l EnquiryLine) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("title", l.Title)
	enc.AddInt("quantity", l.Quantity)
	if l.Price != nil {
		enc.AddFloat64("price", *l.Price)
	}
	return nil
}

type enquiryLines []EnquiryLine

func (lines enquiryLines) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, line := range lines {
		if err := enc.AppendObject(line); err != nil {
			return err
		}
	}
	return nil
}

// EnquiryListSubmission sends the visitor's enquiry list.
type EnquiryListSubmission struct {
	FullName string        `json:"full_name"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Company  string        `json:"company,omitempty"`
	Subject  string        `json:"subject"`
	Message  string        `json:"message"`
	Items    []EnquiryLine `json:"items"`
}

func (f *EnquiryListSubmission) Kind() Kind { return KindEnquiryList }
func (f *EnquiryListSubmission) Contact() (string, string) { return f.FullName, f.Email }
func (f *EnquiryListSubmission) normalize() {
	trim(&f.FullName, &f.Email, &f.Phone, &f.Company, &f.Subject, &f.Message)
	for i := range f.Items {
		trim(&f.Items[i].Title)
	}
}

func (f *EnquiryListSubmission) validate() fieldErrors {
	errs := fieldErrors{}
	errs.required("full_name", f.FullName, maxNameLength)
	errs.email("email", f.Email)
	errs.required("phone", f.Phone, maxPhoneLength)
	errs.optional("company", f.Company, maxCompanyLength)
	errs.required("subject", f.Subject, maxSubjectLength)
	errs.required("message", f.Message, maxMessageLength)
	switch {
	case len(f.Items) == 0:
		errs["items"] = "must contain at least one item"
	case len(f.Items) > maxEnquiryItems:
		errs["items"] = fmt.Sprintf("must contain at most %d items", maxEnquiryItems)
	}
	for i, line := range f.Items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case line.Title == "":
			errs[field] = "title is required"
		case line.Quantity < 1:
			errs[field] = "quantity must be at least 1"
		case line.Price != nil && *line.Price < 0:
			errs[field] = "price must not be negative"
		}
	}
	return errs
}

// TotalItems sums line quantities.
func (f *EnquiryListSubmission) TotalItems() int {
	total := 0
	for _, line := range f.Items {
		total += line.Quantity
	}
	return total
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (f *EnquiryListSubmission) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("full_name", f.FullName)
	enc.AddString("email", f.Email)
	enc.AddString("phone", f.Phone)
	enc.AddString("company", f.Company)
	enc.AddString("subject", f.Subject)
	enc.AddString("message", f.Message)
	enc.AddInt("total_items", f.TotalItems())
	return enc.AddArray("items", enquiryLines(f.Items))
}
