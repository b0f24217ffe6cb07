package content

import (
	sitecontent "github.com/Godwin-Baiju/aissol-test/internal/services/site/content"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
)

var errContentUnavailable = apperrors.E(apperrors.KindUnavailable, "site content is not configured")

type service struct {
	source module.ContentSource
}

func newService(deps module.Dependencies) service {
	return service{source: deps.Content}
}

func (s service) company() (sitecontent.Company, error) {
	if s.source == nil {
		return sitecontent.Company{}, errContentUnavailable
	}
	return s.source.Company(), nil
}

func (s service) services() ([]sitecontent.Service, error) {
	if s.source == nil {
		return nil, errContentUnavailable
	}
	return s.source.Services(), nil
}

func (s service) service(slug string) (sitecontent.Service, error) {
	if s.source == nil {
		return sitecontent.Service{}, errContentUnavailable
	}
	return s.source.Service(slug)
}

func (s service) careers() (sitecontent.Careers, error) {
	if s.source == nil {
		return sitecontent.Careers{}, errContentUnavailable
	}
	return s.source.Careers(), nil
}

func (s service) job(slug string) (sitecontent.Job, error) {
	if s.source == nil {
		return sitecontent.Job{}, errContentUnavailable
	}
	return s.source.Job(slug)
}

func (s service) gallery() ([]sitecontent.GalleryCategory, error) {
	if s.source == nil {
		return nil, errContentUnavailable
	}
	return s.source.Gallery(), nil
}

func (s service) contact() (sitecontent.Contact, error) {
	if s.source == nil {
		return sitecontent.Contact{}, errContentUnavailable
	}
	return s.source.Contact(), nil
}
