package modules

import (
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules/catalog"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules/content"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules/download"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules/enquiry"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules/leads"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules/public"
)

// DefaultModules returns the site's stable modules in mount order.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		content.New(),
		catalog.New(),
		enquiry.New(),
		leads.New(),
		download.New(),
	}
}
