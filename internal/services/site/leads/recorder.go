package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Godwin-Baiju/aissol-test/internal/platform/id"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"go.uber.org/zap"
)

var errRecordFailed = apperrors.E(apperrors.KindUnavailable, "could not record submission, please try again")

// Recorder validates, logs and persists submissions.
type Recorder struct {
	store  storage.LeadStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() (string, error)
}

// NewRecorder builds a recorder. A nil store records to the log only.
func NewRecorder(store storage.LeadStore, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		store:  store,
		logger: logger.Named("leads"),
		now:    time.Now,
		newID:  id.NewID,
	}
}

// Record normalizes and validates form, then logs and persists it.
func (r *Recorder) Record(ctx context.Context, form Form) (Lead, error) {
	if err := ctx.Err(); err != nil {
		return Lead{}, err
	}
	if form == nil {
		return Lead{}, apperrors.E(apperrors.KindInvalidInput, "submission is required")
	}
	form.normalize()
	if err := form.validate().err(); err != nil {
		return Lead{}, err
	}

	leadID, err := r.newID()
	if err != nil {
		return Lead{}, fmt.Errorf("record lead: %w", err)
	}
	lead := Lead{
		ID:        leadID,
		Kind:      form.Kind(),
		CreatedAt: r.now().UTC(),
		Form:      form,
	}
	r.logger.Info("lead submitted", zap.Object("lead", lead))

	if r.store == nil {
		return lead, nil
	}
	record, err := lead.Record()
	if err != nil {
		return Lead{}, fmt.Errorf("record lead: %w", err)
	}
	if err := r.store.CreateLead(ctx, record); err != nil {
		r.logger.Error("persist lead failed", zap.String("lead_id", lead.ID), zap.Error(err))
		return Lead{}, errors.Join(errRecordFailed, err)
	}
	return lead, nil
}
