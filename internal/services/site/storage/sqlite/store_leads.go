package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
)

// CreateLead inserts one lead record.
func (s *Store) CreateLead(ctx context.Context, record storage.LeadRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return fmt.Errorf("lead id is required")
	}
	record.Kind = strings.TrimSpace(record.Kind)
	if record.Kind == "" {
		return fmt.Errorf("lead kind is required")
	}
	if len(record.PayloadBytes) == 0 {
		return fmt.Errorf("lead payload is required")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO leads (id, kind, name, email, payload_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Kind,
		strings.TrimSpace(record.Name),
		strings.TrimSpace(record.Email),
		record.PayloadBytes,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// GetLead loads one lead by id.
func (s *Store) GetLead(ctx context.Context, leadID string) (storage.LeadRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.LeadRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.LeadRecord{}, fmt.Errorf("storage is not configured")
	}
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return storage.LeadRecord{}, fmt.Errorf("lead id is required")
	}

	var record storage.LeadRecord
	var seq, createdAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT seq, id, kind, name, email, payload_json, created_at FROM leads WHERE id = ?`,
		leadID,
	).Scan(&seq, &record.ID, &record.Kind, &record.Name, &record.Email, &record.PayloadBytes, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.LeadRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.LeadRecord{}, fmt.Errorf("get lead: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// ListLeads returns one page of leads, newest first.
//
// The page token is the insertion sequence of the last lead on the previous page.
func (s *Store) ListLeads(ctx context.Context, kind string, pageSize int, pageToken string) (storage.LeadPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.LeadPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.LeadPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.LeadPage{}, fmt.Errorf("page size must be greater than zero")
	}
	kind = strings.TrimSpace(kind)
	var before int64
	if pageToken = strings.TrimSpace(pageToken); pageToken != "" {
		parsed, err := strconv.ParseInt(pageToken, 10, 64)
		if err != nil || parsed <= 0 {
			return storage.LeadPage{}, fmt.Errorf("invalid page token %q", pageToken)
		}
		before = parsed
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT seq, id, kind, name, email, payload_json, created_at
		   FROM leads
		  WHERE (? = '' OR kind = ?)
		    AND (? = 0 OR seq < ?)
		  ORDER BY seq DESC
		  LIMIT ?`,
		kind, kind,
		before, before,
		pageSize+1,
	)
	if err != nil {
		return storage.LeadPage{}, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	page := storage.LeadPage{Leads: make([]storage.LeadRecord, 0, pageSize)}
	seqs := make([]int64, 0, pageSize+1)
	for rows.Next() {
		var record storage.LeadRecord
		var seq, createdAt int64
		if err := rows.Scan(&seq, &record.ID, &record.Kind, &record.Name, &record.Email, &record.PayloadBytes, &createdAt); err != nil {
			return storage.LeadPage{}, fmt.Errorf("list leads: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		page.Leads = append(page.Leads, record)
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return storage.LeadPage{}, fmt.Errorf("list leads: %w", err)
	}
	if len(page.Leads) > pageSize {
		page.NextPageToken = strconv.FormatInt(seqs[pageSize-1], 10)
		page.Leads = page.Leads[:pageSize]
	}
	return page, nil
}
