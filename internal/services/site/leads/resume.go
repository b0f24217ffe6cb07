package leads

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap/zapcore"
)

// MaxResumeBytes caps an uploaded resume.
const MaxResumeBytes = 5 << 20

var resumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

// Resume is an uploaded resume file.
type Resume struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"data,omitempty"`
}

// NewResume sniffs data and builds a resume. The declared client content type
// is ignored.
func NewResume(filename string, data []byte) *Resume {
	return &Resume{
		Filename:    filepath.Base(strings.TrimSpace(filename)),
		ContentType: mimetype.Detect(data).String(),
		Size:        int64(len(data)),
		Data:        data,
	}
}

func (r *Resume) validate() error {
	switch {
	case r.Size == 0 || len(r.Data) == 0:
		return errors.New("file is empty")
	case r.Size > MaxResumeBytes || len(r.Data) > MaxResumeBytes:
		return fmt.Errorf("file must be at most %d MB", MaxResumeBytes>>20)
	}
	detected := mimetype.Detect(r.Data)
	if mimetype.EqualsAny(detected.String(), resumeTypes...) {
		return nil
	}
	return fmt.Errorf("unsupported file type %s; upload a PDF, DOC, DOCX or text file", detected.String())
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r *Resume) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("filename", r.Filename)
	enc.AddString("content_type", r.ContentType)
	enc.AddInt64("size", r.Size)
	return nil
}
