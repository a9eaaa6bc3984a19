//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/ratelimit"
	"bhavesh/backend/internal/repository"
	"bhavesh/backend/internal/urlutil"
	"bhavesh/backend/pkg/logger"
)

const (
	// enquiryNumberPrefix is the human-readable reference prefix.
	enquiryNumberPrefix = "BE"
	// maxNumberAttempts bounds regeneration after reference collisions.
	maxNumberAttempts = 3

	defaultRequirementType = "Custom Manufacturing"

	minNameLen        = 2
	minPhoneLen       = 10
	minDescriptionLen = 10
)

// EnquiryInput is a raw client submission. Attachment URLs are expected
// to be already uploaded; the pipeline links them, it does not transfer
// bytes.
type EnquiryInput struct {
	Name            string
	Phone           string
	Email           string
	Quantity        string
	Description     string
	RequirementType string
	FileNames       []string
	FileURLs        []string
}

// EnquiryService is the intake pipeline plus the admin operations over
// stored enquiries.
type EnquiryService interface {
	Submit(ctx context.Context, clientID string, input EnquiryInput, attachments []Upload) (model.Enquiry, error)
	List(ctx context.Context) ([]model.Enquiry, error)
	Get(ctx context.Context, id int64) (model.Enquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) (model.Enquiry, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (model.Enquiry, error)
	Delete(ctx context.Context, id int64) error
}

type enquiryService struct {
	enquiries repository.EnquiryRepository
	uploads   UploadService
	limiter   *ratelimit.Limiter
	formLimit ratelimit.Config
	clock     func() time.Time
}

func NewEnquiryService(enquiries repository.EnquiryRepository, uploads UploadService, limiter *ratelimit.Limiter, formLimit ratelimit.Config) EnquiryService {
	return &enquiryService{
		enquiries: enquiries,
		uploads:   uploads,
		limiter:   limiter,
		formLimit: formLimit,
		clock:     time.Now,
	}
}

// Submit runs the intake pipeline in order: form-class rate limit,
// payload validation, attachment storage, then insert with a unique
// reference number and status NEW. A throttled or invalid submission
// fails before any attachment byte reaches storage.
func (s *enquiryService) Submit(ctx context.Context, clientID string, input EnquiryInput, attachments []Upload) (model.Enquiry, error) {
	result := s.limiter.Check("enquiry:"+clientID, s.formLimit)
	if !result.Allowed {
		return model.Enquiry{}, &ThrottledError{RetryAfter: result.RetryAfter}
	}

	if err := validateEnquiry(input); err != nil {
		return model.Enquiry{}, err
	}

	fileNames := emptyIfNil(input.FileNames)
	fileURLs := emptyIfNil(input.FileURLs)
	if len(attachments) > 0 {
		stored, err := s.uploads.UploadAll(ctx, attachments)
		if err != nil {
			return model.Enquiry{}, err
		}
		for _, file := range stored {
			fileNames = append(fileNames, file.Filename)
			fileURLs = append(fileURLs, file.URL)
		}
	}

	enquiry := model.Enquiry{
		Name:            strings.TrimSpace(input.Name),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           optionalString(input.Email),
		Quantity:        optionalString(input.Quantity),
		Description:     strings.TrimSpace(input.Description),
		RequirementType: strings.TrimSpace(input.RequirementType),
		FileNames:       fileNames,
		FileURLs:        fileURLs,
		Status:          model.StatusNew,
	}
	if enquiry.RequirementType == "" {
		enquiry.RequirementType = defaultRequirementType
	}

	// The time+random reference makes collisions negligible, but the
	// unique index is the source of truth: on a clash, regenerate and
	// retry instead of counting rows.
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		enquiry.EnquiryNumber = s.newEnquiryNumber()

		created, err := s.enquiries.Create(ctx, enquiry)
		if err == nil {
			logger.Info("enquiry created",
				"ref", created.EnquiryNumber,
				"attachments", len(created.FileNames),
			)
			return created, nil
		}
		if !errors.Is(err, repository.ErrDuplicateEnquiryNumber) {
			logger.Error("enquiry insert failed", "error", err)
			return model.Enquiry{}, fmt.Errorf("%w: create enquiry", ErrStorage)
		}
		logger.Warn("enquiry number collision, regenerating", "attempt", attempt)
	}

	return model.Enquiry{}, fmt.Errorf("%w: exhausted enquiry number attempts", ErrConflict)
}

func (s *enquiryService) List(ctx context.Context) ([]model.Enquiry, error) {
	return s.enquiries.List(ctx)
}

func (s *enquiryService) Get(ctx context.Context, id int64) (model.Enquiry, error) {
	enquiry, err := s.enquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Enquiry{}, ErrNotFound
		}
		return model.Enquiry{}, fmt.Errorf("get enquiry: %w", err)
	}
	return enquiry, nil
}

// UpdateStatus transitions an enquiry to a recognized status. An
// unknown status string is a validation error, not a silent no-op.
func (s *enquiryService) UpdateStatus(ctx context.Context, id int64, status string) (model.Enquiry, error) {
	next := model.EnquiryStatus(status)
	if !next.IsValid() {
		return model.Enquiry{}, &ValidationError{Issues: []FieldIssue{
			{Field: "status", Message: fmt.Sprintf("unrecognized status %q", status)},
		}}
	}

	if err := s.enquiries.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Enquiry{}, ErrNotFound
		}
		return model.Enquiry{}, fmt.Errorf("update status: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *enquiryService) UpdateNotes(ctx context.Context, id int64, notes string) (model.Enquiry, error) {
	if err := s.enquiries.UpdateNotes(ctx, id, notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Enquiry{}, ErrNotFound
		}
		return model.Enquiry{}, fmt.Errorf("update notes: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the enquiry permanently. Deleting a missing id is a
// not-found error, never a silent success.
func (s *enquiryService) Delete(ctx context.Context, id int64) error {
	if err := s.enquiries.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete enquiry: %w", err)
	}
	return nil
}

// newEnquiryNumber builds BE-<unix millis>-<8 hex chars>. The time
// component keeps references roughly sortable; the random component
// makes same-instant submissions collide with negligible probability.
func (s *enquiryService) newEnquiryNumber() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%s-%d-%s", enquiryNumberPrefix, s.clock().UnixMilli(), hex.EncodeToString(buf))
}

func validateEnquiry(input EnquiryInput) error {
	var issues []FieldIssue

	if len(strings.TrimSpace(input.Name)) < minNameLen {
		issues = append(issues, FieldIssue{Field: "name", Message: fmt.Sprintf("name must be at least %d characters", minNameLen)})
	}
	if len(strings.TrimSpace(input.Phone)) < minPhoneLen {
		issues = append(issues, FieldIssue{Field: "phone", Message: fmt.Sprintf("phone must be at least %d digits", minPhoneLen)})
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			issues = append(issues, FieldIssue{Field: "email", Message: "email must be a valid address"})
		}
	}
	if len(strings.TrimSpace(input.Description)) < minDescriptionLen {
		issues = append(issues, FieldIssue{Field: "description", Message: fmt.Sprintf("description must be at least %d characters", minDescriptionLen)})
	}
	if len(input.FileNames) != len(input.FileURLs) {
		issues = append(issues, FieldIssue{Field: "fileUrls", Message: "fileNames and fileUrls must have the same length"})
	} else {
		for i, fileURL := range input.FileURLs {
			if !urlutil.IsHTTPURL(fileURL) {
				issues = append(issues, FieldIssue{Field: "fileUrls", Message: fmt.Sprintf("fileUrls[%d] must be an absolute http(s) URL", i)})
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
