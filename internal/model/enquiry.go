package model

import "time"

// EnquiryStatus is the lifecycle state of an enquiry.
type EnquiryStatus string

const (
	StatusNew         EnquiryStatus = "NEW"
	StatusInProgress  EnquiryStatus = "IN_PROGRESS"
	StatusUnderReview EnquiryStatus = "UNDER_REVIEW"
	StatusResponded   EnquiryStatus = "RESPONDED"
	StatusCompleted   EnquiryStatus = "COMPLETED"
)

// EnquiryStatuses is the canonical set of recognized statuses. Status
// validation consults this slice rather than hardcoded switches so the
// set stays in one place.
var EnquiryStatuses = []EnquiryStatus{
	StatusNew,
	StatusInProgress,
	StatusUnderReview,
	StatusResponded,
	StatusCompleted,
}

// IsValid reports whether s is one of the recognized statuses.
func (s EnquiryStatus) IsValid() bool {
	for _, known := range EnquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Enquiry is a customer-submitted sourcing request. FileNames and
// FileURLs are parallel: index i in both refers to the same attachment,
// and the two slices always have the same length.
type Enquiry struct {
	ID              int64
	EnquiryNumber   string
	Name            string
	Phone           string
	Email           *string
	Quantity        *string
	Description     string
	RequirementType string
	FileNames       []string
	FileURLs        []string
	InternalNotes   *string
	Status          EnquiryStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
