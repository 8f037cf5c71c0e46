package service

import "errors"

var (
	ErrValidationNoFullName = errors.New("full name is required")
	ErrValidationBadStatus  = errors.New("unknown client status")
	ErrValidationEmptyNote  = errors.New("note body is required")
	ErrUnknownContactKind   = errors.New("unknown contact action kind")

	ErrValidationNoSubject     = errors.New("event subject is required")
	ErrValidationNoStart       = errors.New("event start is required")
	ErrValidationNoEnd         = errors.New("event end is required")
	ErrValidationEndNotAfter   = errors.New("event end must be after start")
	ErrValidationBadAttendee   = errors.New("attendee is not a valid email address")
	ErrValidationBadPeriod     = errors.New("unknown revenue period")
	ErrValidationNoRecipients  = errors.New("no clients selected")
	ErrNoRecipientsWithEmail   = errors.New("none of the selected clients has an email address")
	ErrMassEmailDispatchFailed = errors.New("mass email dispatch failed")
)
