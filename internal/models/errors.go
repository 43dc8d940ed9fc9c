package models

import "errors"

var (
	ErrReportNotFound     = errors.New("models: report not found")
	ErrInvalidClient      = errors.New("models: invalid client credentials")
	ErrInvalidToken       = errors.New("models: invalid or malformed token")
	ErrIssuanceClosed     = errors.New("models: token issuance window has closed")
	ErrIncompleteIdentity = errors.New("models: token is missing required identity claims")
	ErrValidation         = errors.New("models: validation failed")
)
