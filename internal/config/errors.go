package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCollaboratorConfigs indicates that one of the configured
	// collaborator URLs cannot be parsed as an absolute URL.
	ErrInvalidCollaboratorConfigs = errors.New("invalid collaborator configuration")
)
