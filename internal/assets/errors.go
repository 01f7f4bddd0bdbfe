package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("unknown style")
	ErrTemplateNotFound = errors.New("unknown template")

	// ErrInvalidAssetName is returned for names that are not a bare word
	// (letters, digits, '-' and '_').
	ErrInvalidAssetName = errors.New("asset name must be a bare word")

	// ErrInvalidBasePath is returned when a custom asset directory is missing,
	// unreadable, or not a directory.
	ErrInvalidBasePath = errors.New("unusable asset directory")

	ErrAssetRead     = errors.New("reading asset")
	ErrPathTraversal = errors.New("asset escapes its directory")
)
