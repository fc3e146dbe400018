package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrAccessDenied     = errors.New("no access to this document")
)
