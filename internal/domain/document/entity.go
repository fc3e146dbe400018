package document

import "time"

// Document metadata; the file itself lives in FileStorage at FilePath.
// UserID nil means a company-wide document visible to every employee.
type Document struct {
	ID          string
	UserID      *string
	FileName    string
	FilePath    string
	ContentType string
	SizeBytes   int64
	UploadedBy  string

	CreatedAt time.Time
}
