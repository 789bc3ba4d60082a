package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimePDF         = "application/pdf"
	MimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeOctetStream = "application/octet-stream"
)

// AllPeriods is the period label used when no cycle filter is applied.
const AllPeriods = "all cycles"

var AllowedEvidenceExtensions = []string{".pdf", ".png", ".jpg", ".jpeg", ".doc", ".docx"}
