package domain

// FileUpload is a generic multipart upload payload (documents, company logo)
type FileUpload struct {
	Field       string // form field name, e.g. "file" or "logo"
	Filename    string
	ContentType string
	Data        []byte
	Extra       map[string]string // additional form fields
}

// FileDownload is a raw download result. The filename comes from the
// Content-Disposition header when the server provides one.
type FileDownload struct {
	Filename    string
	ContentType string
	Data        []byte
}
