package users_models

// AttachmentType distinguishes externally hosted files from assets
// stored under a managed resource.
type AttachmentType string

const (
	AttachmentTypeURL   AttachmentType = "url"
	AttachmentTypeAsset AttachmentType = "asset"
)

// Attachment is a reference to a stored file, kept as a jsonb blob on
// the owning row rather than a table of its own.
type Attachment struct {
	Asset       string         `json:"asset"`
	ContentType string         `json:"contentType"`
	Original    string         `json:"original"`
	Resource    string         `json:"resource,omitempty"`
	Type        AttachmentType `json:"type"`
}
