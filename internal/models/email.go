package models

// SendEmailRequest is the body of POST /send-email.
type SendEmailRequest struct {
	EmailData EmailData `json:"emailData"`
}

type EmailData struct {
	// Input is the recipient address typed into the quiz form.
	Input string `json:"input" validate:"required"`
	// AnimalResultFile names an image under the assets directory.
	AnimalResultFile string `json:"animalResultFile,omitempty"`
}

// Attachment is a file read from disk, ready to hand to the mail provider.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}
