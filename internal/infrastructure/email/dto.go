package email

// EmailRequest is a plain text message
type EmailRequest struct {
	To      []string
	Subject string
	Body    string
}
