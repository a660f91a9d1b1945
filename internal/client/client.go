package client

// MailMessage is a message handed to the host mail client. Nothing is
// transmitted by this service.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// MailComposer turns a message into a link the host mail client can open.
type MailComposer interface {
	ComposeLink(msg MailMessage) (string, error)
}
