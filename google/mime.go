package google

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// MimeMessage describes an outgoing mail message before encoding. BodyHTML
// is optional; when set the message is sent as multipart/alternative with
// the plain text part first.
type MimeMessage struct {
	To         []string
	Cc         []string
	Bcc        []string
	From       string
	Subject    string
	BodyText   string
	BodyHTML   string
	InReplyTo  string
	References string
}

// EncodeRaw renders the message as RFC 2822 text and returns the base64url
// raw form the Gmail API expects.
func (m MimeMessage) EncodeRaw() (string, error) {
	var buf bytes.Buffer

	writeHeader := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&buf, "%s: %s\r\n", name, value)
		}
	}

	writeHeader("To", strings.Join(m.To, ", "))
	writeHeader("Cc", strings.Join(m.Cc, ", "))
	writeHeader("Bcc", strings.Join(m.Bcc, ", "))
	writeHeader("From", m.From)
	writeHeader("Subject", m.Subject)
	writeHeader("In-Reply-To", m.InReplyTo)
	writeHeader("References", m.References)
	writeHeader("MIME-Version", "1.0")

	if m.BodyHTML == "" {
		writeHeader("Content-Type", `text/plain; charset="UTF-8"`)
		buf.WriteString("\r\n")
		buf.WriteString(m.BodyText)
		return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
	}

	var body bytes.Buffer
	alt := multipart.NewWriter(&body)

	plain, err := alt.CreatePart(textproto.MIMEHeader{"Content-Type": {`text/plain; charset="UTF-8"`}})
	if err != nil {
		return "", fmt.Errorf("building plain text part: %w", err)
	}
	if _, err := plain.Write([]byte(m.BodyText)); err != nil {
		return "", fmt.Errorf("writing plain text part: %w", err)
	}

	html, err := alt.CreatePart(textproto.MIMEHeader{"Content-Type": {`text/html; charset="UTF-8"`}})
	if err != nil {
		return "", fmt.Errorf("building html part: %w", err)
	}
	if _, err := html.Write([]byte(m.BodyHTML)); err != nil {
		return "", fmt.Errorf("writing html part: %w", err)
	}

	if err := alt.Close(); err != nil {
		return "", fmt.Errorf("closing multipart body: %w", err)
	}

	writeHeader("Content-Type", fmt.Sprintf(`multipart/alternative; boundary="%s"`, alt.Boundary()))
	buf.WriteString("\r\n")
	buf.Write(body.Bytes())

	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

// HeaderMap flattens a message payload's headers into a map keyed by
// lowercased header name.
func HeaderMap(payload *gmail.MessagePart) map[string]string {
	out := map[string]string{}
	if payload == nil {
		return out
	}
	for _, h := range payload.Headers {
		if h.Name != "" {
			out[strings.ToLower(h.Name)] = h.Value
		}
	}
	return out
}

// NewReply builds the reply to a fetched original message: recipient from
// Reply-To falling back to From, subject prefixed with "Re:" unless already
// a reply, and In-Reply-To/References chained for proper threading.
func NewReply(original *gmail.Message, bodyText string) MimeMessage {
	headers := HeaderMap(originalPayload(original))

	recipient := headers["reply-to"]
	if recipient == "" {
		recipient = headers["from"]
	}

	subject := headers["subject"]
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = strings.TrimSpace("Re: " + subject)
	}

	inReplyTo := headers["message-id"]
	references := headers["references"]
	switch {
	case references != "" && inReplyTo != "":
		references = references + " " + inReplyTo
	case inReplyTo != "":
		references = inReplyTo
	}

	return MimeMessage{
		To:         []string{recipient},
		Subject:    subject,
		BodyText:   bodyText,
		InReplyTo:  inReplyTo,
		References: references,
	}
}

func originalPayload(msg *gmail.Message) *gmail.MessagePart {
	if msg == nil {
		return nil
	}
	return msg.Payload
}
