package graph

import (
	"github.com/justtrackio/graphmail/pkg/encoding/base64"
	"github.com/justtrackio/graphmail/pkg/mdl"
)

const (
	ContentTypeHtml = "html"
	ContentTypeText = "text"

	ImportanceNormal = "Normal"

	odataTypeFileAttachment = "#microsoft.graph.fileAttachment"
)

// Payload is the message portion of a sendMail request. Optional fields carry
// omitempty so empty values are uniformly dropped from the wire format instead
// of being sent as null or empty.
type Payload struct {
	Subject       string           `json:"subject,omitempty"`
	Sender        *Recipient       `json:"sender,omitempty"`
	From          *Recipient       `json:"from,omitempty"`
	ReplyTo       []Recipient      `json:"replyTo,omitempty"`
	ToRecipients  []Recipient      `json:"toRecipients,omitempty"`
	CcRecipients  []Recipient      `json:"ccRecipients,omitempty"`
	BccRecipients []Recipient      `json:"bccRecipients,omitempty"`
	Importance    string           `json:"importance,omitempty"`
	Body          *Body            `json:"body,omitempty"`
	Attachments   []FileAttachment `json:"attachments,omitempty"`
}

type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

type EmailAddress struct {
	Name    *string `json:"name,omitempty"`
	Address string  `json:"address"`
}

type Body struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type FileAttachment struct {
	ODataType    string  `json:"@odata.type"`
	Name         string  `json:"name,omitempty"`
	ContentId    *string `json:"contentId,omitempty"`
	ContentType  string  `json:"contentType,omitempty"`
	ContentBytes string  `json:"contentBytes"`
	Size         int     `json:"size"`
	IsInline     bool    `json:"isInline"`
}

// BuildPayload transforms a message into the wire format of the sendMail
// endpoint. It is pure and performs no I/O. A message without a usable from
// address yields a payload without sender and from, the sender guards against
// that case before dispatching.
func BuildPayload(message *Message) *Payload {
	payload := &Payload{
		Subject:       message.Subject,
		ReplyTo:       mapRecipients(message.ReplyTo),
		ToRecipients:  mapRecipients(message.To),
		CcRecipients:  mapRecipients(message.Cc),
		BccRecipients: mapRecipients(message.Bcc),
		Importance:    ImportanceNormal,
		Body:          mapBody(message),
		Attachments:   mapAttachments(message.Attachments),
	}

	if len(message.From) > 0 && message.From[0].Address != "" {
		sender := mapRecipient(message.From[0])
		from := sender

		payload.Sender = &sender
		payload.From = &from
	}

	return payload
}

func mapRecipients(addresses []Address) []Recipient {
	var recipients []Recipient

	for _, address := range addresses {
		if address.Address == "" {
			continue
		}

		recipients = append(recipients, mapRecipient(address))
	}

	return recipients
}

func mapRecipient(address Address) Recipient {
	return Recipient{
		EmailAddress: EmailAddress{
			Name:    mdl.NilIfEmpty(address.Name),
			Address: address.Address,
		},
	}
}

func mapBody(message *Message) *Body {
	if message.HtmlBody != "" {
		return &Body{
			ContentType: ContentTypeHtml,
			Content:     message.HtmlBody,
		}
	}

	if message.TextBody != "" {
		return &Body{
			ContentType: ContentTypeText,
			Content:     message.TextBody,
		}
	}

	return nil
}

func mapAttachments(attachments []Attachment) []FileAttachment {
	var fileAttachments []FileAttachment

	for _, attachment := range attachments {
		if len(attachment.Content) == 0 {
			continue
		}

		fileAttachments = append(fileAttachments, FileAttachment{
			ODataType:    odataTypeFileAttachment,
			Name:         attachment.Name,
			ContentId:    mdl.NilIfEmpty(attachment.ContentId),
			ContentType:  attachment.ContentType,
			ContentBytes: base64.EncodeToString(attachment.Content),
			Size:         len(attachment.Content),
			IsInline:     attachment.IsInline(),
		})
	}

	return fileAttachments
}
