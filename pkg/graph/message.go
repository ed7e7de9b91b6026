package graph

const (
	DispositionAttachment = "attachment"
	DispositionInline     = "inline"
)

// Address is a mail address with an optional display name. A plain address
// without a display name simply leaves the Name field empty.
type Address struct {
	Name    string
	Address string
}

type Attachment struct {
	Name        string
	ContentId   string
	ContentType string
	Content     []byte
	Disposition string
}

func (a Attachment) IsInline() bool {
	return a.Disposition == DispositionInline
}

// Message is the transport neutral representation of a single mail. It is
// constructed by the caller and handed in for one send.
type Message struct {
	From        []Address
	ReplyTo     []Address
	To          []Address
	Cc          []Address
	Bcc         []Address
	Subject     string
	HtmlBody    string
	TextBody    string
	Attachments []Attachment
}
