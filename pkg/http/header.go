package http

const (
	HdrAccept        = "Accept"
	HdrAuthorization = "Authorization"
	HdrContentType   = "Content-Type"
	HdrUserAgent     = "User-Agent"

	AuthorizationTypeBearer = "Bearer"

	MimeTypeApplicationFormUrlencoded = "application/x-www-form-urlencoded"
	MimeTypeApplicationJson           = "application/json"
	MimeTypeTextPlain                 = "text/plain"
)
