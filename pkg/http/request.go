package http

import (
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cast"
)

type Request struct {
	errs        error
	resty       *resty.Request
	url         *url.URL
	queryParams url.Values
}

// use NewRequest to create a request, don't create the object inline!
func NewRequest(client *resty.Client) *Request {
	if client == nil {
		client = resty.New()
	}

	return &Request{
		resty:       client.R(),
		url:         &url.URL{},
		queryParams: url.Values{},
	}
}

// use NewJsonRequest to create a request that already contains the application/json content-type, don't create the object inline!
func NewJsonRequest(client *resty.Client) *Request {
	return NewRequest(client).
		WithHeader(HdrAccept, MimeTypeApplicationJson)
}

func (r *Request) WithUrl(rawUrl string) *Request {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil {
		r.errs = multierror.Append(r.errs, err)

		return r
	}

	r.addQueryValues(parsedUrl.Query())

	parsedUrl.RawQuery = ""

	r.url = parsedUrl

	return r
}

func (r *Request) WithQueryParam(key string, values ...any) *Request {
	for _, value := range values {
		str, err := cast.ToStringE(value)
		if err != nil {
			r.errs = multierror.Append(r.errs, err)

			continue
		}

		r.queryParams.Add(key, str)
	}

	return r
}

func (r *Request) WithQueryObject(obj any) *Request {
	parts, err := query.Values(obj)
	if err != nil {
		r.errs = multierror.Append(r.errs, err)

		return r
	}

	r.addQueryValues(parts)

	return r
}

func (r *Request) WithAuthToken(token string) *Request {
	r.resty.SetAuthToken(token)

	return r
}

func (r *Request) WithHeader(key string, value string) *Request {
	r.resty.SetHeader(key, value)

	return r
}

// WithBody sets a body which gets marshalled to json on execution.
func (r *Request) WithBody(body any) *Request {
	r.resty.SetBody(body)

	return r
}

// WithFormData sets a form-urlencoded body built from the given values.
func (r *Request) WithFormData(values map[string]string) *Request {
	r.resty.SetFormData(values)

	return r
}

// The following methods are mainly intended for tests
// You should not need to call them yourself

type Header map[string][]string

func (r *Request) GetHeader() Header {
	header := make(Header)

	// make a copy of our headers to prevent a caller
	// from modifying them
	for key, values := range r.resty.Header {
		header[key] = append(make([]string, 0, len(values)), values...)
	}

	return header
}

func (r *Request) GetBody() any {
	return r.resty.Body
}

func (r *Request) GetFormData() url.Values {
	formData := make(url.Values, len(r.resty.FormData))

	for key, values := range r.resty.FormData {
		formData[key] = append(make([]string, 0, len(values)), values...)
	}

	return formData
}

func (r *Request) GetToken() string {
	return r.resty.Token
}

func (r *Request) GetUrl() string {
	r.url.RawQuery = r.queryParams.Encode()

	return r.url.String()
}

func (r *Request) GetError() error {
	return r.errs
}

func (r *Request) build() (*resty.Request, string, error) {
	if r.errs != nil {
		return nil, "", r.errs
	}

	r.url.RawQuery = r.queryParams.Encode()
	urlString := r.url.String()

	return r.resty, urlString, nil
}

func (r *Request) addQueryValues(parts url.Values) {
	for key, values := range parts {
		for _, value := range values {
			r.queryParams.Add(key, value)
		}
	}
}
