package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/justtrackio/graphmail/pkg/cfg"
	"github.com/justtrackio/graphmail/pkg/log"
)

const (
	GetRequest  = "GET"
	PostRequest = "POST"
)

type Settings struct {
	RequestTimeout time.Duration `cfg:"request_timeout" default:"30s"`
	RetryCount     int           `cfg:"retry_count" default:"0"`
}

//go:generate go run github.com/vektra/mockery/v2 --name Client
type Client interface {
	Get(ctx context.Context, request *Request) (*Response, error)
	Post(ctx context.Context, request *Request) (*Response, error)
	SetTimeout(timeout time.Duration)
	SetUserAgent(ua string)
	NewRequest() *Request
	NewJsonRequest() *Request
}

type Response struct {
	Body            []byte
	StatusCode      int
	RequestDuration time.Duration
}

type headers map[string]string

type client struct {
	logger         log.Logger
	http           *resty.Client
	defaultHeaders headers
}

func NewHttpClient(config cfg.Config, logger log.Logger) (Client, error) {
	settings := &Settings{}
	if err := config.UnmarshalKey("http_client", settings); err != nil {
		return nil, fmt.Errorf("can not unmarshal http client settings: %w", err)
	}

	return NewHttpClientWithSettings(logger, settings), nil
}

func NewHttpClientWithSettings(logger log.Logger, settings *Settings) Client {
	httpClient := resty.New()
	httpClient.SetRetryCount(settings.RetryCount)
	httpClient.SetTimeout(settings.RequestTimeout)

	return NewHttpClientWithInterfaces(logger, httpClient)
}

func NewHttpClientWithInterfaces(logger log.Logger, httpClient *resty.Client) Client {
	return &client{
		logger:         logger.WithChannel("http_client"),
		http:           httpClient,
		defaultHeaders: make(headers),
	}
}

func (c *client) NewRequest() *Request {
	return NewRequest(c.http)
}

func (c *client) NewJsonRequest() *Request {
	return NewJsonRequest(c.http)
}

func (c *client) SetTimeout(timeout time.Duration) {
	c.http.SetTimeout(timeout)
}

func (c *client) SetUserAgent(ua string) {
	c.defaultHeaders[HdrUserAgent] = ua
}

func (c *client) Get(ctx context.Context, request *Request) (*Response, error) {
	return c.do(ctx, GetRequest, request)
}

func (c *client) Post(ctx context.Context, request *Request) (*Response, error) {
	return c.do(ctx, PostRequest, request)
}

func (c *client) do(ctx context.Context, method string, request *Request) (*Response, error) {
	req, url, err := request.build()
	logger := c.logger.WithFields(log.Fields{
		"url":    url,
		"method": method,
	})

	if err != nil {
		logger.Error(ctx, "failed to assemble request: %w", err)

		return nil, err
	}

	req.SetContext(ctx)
	req.SetHeaders(c.defaultHeaders)

	resp, err := req.Execute(method, url)

	// Unwrap the error so our callers can simply check if the request was canceled and
	// react accordingly. The caller can not check for this upfront as the request could
	// be canceled while we wait for an answer of the server, causing this error to get
	// thrown.
	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		return nil, context.Canceled
	}

	if err != nil {
		// Only log an error if the error was not caused by a canceled context.
		// Otherwise a user might spam our error logs by just canceling a lot of requests.
		logger.Error(ctx, "error while requesting url: %w", err)

		return nil, err
	}

	response := &Response{
		Body:            resp.Body(),
		StatusCode:      resp.StatusCode(),
		RequestDuration: resp.Time(),
	}

	return response, nil
}
