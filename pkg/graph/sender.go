package graph

import (
	"context"
	"errors"
	"fmt"
	netUrl "net/url"

	"github.com/justtrackio/graphmail/pkg/cfg"
	"github.com/justtrackio/graphmail/pkg/encoding/json"
	"github.com/justtrackio/graphmail/pkg/http"
	"github.com/justtrackio/graphmail/pkg/log"
	"github.com/justtrackio/graphmail/pkg/uuid"
)

const SendMailUrlTemplate = "https://graph.microsoft.com/v1.0/users/%s/sendMail"

// ErrNoFromAddress marks a caller contract violation: a message has to carry
// at least one from entry with a non-empty address.
var ErrNoFromAddress = errors.New("message needs at least one from address")

type sendMailRequest struct {
	Message *Payload `json:"message"`
}

type sendMailErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

//go:generate go run github.com/vektra/mockery/v2 --name Sender
type Sender interface {
	Send(ctx context.Context, message *Message) error
}

type sender struct {
	logger        log.Logger
	httpClient    http.Client
	tokenProvider TokenProvider
	uuidGen       uuid.Uuid
}

func NewSender(config cfg.Config, logger log.Logger) (Sender, error) {
	httpClient, err := http.NewHttpClient(config, logger)
	if err != nil {
		return nil, fmt.Errorf("can not create http client: %w", err)
	}

	tokenProvider, err := NewTokenProvider(config, logger)
	if err != nil {
		return nil, fmt.Errorf("can not create token provider: %w", err)
	}

	return NewSenderWithInterfaces(logger, httpClient, tokenProvider, uuid.New()), nil
}

func NewSenderWithInterfaces(logger log.Logger, httpClient http.Client, tokenProvider TokenProvider, uuidGen uuid.Uuid) Sender {
	return &sender{
		logger:        logger.WithChannel("graph_mail"),
		httpClient:    httpClient,
		tokenProvider: tokenProvider,
		uuidGen:       uuidGen,
	}
}

func (s *sender) Send(ctx context.Context, message *Message) error {
	if message == nil || len(message.From) == 0 || message.From[0].Address == "" {
		return ErrNoFromAddress
	}

	token, err := s.tokenProvider.GetAccessToken(ctx)
	if err != nil {
		return err
	}

	from := message.From[0].Address
	requestId := s.uuidGen.NewV4()
	url := fmt.Sprintf(SendMailUrlTemplate, netUrl.PathEscape(from))

	request := s.httpClient.NewJsonRequest().
		WithUrl(url).
		WithAuthToken(token).
		WithHeader("client-request-id", requestId).
		WithBody(sendMailRequest{
			Message: BuildPayload(message),
		})

	response, err := s.httpClient.Post(ctx, request)
	if err != nil {
		return newUnreachableError(err)
	}

	if response.StatusCode >= 400 {
		return newSendError(response.Body)
	}

	s.logger.WithFields(log.Fields{
		"request_id": requestId,
		"from":       from,
	}).Info(ctx, "sent mail to %d recipients", len(message.To)+len(message.Cc)+len(message.Bcc))

	return nil
}

func newSendError(body []byte) *SendError {
	sendError := &SendError{
		Code:    UnknownErrorCode,
		Message: UnknownErrorMessage,
	}

	errorResponse := &sendMailErrorResponse{}
	if err := json.Unmarshal(body, errorResponse); err != nil {
		return sendError
	}

	if errorResponse.Error.Code != "" {
		sendError.Code = errorResponse.Error.Code
	}
	if errorResponse.Error.Message != "" {
		sendError.Message = errorResponse.Error.Message
	}

	return sendError
}
