package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/graphmail/pkg/cache"
	"github.com/justtrackio/graphmail/pkg/cfg"
	"github.com/justtrackio/graphmail/pkg/encoding/json"
	"github.com/justtrackio/graphmail/pkg/http"
	"github.com/justtrackio/graphmail/pkg/log"
)

const (
	TokenUrlTemplate = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	TokenScope       = "https://graph.microsoft.com/.default"
	GrantType        = "client_credentials"

	tokenCacheKey = "graph_mail_access_token"
	// tokens are cached for a short fixed amount of time regardless of their
	// own expiry, so we never have to parse expiry claims
	tokenTtl = 45 * time.Second
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

//go:generate go run github.com/vektra/mockery/v2 --name TokenProvider
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

type tokenProvider struct {
	logger     log.Logger
	httpClient http.Client
	cache      cache.Cache[string]
	settings   *Settings
}

func NewTokenProvider(config cfg.Config, logger log.Logger) (TokenProvider, error) {
	httpClient, err := http.NewHttpClient(config, logger)
	if err != nil {
		return nil, fmt.Errorf("can not create http client: %w", err)
	}

	settings, err := readSettings(config)
	if err != nil {
		return nil, err
	}

	tokenCache := cache.New[string](1, 0, tokenTtl)

	return NewTokenProviderWithInterfaces(logger, httpClient, tokenCache, settings), nil
}

func NewTokenProviderWithInterfaces(logger log.Logger, httpClient http.Client, tokenCache cache.Cache[string], settings *Settings) TokenProvider {
	return &tokenProvider{
		logger:     logger.WithChannel("graph_mail"),
		httpClient: httpClient,
		cache:      tokenCache,
		settings:   settings,
	}
}

func (p *tokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	return p.cache.ProvideWithError(tokenCacheKey, func() (string, error) {
		return p.fetchAccessToken(ctx)
	})
}

func (p *tokenProvider) fetchAccessToken(ctx context.Context) (string, error) {
	url := fmt.Sprintf(TokenUrlTemplate, p.settings.Tenant)

	request := p.httpClient.NewRequest().
		WithUrl(url).
		WithFormData(map[string]string{
			"client_id":     p.settings.ClientId,
			"client_secret": p.settings.ClientSecret,
			"scope":         TokenScope,
			"grant_type":    GrantType,
		})

	response, err := p.httpClient.Post(ctx, request)
	if err != nil {
		return "", newUnreachableError(err)
	}

	if response.StatusCode >= 400 {
		errorResponse := &tokenErrorResponse{}
		// carry whatever the identity provider told us, an unparsable body
		// simply leaves both values empty
		_ = json.Unmarshal(response.Body, errorResponse)

		return "", &TokenError{
			Code:        errorResponse.Error,
			Description: errorResponse.ErrorDescription,
		}
	}

	token := &tokenResponse{}
	if err := json.Unmarshal(response.Body, token); err != nil {
		return "", &UnreachableError{
			Reason: ReasonUnknown,
			Err:    fmt.Errorf("can not unmarshal token response: %w", err),
		}
	}

	p.logger.WithFields(log.Fields{
		"tenant": p.settings.Tenant,
	}).Debug(ctx, "fetched new access token")

	return token.AccessToken, nil
}
