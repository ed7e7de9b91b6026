package graph_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/justtrackio/graphmail/pkg/cache"
	"github.com/justtrackio/graphmail/pkg/graph"
	"github.com/justtrackio/graphmail/pkg/http"
	httpMocks "github.com/justtrackio/graphmail/pkg/http/mocks"
	logMocks "github.com/justtrackio/graphmail/pkg/log/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

func newTokenSettings() *graph.Settings {
	return &graph.Settings{
		Tenant:       "my-tenant",
		ClientId:     "the-client",
		ClientSecret: "the-secret",
	}
}

func newTokenProvider(t *testing.T) (graph.TokenProvider, *httpMocks.Client, cache.Cache[string]) {
	httpClient := httpMocks.NewClient(t)
	tokenCache := cache.New[string](1, 0, time.Minute)
	provider := graph.NewTokenProviderWithInterfaces(logMocks.NewLoggerMockedAll(), httpClient, tokenCache, newTokenSettings())

	return provider, httpClient, tokenCache
}

func TestTokenProvider_GetAccessToken(t *testing.T) {
	provider, httpClient, _ := newTokenProvider(t)

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Once()
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).Run(func(_ context.Context, request *http.Request) {
		assert.Equal(t, "https://login.microsoftonline.com/my-tenant/oauth2/v2.0/token", request.GetUrl())
		assert.Equal(t, url.Values{
			"client_id":     {"the-client"},
			"client_secret": {"the-secret"},
			"scope":         {"https://graph.microsoft.com/.default"},
			"grant_type":    {"client_credentials"},
		}, request.GetFormData())
	}).Return(&http.Response{
		StatusCode: 200,
		Body:       []byte(`{"access_token":"at-123","expires_in":3599,"token_type":"Bearer"}`),
	}, nil).Once()

	token, err := provider.GetAccessToken(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "at-123", token)
}

func TestTokenProvider_GetAccessTokenCached(t *testing.T) {
	provider, httpClient, tokenCache := newTokenProvider(t)

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Once()
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: 200,
		Body:       []byte(`{"access_token":"at-123"}`),
	}, nil).Once()

	token, err := provider.GetAccessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "at-123", token)

	// the second call within the ttl is answered from the cache without
	// another token request
	token, err = provider.GetAccessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "at-123", token)
	httpClient.AssertNumberOfCalls(t, "Post", 1)

	// once the cached token expired we fetch a fresh one
	tokenCache.Expire("graph_mail_access_token")

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Once()
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: 200,
		Body:       []byte(`{"access_token":"at-456"}`),
	}, nil).Once()

	token, err = provider.GetAccessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "at-456", token)
	httpClient.AssertNumberOfCalls(t, "Post", 2)
}

func TestTokenProvider_GetAccessTokenErrorResponse(t *testing.T) {
	provider, httpClient, _ := newTokenProvider(t)

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Once()
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: 400,
		Body:       []byte(`{"error":"invalid_client","error_description":"bad secret"}`),
	}, nil).Once()

	_, err := provider.GetAccessToken(context.Background())

	assert.True(t, graph.IsTokenError(err))

	tokenError := &graph.TokenError{}
	assert.ErrorAs(t, err, &tokenError)
	assert.Equal(t, "invalid_client", tokenError.Code)
	assert.Equal(t, "bad secret", tokenError.Description)
}

func TestTokenProvider_GetAccessTokenConnectionError(t *testing.T) {
	provider, httpClient, _ := newTokenProvider(t)

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Once()
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).
		Return(nil, fmt.Errorf("dial tcp 127.0.0.1:443: %w", unix.ECONNREFUSED)).Once()

	_, err := provider.GetAccessToken(context.Background())

	assert.True(t, graph.IsUnreachableError(err))

	unreachableError := &graph.UnreachableError{}
	assert.ErrorAs(t, err, &unreachableError)
	assert.Equal(t, graph.ReasonNetwork, unreachableError.Reason)
}

func TestTokenProvider_GetAccessTokenUnexpectedError(t *testing.T) {
	provider, httpClient, _ := newTokenProvider(t)

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Once()
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).
		Return(nil, fmt.Errorf("something went wrong")).Once()

	_, err := provider.GetAccessToken(context.Background())

	unreachableError := &graph.UnreachableError{}
	assert.ErrorAs(t, err, &unreachableError)
	assert.Equal(t, graph.ReasonUnknown, unreachableError.Reason)
}

func TestTokenProvider_GetAccessTokenFailuresAreNotCached(t *testing.T) {
	provider, httpClient, tokenCache := newTokenProvider(t)

	httpClient.EXPECT().NewRequest().Return(http.NewRequest(nil)).Times(2)
	httpClient.EXPECT().Post(mock.Anything, mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: 500,
		Body:       []byte(`{"error":"server_error","error_description":"try again"}`),
	}, nil).Times(2)

	_, err := provider.GetAccessToken(context.Background())
	assert.True(t, graph.IsTokenError(err))
	assert.False(t, tokenCache.Contains("graph_mail_access_token"))

	_, err = provider.GetAccessToken(context.Background())
	assert.True(t, graph.IsTokenError(err))
	httpClient.AssertNumberOfCalls(t, "Post", 2)
}
