package graph_test

import (
	"context"
	netHttp "net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/justtrackio/graphmail/pkg/cache"
	"github.com/justtrackio/graphmail/pkg/graph"
	"github.com/justtrackio/graphmail/pkg/http"
	logMocks "github.com/justtrackio/graphmail/pkg/log/mocks"
	"github.com/justtrackio/graphmail/pkg/uuid"
	"github.com/stretchr/testify/assert"
)

// exercises the full pipeline against a mocked transport: token fetch, token
// caching across sends and the send request itself
func TestSendPipeline(t *testing.T) {
	restyClient := resty.New()
	httpmock.ActivateNonDefault(restyClient.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://login.microsoftonline.com/common/oauth2/v2.0/token",
		func(req *netHttp.Request) (*netHttp.Response, error) {
			assert.NoError(t, req.ParseForm())
			assert.Equal(t, "client_credentials", req.PostForm.Get("grant_type"))
			assert.Equal(t, "https://graph.microsoft.com/.default", req.PostForm.Get("scope"))
			assert.Equal(t, "the-client", req.PostForm.Get("client_id"))
			assert.Equal(t, "the-secret", req.PostForm.Get("client_secret"))

			return httpmock.NewStringResponse(200, `{"access_token":"at-123","expires_in":3599,"token_type":"Bearer"}`), nil
		})

	httpmock.RegisterResponder("POST", "https://graph.microsoft.com/v1.0/users/a@x.com/sendMail",
		func(req *netHttp.Request) (*netHttp.Response, error) {
			assert.Equal(t, "Bearer at-123", req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))

			return httpmock.NewStringResponse(202, ""), nil
		})

	logger := logMocks.NewLoggerMockedAll()
	httpClient := http.NewHttpClientWithInterfaces(logger, restyClient)
	settings := &graph.Settings{
		Tenant:       "common",
		ClientId:     "the-client",
		ClientSecret: "the-secret",
	}
	tokenProvider := graph.NewTokenProviderWithInterfaces(logger, httpClient, cache.New[string](1, 0, 45*time.Second), settings)
	sender := graph.NewSenderWithInterfaces(logger, httpClient, tokenProvider, uuid.New())

	message := &graph.Message{
		From:     []graph.Address{{Name: "Alice", Address: "a@x.com"}},
		To:       []graph.Address{{Address: "b@y.com"}},
		Subject:  "Hi",
		HtmlBody: "<p>hi</p>",
	}

	assert.NoError(t, sender.Send(context.Background(), message))
	assert.NoError(t, sender.Send(context.Background(), message))

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["POST https://login.microsoftonline.com/common/oauth2/v2.0/token"])
	assert.Equal(t, 2, info["POST https://graph.microsoft.com/v1.0/users/a@x.com/sendMail"])
}
