package http_test

import (
	"context"
	"fmt"
	netHttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/justtrackio/graphmail/pkg/http"
	logMocks "github.com/justtrackio/graphmail/pkg/log/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestClient(settings *http.Settings) http.Client {
	if settings == nil {
		settings = &http.Settings{
			RequestTimeout: time.Second,
		}
	}

	return http.NewHttpClientWithSettings(logMocks.NewLoggerMockedAll(), settings)
}

func runTestServer(t *testing.T, method string, status int, delay time.Duration, test func(host string)) {
	testServer := httptest.NewServer(netHttp.HandlerFunc(func(res netHttp.ResponseWriter, req *netHttp.Request) {
		assert.Equal(t, method, req.Method)

		time.Sleep(delay)

		res.WriteHeader(status)
	}))
	defer testServer.Close()

	test(testServer.Listener.Addr().String())
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(nil)

	runTestServer(t, "GET", 200, 0, func(host string) {
		request := client.NewRequest().
			WithUrl(fmt.Sprintf("http://%s", host))
		response, err := client.Get(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, 200, response.StatusCode)
	})
}

func TestClient_Post(t *testing.T) {
	client := newTestClient(nil)

	runTestServer(t, "POST", 202, 0, func(host string) {
		request := client.NewJsonRequest().
			WithUrl(fmt.Sprintf("http://%s", host)).
			WithBody(map[string]string{"key": "value"})
		response, err := client.Post(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, 202, response.StatusCode)
	})
}

func TestClient_ErrorStatusIsNotAnError(t *testing.T) {
	client := newTestClient(nil)

	runTestServer(t, "GET", 503, 0, func(host string) {
		request := client.NewRequest().
			WithUrl(fmt.Sprintf("http://%s", host))
		response, err := client.Get(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, 503, response.StatusCode)
	})
}

func TestClient_GetTimeout(t *testing.T) {
	client := newTestClient(&http.Settings{
		RequestTimeout: 100 * time.Millisecond,
	})

	runTestServer(t, "GET", 200, 300*time.Millisecond, func(host string) {
		request := client.NewRequest().
			WithUrl(fmt.Sprintf("http://%s", host))
		response, err := client.Get(context.Background(), request)

		assert.Error(t, err)
		assert.Nil(t, response)
	})
}

func TestClient_GetCanceled(t *testing.T) {
	client := newTestClient(nil)

	runTestServer(t, "GET", 200, 300*time.Millisecond, func(host string) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		request := client.NewRequest().
			WithUrl(fmt.Sprintf("http://%s", host))
		response, err := client.Get(ctx, request)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, response)
	})
}

func TestClient_GetWithMockedTransport(t *testing.T) {
	restyClient := resty.New()
	httpmock.ActivateNonDefault(restyClient.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://graph.microsoft.example/v1.0/me",
		httpmock.NewStringResponder(200, `{"displayName":"Alice"}`))

	client := http.NewHttpClientWithInterfaces(logMocks.NewLoggerMockedAll(), restyClient)

	request := client.NewJsonRequest().
		WithUrl("https://graph.microsoft.example/v1.0/me")
	response, err := client.Get(context.Background(), request)

	assert.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.JSONEq(t, `{"displayName":"Alice"}`, string(response.Body))
}

func TestClient_InvalidRequest(t *testing.T) {
	client := newTestClient(nil)

	request := client.NewRequest().
		WithUrl("://missing-scheme")
	response, err := client.Get(context.Background(), request)

	assert.Error(t, err)
	assert.Nil(t, response)
}
