//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives the router in-process with an optional bearer token.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (c *HTTPClient) Do(method, path string, body any) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	return &Response{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.Do(http.MethodGet, path, nil)
}

func (c *HTTPClient) POST(path string, body any) (*Response, error) {
	return c.Do(http.MethodPost, path, body)
}

func (c *HTTPClient) PUT(path string, body any) (*Response, error) {
	return c.Do(http.MethodPut, path, body)
}

func (c *HTTPClient) PATCH(path string, body any) (*Response, error) {
	return c.Do(http.MethodPatch, path, body)
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.Do(http.MethodDelete, path, nil)
}
