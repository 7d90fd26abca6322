package http

import (
	"context"
	"errors"
)

type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request is a fluent builder over Client, created with Client.Request
type Request struct {
	client      *Client
	method      RequestMethod
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
	backoff     *BackoffConfig
}

func NewHttpClientRequest(client *Client) *Request {
	return &Request{client: client, method: GET, path: "/"}
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.method = method
	return r
}

func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams replaces the query parameters; an empty map sends none
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.queryParams = params
	return r
}

// WithHeaders adds headers on top of the client defaults
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.headers = headers
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}

// WithSuccessResp sets the value a 2xx body is decoded into
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the value a non 2xx body is decoded into
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// WithBackoff overrides the client's retry policy for this request
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.backoff = backoff
	return r
}

// Execute sends the request and returns the success response, error response, status code and error
func (r *Request) Execute(ctx context.Context) (any, any, int, error) {
	switch {
	case r.client == nil:
		return nil, nil, 0, errors.New("client is required")
	case r.method == "":
		return nil, nil, 0, errors.New("method is required")
	case r.path == "":
		return nil, nil, 0, errors.New("path is required")
	}

	return r.client.doRequestWithBackoff(ctx, string(r.method), r.path, r.queryParams, r.headers,
		r.body, r.successResp, r.errorResp, r.backoff)
}
