package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/http"
)

type webhookResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// webhookNotificationGateway posts notifications as JSON to a single webhook URL
type webhookNotificationGateway struct {
	httpClient *http.Client
	path       string
	query      map[string]string
}

// eventHeader lets receivers route payloads without inspecting the body
const eventHeader = "X-Taskflow-Event"

// NewWebhookNotificationGateway creates a NotificationGateway posting to webhookURL
func NewWebhookNotificationGateway(webhookURL string, clientOptions http.ClientOptions) (NotificationGateway, error) {
	parsed, err := url.Parse(webhookURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid webhook URL %q", webhookURL)
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	query := make(map[string]string)
	for key, values := range parsed.Query() {
		query[key] = values[0]
	}
	parsed.Path, parsed.RawPath, parsed.RawQuery = "", "", ""

	return &webhookNotificationGateway{
		httpClient: http.NewHttpClient(parsed.String(), clientOptions),
		path:       path,
		query:      query,
	}, nil
}

// SendOverdueDigest posts the digest to the webhook
func (w *webhookNotificationGateway) SendOverdueDigest(ctx context.Context, digest model.OverdueDigest) error {
	_, errResp, status, err := w.httpClient.Request().
		WithMethod(http.POST).
		WithPath(w.path).
		WithQueryParams(w.query).
		WithHeaders(map[string]string{eventHeader: "overdue-digest"}).
		WithBody(digest).
		WithErrorResp(&webhookResponse{}).
		Execute(ctx)

	if err == nil {
		return nil
	}

	if errResp != nil {
		response := errResp.(*webhookResponse)
		if response.Error != "" {
			return fmt.Errorf("webhook rejected digest (status %d): %s", status, response.Error)
		}
		if response.Message != "" {
			return fmt.Errorf("webhook rejected digest (status %d): %s", status, response.Message)
		}
	}

	return errors.Join(fmt.Errorf("failed to post digest"), err)
}
