package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier is the device push gateway capability set the scheduler
// works against. Weekday is Sunday-first, 1..7.
type Notifier interface {
	EnsureChannel(ctx context.Context) error
	ScheduleWeekly(ctx context.Context, id, title, body string, weekday, hour, minute int, category Category) error
	ScheduleAbsolute(ctx context.Context, id, title, body string, at time.Time, category Category) error
	CancelAll(ctx context.Context) error
	GetPermissionStatus(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) (bool, error)
}

// PushGatewayNotifier talks to the HTTP gateway which relays local
// notification definitions down to the athlete's device.
type PushGatewayNotifier struct {
	baseURL    string
	httpClient *http.Client
}

var _ Notifier = (*PushGatewayNotifier)(nil)

func NewPushGatewayNotifier(baseURL string, httpClient *http.Client) *PushGatewayNotifier {
	return &PushGatewayNotifier{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type weeklyNotificationRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Weekday  int    `json:"weekday"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Category string `json:"category"`
}

type absoluteNotificationRequest struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	At       time.Time `json:"at"`
	Category string    `json:"category"`
}

// permissionResponse covers both response shapes seen across platform
// SDK versions: a plain boolean flag, or a status string
type permissionResponse struct {
	Granted bool   `json:"granted"`
	Status  string `json:"status"`
}

func (p permissionResponse) granted() bool {
	return p.Granted || p.Status == "granted"
}

func (n *PushGatewayNotifier) EnsureChannel(ctx context.Context) error {
	return n.send(ctx, http.MethodPut, "/v1/channels/reminders", nil, nil)
}

func (n *PushGatewayNotifier) ScheduleWeekly(
	ctx context.Context,
	id, title, body string,
	weekday, hour, minute int,
	category Category,
) error {
	return n.send(ctx, http.MethodPost, "/v1/notifications/weekly", weeklyNotificationRequest{
		ID:       id,
		Title:    title,
		Body:     body,
		Weekday:  weekday,
		Hour:     hour,
		Minute:   minute,
		Category: string(category),
	}, nil)
}

func (n *PushGatewayNotifier) ScheduleAbsolute(
	ctx context.Context,
	id, title, body string,
	at time.Time,
	category Category,
) error {
	return n.send(ctx, http.MethodPost, "/v1/notifications/absolute", absoluteNotificationRequest{
		ID:       id,
		Title:    title,
		Body:     body,
		At:       at,
		Category: string(category),
	}, nil)
}

func (n *PushGatewayNotifier) CancelAll(ctx context.Context) error {
	return n.send(ctx, http.MethodDelete, "/v1/notifications", nil, nil)
}

func (n *PushGatewayNotifier) GetPermissionStatus(ctx context.Context) (bool, error) {
	var resp permissionResponse
	if err := n.send(ctx, http.MethodGet, "/v1/permissions", nil, &resp); err != nil {
		return false, fmt.Errorf("push gateway unavailable: %w", err)
	}
	return resp.granted(), nil
}

func (n *PushGatewayNotifier) RequestPermission(ctx context.Context) (bool, error) {
	var resp permissionResponse
	if err := n.send(ctx, http.MethodPost, "/v1/permissions/request", nil, &resp); err != nil {
		return false, fmt.Errorf("push gateway unavailable: %w", err)
	}
	return resp.granted(), nil
}

func (n *PushGatewayNotifier) send(
	ctx context.Context,
	method, path string,
	payload interface{},
	response interface{},
) error {
	var reqBody io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, n.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway %s %s: status %d", method, path, resp.StatusCode)
	}

	if response != nil {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
