// Package portal is a Go client for the registration API. It exists for
// tooling and tests, and pins down the fetch semantics the dashboard
// depends on: 404 on the registrations list means "none yet", not an
// error, and the aggregate page fetch is all-or-nothing.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"competition-portal/internal/api/registrations"

	"golang.org/x/sync/errgroup"
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return networkError(err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: apiMessage(body, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "malformed response body"}
		}
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func apiMessage(body []byte, status int) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return http.StatusText(status)
}

// MyRegistrations fetches the caller's registrations. A 404 is the
// "no registration" case and resolves to an empty list.
func (c *Client) MyRegistrations(ctx context.Context) ([]registrations.RegistrationDTO, error) {
	var regs []registrations.RegistrationDTO
	err := c.get(ctx, "/registration", &regs)
	if IsNotFound(err) {
		return []registrations.RegistrationDTO{}, nil
	}
	if err != nil {
		return nil, err
	}
	return regs, nil
}

type registrationPage struct {
	Data       []registrations.RegistrationDTO `json:"data"`
	Page       int                             `json:"page"`
	TotalPages int                             `json:"total_pages"`
	Total      int64                           `json:"total"`
}

func (c *Client) registrationsPage(ctx context.Context, page int) (registrationPage, error) {
	var out registrationPage
	err := c.get(ctx, fmt.Sprintf("/admin/registrations?page=%d", page), &out)
	return out, err
}

// AllRegistrations fetches every admin page: page 1 first to learn the
// page count, then the rest in parallel, merged in page order. If any
// page fails the whole aggregate fails.
func (c *Client) AllRegistrations(ctx context.Context) ([]registrations.RegistrationDTO, error) {
	first, err := c.registrationsPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	if first.TotalPages <= 1 {
		return first.Data, nil
	}

	pages := make([][]registrations.RegistrationDTO, first.TotalPages)
	pages[0] = first.Data

	g, gctx := errgroup.WithContext(ctx)
	for p := 2; p <= first.TotalPages; p++ {
		p := p
		g.Go(func() error {
			res, err := c.registrationsPage(gctx, p)
			if err != nil {
				return err
			}
			pages[p-1] = res.Data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []registrations.RegistrationDTO
	for _, page := range pages {
		merged = append(merged, page...)
	}
	return merged, nil
}
