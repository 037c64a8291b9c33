package portal

import (
	"context"

	"competition-portal/internal/api/registrations"
)

// Feed tracks the three observable states of the registrations fetch:
// Loading while a request is in flight, Err after a failure, Data after
// the first success. It is not safe for concurrent use; the consumer is
// a single event loop that calls Refresh on mount and after mutations.
type Feed struct {
	client *Client

	Loading bool
	Err     string
	// Data stays nil until the first successful fetch. On a failed
	// refresh it keeps its previous value rather than resetting.
	Data []registrations.RegistrationDTO
}

func NewFeed(client *Client) *Feed {
	return &Feed{client: client}
}

// Refresh performs one fetch. Refreshes are caller-triggered only;
// nothing polls.
func (f *Feed) Refresh(ctx context.Context) {
	f.Loading = true
	defer func() { f.Loading = false }()

	regs, err := f.client.MyRegistrations(ctx)
	if err != nil {
		f.Err = err.Error()
		return
	}

	f.Err = ""
	f.Data = regs
}

// Current returns the registration the dashboard treats as active:
// index 0 of the fetched list, nil when none exists or nothing has
// loaded yet.
func (f *Feed) Current() *registrations.RegistrationDTO {
	if len(f.Data) == 0 {
		return nil
	}
	return &f.Data[0]
}
