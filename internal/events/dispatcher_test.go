package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherPublishOrder(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []string

	d.Subscribe(EventNavigationCompleted, func(_ context.Context, e Event) error {
		seen = append(seen, "first:"+e.Payload.(NavigationCompletedPayload).URL)
		return nil
	})
	d.Subscribe(EventNavigationCompleted, func(_ context.Context, e Event) error {
		seen = append(seen, "second:"+e.Payload.(NavigationCompletedPayload).URL)
		return nil
	})
	d.Subscribe(EventMenuItemClicked, func(context.Context, Event) error {
		seen = append(seen, "unrelated")
		return nil
	})

	err := d.Publish(context.Background(), New("s1", EventNavigationCompleted, NavigationCompletedPayload{URL: "/member"}))

	assert.NoError(t, err)
	assert.Equal(t, []string{"first:/member", "second:/member"}, seen)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	called := false

	d.Subscribe(EventLoginSubmitted, func(context.Context, Event) error { return boom })
	d.Subscribe(EventLoginSubmitted, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), New("s1", EventLoginSubmitted, LoginSubmittedPayload{}))

	assert.ErrorIs(t, err, boom)
	assert.True(t, called)
}
