package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWatchHub_NotifyReachesSubscribers(t *testing.T) {
	hub := NewWatchHub(nil, zap.NewNop())

	ch := hub.subscribe("tab-1")
	defer hub.unsubscribe("tab-1", ch)

	hub.notify("tab-1")

	select {
	case n := <-ch:
		assert.Equal(t, "tab-1", n.CartID)
		assert.Equal(t, "cart.changed", n.Event)
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

func TestWatchHub_NotifyIgnoresOtherCarts(t *testing.T) {
	hub := NewWatchHub(nil, zap.NewNop())

	ch := hub.subscribe("tab-1")
	defer hub.unsubscribe("tab-1", ch)

	hub.notify("tab-2")

	select {
	case <-ch:
		t.Fatal("received notification for a different cart")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchHub_MultipleWatchersPerCart(t *testing.T) {
	hub := NewWatchHub(nil, zap.NewNop())

	ch1 := hub.subscribe("tab-1")
	ch2 := hub.subscribe("tab-1")
	defer hub.unsubscribe("tab-1", ch1)
	defer hub.unsubscribe("tab-1", ch2)

	assert.Equal(t, 2, hub.WatcherCount("tab-1"))

	hub.notify("tab-1")

	for _, ch := range []chan ChangeNotification{ch1, ch2} {
		select {
		case n := <-ch:
			assert.Equal(t, "tab-1", n.CartID)
		case <-time.After(time.Second):
			t.Fatal("watcher missed the notification")
		}
	}
}

func TestWatchHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := NewWatchHub(nil, zap.NewNop())

	ch := hub.subscribe("tab-1")
	hub.unsubscribe("tab-1", ch)

	assert.Zero(t, hub.WatcherCount("tab-1"))

	hub.notify("tab-1")

	select {
	case <-ch:
		t.Fatal("received notification after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchHub_SlowWatcherDoesNotBlockNotify(t *testing.T) {
	hub := NewWatchHub(nil, zap.NewNop())

	ch := hub.subscribe("tab-1")
	defer hub.unsubscribe("tab-1", ch)

	done := make(chan struct{})
	go func() {
		// More notifications than the channel buffer holds.
		for i := 0; i < 100; i++ {
			hub.notify("tab-1")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify blocked on a slow watcher")
	}
}
