package session

import "testing"

func TestBroadcaster_PublishDeliversToSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	defer b.Unsubscribe(ch1)
	defer b.Unsubscribe(ch2)

	b.Publish(Snapshot{Scanning: true})

	if got := <-ch1; !got.Scanning {
		t.Error("ch1 got a snapshot with Scanning false, want true")
	}
	if got := <-ch2; !got.Scanning {
		t.Error("ch2 got a snapshot with Scanning false, want true")
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("channel should be closed after Unsubscribe")
	}
}

func TestBroadcaster_CloseEndsSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	b.Close()

	if _, open := <-ch; open {
		t.Error("subscriber channel should be closed after Close")
	}

	// Publish and Unsubscribe after Close are no-ops, not panics.
	b.Publish(Snapshot{})
	b.Unsubscribe(ch)

	late := b.Subscribe()
	if _, open := <-late; open {
		t.Error("Subscribe after Close should return a closed channel")
	}
}

func TestBroadcaster_LaggingSubscriberDropsNotBlocks(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Fill well past the channel buffer; Publish must never block.
	for i := 0; i < 100; i++ {
		b.Publish(Snapshot{})
	}

	if len(ch) == 0 {
		t.Error("expected buffered snapshots for the lagging subscriber")
	}
}
