package assist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// blockingSpeech speaks until its context is cancelled and tracks how
// many utterances run at once.
type blockingSpeech struct {
	mu        sync.Mutex
	active    int
	maxActive int
	started   chan string
}

func (b *blockingSpeech) Speak(ctx context.Context, text string) error {
	b.mu.Lock()
	b.active++
	if b.active > b.maxActive {
		b.maxActive = b.active
	}
	b.mu.Unlock()

	b.started <- text
	<-ctx.Done()

	b.mu.Lock()
	b.active--
	b.mu.Unlock()
	return ctx.Err()
}

func (b *blockingSpeech) MaxActive() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.maxActive
}

func TestSerialSpeakerSingleActiveUtterance(t *testing.T) {
	b := &blockingSpeech{started: make(chan string, 2)}
	s := NewSerialSpeaker(b)

	firstErr := make(chan error, 1)
	go func() { firstErr <- s.Speak(context.Background(), "first") }()
	if got := <-b.started; got != "first" {
		t.Fatalf("started = %q, want first", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	secondErr := make(chan error, 1)
	go func() { secondErr <- s.Speak(ctx, "second") }()

	// The new utterance interrupts the one in flight.
	select {
	case err := <-firstErr:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("first utterance error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first utterance was not cancelled")
	}

	// The second starts only after the first has stopped.
	select {
	case got := <-b.started:
		if got != "second" {
			t.Fatalf("started = %q, want second", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second utterance never started")
	}

	cancel()
	select {
	case <-secondErr:
	case <-time.After(2 * time.Second):
		t.Fatal("second utterance never finished")
	}

	if b.MaxActive() != 1 {
		t.Errorf("max concurrent utterances = %d, want 1", b.MaxActive())
	}
}

func TestSerialSpeakerPassesThroughResult(t *testing.T) {
	tts := &mockTextToSpeech{}
	s := NewSerialSpeaker(tts)

	if err := s.Speak(context.Background(), "welcome"); err != nil {
		t.Fatalf("Speak() unexpected error: %v", err)
	}
	if len(tts.spoken) != 1 || tts.spoken[0] != "welcome" {
		t.Errorf("spoken = %v, want [welcome]", tts.spoken)
	}

	tts.err = errors.New("audio device busy")
	if err := s.Speak(context.Background(), "again"); err == nil {
		t.Error("Speak() should surface the port failure")
	}
}
