package assist

import (
	"context"
	"sync"
)

// SerialSpeaker decorates a TextToSpeech port so at most one utterance is
// active at a time. A new utterance cancels the one in flight and waits
// for it to stop before speaking.
type SerialSpeaker struct {
	tts TextToSpeech

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSerialSpeaker(tts TextToSpeech) *SerialSpeaker {
	return &SerialSpeaker{tts: tts}
}

func (s *SerialSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	prior := s.done

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	defer cancel()
	defer close(done)

	if prior != nil {
		select {
		case <-prior:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return s.tts.Speak(ctx, text)
}
