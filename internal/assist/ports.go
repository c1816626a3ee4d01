package assist

import "context"

// SpeechToText produces one finalized transcript per invocation.
type SpeechToText interface {
	Transcribe(ctx context.Context) (string, error)
}

// TextToSpeech speaks one utterance. At most one utterance is active at a
// time; a new call cancels the prior one.
type TextToSpeech interface {
	Speak(ctx context.Context, text string) error
}
