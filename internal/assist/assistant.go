package assist

import (
	"context"
	"errors"
	"fmt"

	"github.com/appetiteclub/apt"
)

// ErrVoiceUnavailable marks a voice exchange attempted without a speech
// input port wired.
var ErrVoiceUnavailable = errors.New("voice input is not configured")

// Assistant fronts the chat responder and the optional voice ports.
type Assistant struct {
	responder Responder
	stt       SpeechToText
	tts       TextToSpeech
	logger    apt.Logger
}

func NewAssistant(responder Responder, stt SpeechToText, tts TextToSpeech, logger apt.Logger) *Assistant {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	if tts != nil {
		tts = NewSerialSpeaker(tts)
	}
	return &Assistant{
		responder: responder,
		stt:       stt,
		tts:       tts,
		logger:    logger,
	}
}

// Chat answers a text message. A responder failure is downgraded to the
// fallback reply so the conversation never dead-ends.
func (a *Assistant) Chat(ctx context.Context, message string, history []ChatMessage) string {
	reply, err := a.responder.Respond(ctx, message, history)
	if err != nil {
		a.logger.Error("chat responder failed", "error", err)
		return FallbackReply
	}
	return reply
}

// VoiceTurn runs one spoken exchange: transcribe, answer, speak the
// answer back. The spoken playback is best-effort.
func (a *Assistant) VoiceTurn(ctx context.Context, history []ChatMessage) (transcript, reply string, err error) {
	if a.stt == nil {
		return "", "", ErrVoiceUnavailable
	}

	transcript, err = a.stt.Transcribe(ctx)
	if err != nil {
		return "", "", fmt.Errorf("cannot transcribe speech: %w", err)
	}

	reply = a.Chat(ctx, transcript, history)

	if a.tts != nil {
		if err := a.tts.Speak(ctx, reply); err != nil {
			a.logger.Error("cannot speak reply", "error", err)
		}
	}
	return transcript, reply, nil
}
