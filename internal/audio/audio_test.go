package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSpeechClient implements SpeechClient.
type MockSpeechClient struct {
	mock.Mock
}

func (m *MockSpeechClient) Speak(ctx context.Context, text, voiceID string) (string, error) {
	args := m.Called(ctx, text, voiceID)
	return args.String(0), args.Error(1)
}

func (m *MockSpeechClient) Download(ctx context.Context, audioURL string) ([]byte, error) {
	args := m.Called(ctx, audioURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestParseTurns(t *testing.T) {
	t.Run("AlternatingHosts", func(t *testing.T) {
		script := "Host A: Welcome to the show.\nHost B: Thanks, great paper today.\nHost A: Let's dig in."
		turns := ParseTurns(script)
		require.Len(t, turns, 3)
		assert.Equal(t, "Host A", turns[0].Speaker)
		assert.Equal(t, "Welcome to the show.", turns[0].Text)
		assert.Equal(t, "Host B", turns[1].Speaker)
		assert.Equal(t, "Host A", turns[2].Speaker)
	})

	t.Run("ContinuationLines", func(t *testing.T) {
		script := "Host A: First line\nstill first turn\n\nHost B: Second turn"
		turns := ParseTurns(script)
		require.Len(t, turns, 2)
		assert.Equal(t, "First line still first turn", turns[0].Text)
	})

	t.Run("NoLabels", func(t *testing.T) {
		turns := ParseTurns("Just a plain narration with no speakers.")
		require.Len(t, turns, 1)
		assert.Empty(t, turns[0].Speaker)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, ParseTurns("  \n \n"))
	})
}

func TestSplitChunks(t *testing.T) {
	t.Run("ShortText", func(t *testing.T) {
		assert.Equal(t, []string{"hello world"}, splitChunks("hello world", 100))
	})

	t.Run("SplitsAtWords", func(t *testing.T) {
		chunks := splitChunks("alpha beta gamma delta epsilon", 12)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 12)
		}
		assert.Equal(t, "alpha beta gamma delta epsilon", strings.Join(chunks, " "))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, splitChunks("   ", 10))
	})

	t.Run("KeepsRunesIntact", func(t *testing.T) {
		// No spaces to cut at, so the limit lands mid-rune unless the
		// split backs off to a rune boundary.
		text := strings.Repeat("é", 20)
		chunks := splitChunks(text, 7)
		for _, c := range chunks {
			assert.True(t, utf8.ValidString(c), "chunk %q is not valid utf-8", c)
			assert.LessOrEqual(t, len(c), 7)
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
	})
}

func TestSynthesize(t *testing.T) {
	newStore := func(t *testing.T) *Store {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)
		return store
	}

	t.Run("VoicePerHost", func(t *testing.T) {
		mockTTS := new(MockSpeechClient)
		store := newStore(t)
		syn := NewSynthesizer(mockTTS, store, "voice-a", "voice-b", 3000)

		mockTTS.On("Speak", mock.Anything, "Hello there.", "voice-a").Return("https://cdn/clip1.mp3", nil)
		mockTTS.On("Speak", mock.Anything, "Hi, excited for this one.", "voice-b").Return("https://cdn/clip2.mp3", nil)
		mockTTS.On("Download", mock.Anything, "https://cdn/clip1.mp3").Return([]byte("AAA"), nil)
		mockTTS.On("Download", mock.Anything, "https://cdn/clip2.mp3").Return([]byte("BBB"), nil)

		url, err := syn.Synthesize(context.Background(), "Host A: Hello there.\nHost B: Hi, excited for this one.")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/static/audio/"))
		assert.True(t, strings.HasSuffix(url, ".mp3"))

		// Clips concatenated in turn order.
		data, err := os.ReadFile(filepath.Join(store.Dir(), strings.TrimPrefix(url, "/static/audio/")))
		require.NoError(t, err)
		assert.Equal(t, "AAABBB", string(data))
		mockTTS.AssertExpectations(t)
	})

	t.Run("ChunksLongTurns", func(t *testing.T) {
		mockTTS := new(MockSpeechClient)
		syn := NewSynthesizer(mockTTS, newStore(t), "voice-a", "voice-b", 10)

		mockTTS.On("Speak", mock.Anything, mock.Anything, "voice-a").Return("https://cdn/clip.mp3", nil)
		mockTTS.On("Download", mock.Anything, mock.Anything).Return([]byte("x"), nil)

		_, err := syn.Synthesize(context.Background(), "Host A: one two three four five six")
		assert.NoError(t, err)
		mockTTS.AssertNumberOfCalls(t, "Speak", 4)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		mockTTS := new(MockSpeechClient)
		syn := NewSynthesizer(mockTTS, newStore(t), "voice-a", "voice-b", 3000)

		mockTTS.On("Speak", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exhausted"))

		_, err := syn.Synthesize(context.Background(), "Host A: Hello.")
		assert.ErrorIs(t, err, ErrSynthesis)
	})

	t.Run("DownloadFailure", func(t *testing.T) {
		mockTTS := new(MockSpeechClient)
		syn := NewSynthesizer(mockTTS, newStore(t), "voice-a", "voice-b", 3000)

		mockTTS.On("Speak", mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/clip.mp3", nil)
		mockTTS.On("Download", mock.Anything, mock.Anything).Return(nil, errors.New("cdn unreachable"))

		_, err := syn.Synthesize(context.Background(), "Host A: Hello.")
		assert.ErrorIs(t, err, ErrSynthesis)
	})

	t.Run("EmptyScript", func(t *testing.T) {
		syn := NewSynthesizer(new(MockSpeechClient), newStore(t), "voice-a", "voice-b", 3000)
		_, err := syn.Synthesize(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrSynthesis)
	})
}
