package voice

import (
	"context"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mkarimi/porsesh/model"
)

type fakeGen struct {
	reply string
	err   error

	prompt    string
	audio     []byte
	audioPath string
}

func (g *fakeGen) Generate(_ context.Context, prompt, audioPath string) (string, error) {
	g.prompt = prompt
	g.audioPath = audioPath
	g.audio, _ = os.ReadFile(audioPath)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func testExtractor(t *testing.T, gen Generator) *Extractor {
	t.Helper()
	e := NewExtractorWith(gen)
	e.TempDir = t.TempDir()
	return e
}

func requireTempDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExtractNumberAnswer(t *testing.T) {
	e := testExtractor(t, &fakeGen{reply: "42"})

	answer, err := e.Extract(context.Background(), []byte("opus"), model.Question{
		Prompt: "محدوده سنی؟",
		Kind:   model.Number,
		Fields: []string{"age"},
	})
	require.NoError(t, err)
	require.Equal(t, model.Answer{Text: "42"}, answer)
}

func TestExtractNoAnswerSentinel(t *testing.T) {
	for _, reply := range []string{"null", "NULL", "  null  ", "", "   "} {
		t.Run("reply:"+reply, func(t *testing.T) {
			e := testExtractor(t, &fakeGen{reply: reply})

			answer, err := e.Extract(context.Background(), []byte("opus"), model.Question{
				Prompt: "شغل؟",
				Kind:   model.FreeText,
				Fields: []string{"job"},
			})
			require.NoError(t, err)
			require.Equal(t, model.Answer{Text: model.NoAnswer}, answer)
		})
	}
}

func TestExtractCompositeAnswer(t *testing.T) {
	e := testExtractor(t, &fakeGen{reply: `{"age_from": "20", "age_to": "30"}`})

	answer, err := e.Extract(context.Background(), []byte("opus"), model.Question{
		Prompt: "محدوده سنی کار؟",
		Kind:   model.Number,
		Fields: []string{"age_from", "age_to"},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"age_from": "20", "age_to": "30"}, answer.Fields)
}

func TestExtractCompositeFallsBackOnBadReply(t *testing.T) {
	e := testExtractor(t, &fakeGen{reply: "از بیست تا سی"})

	answer, err := e.Extract(context.Background(), []byte("opus"), model.Question{
		Prompt: "محدوده سنی کار؟",
		Kind:   model.Number,
		Fields: []string{"age_from", "age_to"},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"age_from": "null", "age_to": "null"}, answer.Fields)
}

func TestExtractSpoolsAudioAndCleansUp(t *testing.T) {
	gen := &fakeGen{reply: "کارمند"}
	e := testExtractor(t, gen)

	_, err := e.Extract(context.Background(), []byte("audio-bytes"), model.Question{
		Prompt: "شغل؟",
		Kind:   model.FreeText,
		Fields: []string{"job"},
	})
	require.NoError(t, err)

	require.Equal(t, []byte("audio-bytes"), gen.audio)
	requireTempDirEmpty(t, e.TempDir)
}

func TestExtractCleansUpOnGeneratorFailure(t *testing.T) {
	gen := &fakeGen{err: errors.New("model unavailable")}
	e := testExtractor(t, gen)

	_, err := e.Extract(context.Background(), []byte("audio-bytes"), model.Question{
		Prompt: "شغل؟",
		Kind:   model.FreeText,
		Fields: []string{"job"},
	})
	require.Error(t, err)

	requireTempDirEmpty(t, e.TempDir)
}
