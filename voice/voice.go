package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/mkarimi/porsesh/log"
	"github.com/mkarimi/porsesh/model"
)

const audioMIME = "audio/webm"

// Generator is the single round trip behind an Extractor: one instruction
// plus one audio clip in, the raw reply text out. No retries, a failed call
// surfaces as an extraction failure.
type Generator interface {
	Generate(ctx context.Context, prompt string, audioPath string) (string, error)
}

// Extractor turns a short Persian/Farsi recording into a structured answer
// for one survey question.
type Extractor struct {
	gen Generator
	// TempDir receives the per-request audio spool files; empty means the
	// system default.
	TempDir string
}

func NewExtractor(ctx context.Context, apiKey, model string) (*Extractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "voice.client")
	}
	return &Extractor{gen: &gemini{client: client, model: model}}, nil
}

// NewExtractorWith wires an Extractor over a custom Generator.
func NewExtractorWith(gen Generator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract sends the audio and the question instruction to the model and
// parses the reply. The audio is spooled to a temporary file that is removed
// on every exit path.
func (e *Extractor) Extract(ctx context.Context, audio []byte, q model.Question) (model.Answer, error) {
	tmp, err := os.CreateTemp(e.TempDir, "voice-*.webm")
	if err != nil {
		return model.Answer{}, errors.Wrap(err, "voice.tempfile")
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(audio)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return model.Answer{}, errors.Wrap(err, "voice.tempfile.write")
	}

	reply, err := e.gen.Generate(ctx, Prompt(q), tmp.Name())
	if err != nil {
		return model.Answer{}, err
	}
	log.Debugf("voice.reply: %s", reply)

	return parseReply(reply, q.Fields), nil
}

// parseReply interprets the raw model reply. An empty or "null" reply is the
// no-answer sentinel. Composite questions expect a brace-delimited JSON
// object; an unusable reply degrades to a map with every field set to the
// sentinel instead of failing. Single-field replies pass through verbatim.
func parseReply(reply string, fields []string) model.Answer {
	reply = strings.TrimSpace(reply)
	if reply == "" || strings.EqualFold(reply, model.NoAnswer) {
		return model.Answer{Text: model.NoAnswer}
	}

	if len(fields) > 1 {
		if strings.HasPrefix(reply, "{") && strings.HasSuffix(reply, "}") {
			values := map[string]string{}
			if err := json.Unmarshal([]byte(reply), &values); err == nil {
				return model.Answer{Fields: values}
			}
		}
		values := make(map[string]string, len(fields))
		for _, f := range fields {
			values[f] = model.NoAnswer
		}
		return model.Answer{Fields: values}
	}

	return model.Answer{Text: reply}
}

type gemini struct {
	client *genai.Client
	model  string
}

func (g *gemini) Generate(ctx context.Context, prompt, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", errors.Wrap(err, "voice.read_audio")
	}

	m := g.client.GenerativeModel(g.model)
	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: audioMIME, Data: data},
	)
	if err != nil {
		return "", errors.Wrap(err, "voice.generate")
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("voice.generate: empty reply")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
