package routes

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/mkarimi/porsesh/app"
	"github.com/mkarimi/porsesh/httpx"
	"github.com/mkarimi/porsesh/log"
	"github.com/mkarimi/porsesh/model"
)

// ProcessVoice extracts a structured answer for one question from an
// uploaded audio clip. The client still submits the prefilled answer through
// the regular form; nothing is persisted here.
func ProcessVoice(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Extractor == nil {
			httpx.LogErrorJSON(w, r, http.StatusInternalServerError, log.WarnLevel,
				"voice.config", "Google API key not configured")
			return
		}

		file, header, err := r.FormFile("audio")
		if err != nil {
			httpx.LogErrorJSON(w, r, http.StatusBadRequest, log.DebugLevel,
				"voice.audio", "No audio file provided")
			return
		}
		defer file.Close()

		q, ok := parseQuestion(r)
		if !ok {
			httpx.LogErrorJSON(w, r, http.StatusBadRequest, log.DebugLevel,
				"voice.question", "Missing question data")
			return
		}

		audio, err := io.ReadAll(file)
		if err != nil || len(audio) == 0 || header.Filename == "" {
			httpx.LogErrorJSON(w, r, http.StatusBadRequest, log.DebugLevel,
				"voice.audio", "No audio file selected")
			return
		}

		answer, err := app.Extractor.Extract(r.Context(), audio, q)
		if err != nil {
			log.Errorf("voice.extract: %s", err)
			render.JSON(w, r, map[string]any{"success": false, "error": err.Error()})
			return
		}

		render.JSON(w, r, map[string]any{"success": true, "answer": answer})
	}
}

// parseQuestion decides the question variant once, at the boundary.
func parseQuestion(r *http.Request) (q model.Question, ok bool) {
	q.Prompt = r.FormValue("question_text")
	kind, kindOK := model.ParseQuestionKind(r.FormValue("question_type"))
	q.Kind = kind
	q.Options = splitList(r.FormValue("question_options"))
	q.Fields = splitList(r.FormValue("target_fields"))

	if q.Prompt == "" || !kindOK || len(q.Fields) == 0 {
		return q, false
	}
	return q, true
}

func splitList(s string) (items []string) {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return
}
