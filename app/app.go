package app

import (
	"github.com/mkarimi/porsesh/config"
	"github.com/mkarimi/porsesh/store"
	"github.com/mkarimi/porsesh/voice"
)

type App struct {
	*store.Store
	// Extractor is nil when no Gemini credential is configured; voice
	// processing is then disabled while the rest of the survey keeps working.
	Extractor *voice.Extractor
	config.Config
}
