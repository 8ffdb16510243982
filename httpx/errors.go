package httpx

import (
	"net/http"
	"net/url"

	"github.com/go-chi/render"

	"github.com/mkarimi/porsesh/log"
)

// Will log an error code at the given level, and send a JSON body of the
// form {"error": msg} with the given status
func LogErrorJSON(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, msg string) {
	log.Log(level, code+":", msg)
	render.Status(r, status)
	render.JSON(w, r, map[string]any{"error": msg})
}

// Flash redirects back to the survey form carrying a status message the
// page renders on load.
func Flash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	q := url.Values{"kind": {kind}, "flash": {msg}}
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}
