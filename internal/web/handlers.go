package web

import (
	"net/http"

	"github.com/veralin/go-mood-tunes/internal/mood"
	"github.com/veralin/go-mood-tunes/internal/recommend"
	"github.com/veralin/go-mood-tunes/internal/session"
)

// dropdownPlaceholder is the no-op first entry of the mood select.
const dropdownPlaceholder = "Choose..."

// Handlers contains HTTP handlers for the web application. Each user
// action maps to one handler invocation that reads and writes the
// session state and renders from the result.
type Handlers struct {
	resolver  *recommend.Resolver
	recs      *recommend.Service
	sessions  *session.Store
	templates *Templates
	rng       mood.Picker
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(resolver *recommend.Resolver, recs *recommend.Service, sessions *session.Store, templates *Templates, rng mood.Picker) *Handlers {
	return &Handlers{
		resolver:  resolver,
		recs:      recs,
		sessions:  sessions,
		templates: templates,
		rng:       rng,
	}
}

// Home renders the page from current session state (GET /).
// It never calls an external service.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Ensure(w, r)
	h.render(w, r, &sess.State, "")
}

// SubmitText handles a free-text mood submission (POST /mood/text).
func (h *Handlers) SubmitText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	sess := h.sessions.Ensure(w, r)
	st := &sess.State
	st.Method = session.InputTyped

	// The raw text is matched exactly against the previous input;
	// no trimming or case folding here.
	text := r.PostFormValue("feeling")

	res := h.resolver.ResolveText(r.Context(), st, text)

	warning := res.Warning
	if w2 := h.recs.Ensure(r.Context(), st, res.Changed, text); warning == "" {
		warning = w2
	}

	h.render(w, r, st, warning)
}

// SelectMood handles an explicit dropdown selection (POST /mood/select).
// This path never reaches the classifier.
func (h *Handlers) SelectMood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	sess := h.sessions.Ensure(w, r)
	st := &sess.State
	st.Method = session.InputDropdown

	selection := r.PostFormValue("mood")
	if selection == "" || selection == dropdownPlaceholder {
		h.render(w, r, st, "")
		return
	}

	res, err := h.resolver.ResolveSelection(st, selection)
	if err != nil {
		http.Error(w, "Invalid mood selection", http.StatusBadRequest)
		return
	}

	warning := h.recs.Ensure(r.Context(), st, res.Changed, "")
	h.render(w, r, st, warning)
}

// Reset ends the session and starts fresh (POST /session/reset).
func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	if sess := h.sessions.FromRequest(r); sess != nil {
		h.sessions.Delete(sess.ID)
	}
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// render writes either the full page or, for HTMX requests, just the
// result fragment.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, st *session.State, warning string) {
	data := h.pageData(r, st, warning)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var err error
	if r.Header.Get("HX-Request") == "true" {
		err = h.templates.RenderPartial(w, "result", data)
	} else {
		err = h.templates.Render(w, "home", data)
	}
	if err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

// pageData builds the render model from session state.
func (h *Handlers) pageData(r *http.Request, st *session.State, warning string) HomePageData {
	data := HomePageData{
		PageData: PageData{
			Title:       "Mood Tunes",
			CurrentPath: r.URL.Path,
		},
		Method:     st.Method,
		LastInput:  st.LastInput,
		Moods:      mood.Selectable,
		Mood:       st.FinalMood,
		MoodLabel:  st.FinalMood.Title(),
		Emoji:      st.FinalMood.Emoji(),
		Suggestion: mood.Suggestion(st.FinalMood, h.rng),
		HasMood:    st.FinalMood != mood.Unknown,
		Warning:    warning,
	}

	if st.Video != nil {
		data.Video = &VideoData{
			Found:    st.Video.Found,
			Title:    st.Video.Title,
			URL:      st.Video.URL,
			EmbedURL: st.Video.EmbedURL,
		}
	}

	return data
}
