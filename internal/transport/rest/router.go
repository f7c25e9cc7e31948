package rest

import "net/http"

// method guards a handler so that any other HTTP method gets the
// METHOD_NOT_ALLOWED envelope instead of the mux default.
func method(m string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			writeErr(w, CodeMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErr(w, CodeNotFound)
}

func baseRoutes(mux *http.ServeMux, info *InfoHandler, health *HealthHandler) {
	mux.HandleFunc("/public/info", method(http.MethodGet, info.Info))
	mux.HandleFunc("/health", method(http.MethodGet, health.Health))
	mux.HandleFunc("/ready", method(http.MethodGet, health.Ready))
	mux.HandleFunc("/live", method(http.MethodGet, health.Live))
	mux.HandleFunc("/", notFound)
}

// NewMailRouter builds the route table of the mail service.
func NewMailRouter(info *InfoHandler, health *HealthHandler, mails *MailHandler) http.Handler {
	mux := http.NewServeMux()
	baseRoutes(mux, info, health)
	mux.HandleFunc("/mail/new", method(http.MethodPost, mails.New))
	mux.HandleFunc("/mail/view", method(http.MethodPost, mails.View))
	return mux
}

// NewEventRouter builds the route table of the log service.
func NewEventRouter(info *InfoHandler, health *HealthHandler, events *EventHandler) http.Handler {
	mux := http.NewServeMux()
	baseRoutes(mux, info, health)
	mux.HandleFunc("/event/new", method(http.MethodPost, events.New))
	mux.HandleFunc("/event/view", method(http.MethodPost, events.View))
	return mux
}
