package http

import "net/http"

// sessionCookie is the whole authentication check: its presence means
// signed in. Issuing and clearing it belongs to an identity provider that
// sits in front of this service.
const sessionCookie = "session"

// Page routes and their gate direction. Protected pages bounce anonymous
// visitors to the welcome page; public pages bounce signed-in users home.
var (
	protectedRoutes = []string{"/{$}", "/budget", "/reminders", "/notes", "/documents"}
	publicRoutes    = []string{"/login", "/signup", "/welcome"}
)

func isPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if route == path {
			return true
		}
	}
	return false
}

// withSessionGate redirects based on session presence and route kind.
func (s *Server) withSessionGate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie(sessionCookie)
		signedIn := err == nil

		if isPublicRoute(r.URL.Path) {
			if signedIn {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
		} else if !signedIn {
			http.Redirect(w, r, "/welcome", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// handlePage is a stand-in for page rendering, which lives client-side.
// It confirms which page the gate resolved to.
func (s *Server) handlePage(route string) http.HandlerFunc {
	name := route
	if name == "/{$}" {
		name = "/"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"page": name})
	}
}
