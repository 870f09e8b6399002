package httpserver

import (
	"net/http"
	"path/filepath"
	"strings"
)

const viewCookieName = "xiangqi_view"

// RegisterStaticRoutes mounts:
// - /web/*        -> webDir
// - /web_mobile/* -> webDir/mobile
// - /             -> redirect by ?view=, cookie, then User-Agent
func RegisterStaticRoutes(mux *http.ServeMux, webDir string) {
	if webDir == "" {
		webDir = "."
	}
	mobileDir := filepath.Join(webDir, "mobile")

	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	mux.Handle("/web_mobile/", http.StripPrefix("/web_mobile/", http.FileServer(http.Dir(mobileDir))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		target := "/web/"
		if pickView(w, r) == "mobile" {
			target = "/web_mobile/"
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, target, http.StatusFound)
	})
}

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	ua := strings.ToLower(r.UserAgent())
	for _, n := range []string{"android", "iphone", "ipad", "mobile", "harmony"} {
		if strings.Contains(ua, n) {
			return "mobile"
		}
	}
	return "web"
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop":
		return "web", true
	case "mobile", "m":
		return "mobile", true
	}
	return "", false
}
