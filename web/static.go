package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// faviconSVG is the brand mark served as the site icon
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" rx="7" fill="#ff385c"/><path d="M16 6c-1.4 0-2.4 1-3.2 2.7L8.3 18.4c-.9 2-.2 4.1 1.7 4.9 1.4.6 2.9.2 4.2-1l1.8-1.8 1.8 1.8c1.3 1.2 2.8 1.6 4.2 1 1.9-.8 2.6-2.9 1.7-4.9l-4.5-9.7C18.4 7 17.4 6 16 6zm0 9.2c1.3 0 2.2 1 2.2 2.1 0 .9-.6 1.8-2.2 3.4-1.6-1.6-2.2-2.5-2.2-3.4 0-1.1.9-2.1 2.2-2.1z" fill="white"/></svg>`

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	// Serve the icon inline so no separate file is needed
	s.Get("/favicon.ico", faviconHandler)
	s.Get("/favicon.svg", faviconHandler)

	s.Get("/static/*", func(c rweb.Context) error {
		return serveStatic(c, staticFS, strings.TrimPrefix(c.Request().Path(), "/static/"))
	})
}

func faviconHandler(c rweb.Context) error {
	c.Response().SetHeader("Content-Type", "image/svg+xml")
	c.Response().SetHeader("Cache-Control", "public, max-age=86400")
	return c.Bytes([]byte(faviconSVG))
}

// serveStatic writes one embedded file; missing files and directories are 404
func serveStatic(c rweb.Context, staticFS fs.FS, path string) error {
	file, err := staticFS.Open(path)
	if err != nil {
		setStatus(c, http.StatusNotFound)
		return nil
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		setStatus(c, http.StatusInternalServerError)
		return nil
	}
	if stat.IsDir() {
		setStatus(c, http.StatusNotFound)
		return nil
	}

	if contentType := getContentType(path); contentType != "" {
		c.Response().SetHeader("Content-Type", contentType)
	}
	// Pages reference app.css and app.js with a ?v= suffix
	c.Response().SetHeader("Cache-Control", "public, max-age=3600")

	content, err := io.ReadAll(file)
	if err != nil {
		setStatus(c, http.StatusInternalServerError)
		return nil
	}
	return c.Bytes(content)
}

// getContentType returns the content type based on file extension
func getContentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".css"):
		return "text/css"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript"
	case strings.HasSuffix(path, ".json"):
		return "application/json"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return "image/jpeg"
	default:
		return ""
	}
}
