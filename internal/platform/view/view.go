// Package view wires the embedded templates into gin and renders the
// shared error page.
package view

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"portal_backend/web"
)

// MustTemplates parses the embedded page templates, exiting on failure.
// Called once at startup.
func MustTemplates() *template.Template {
	t, err := web.Templates()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	return t
}

// Error renders the generic error page. Details never reach the client;
// the caller logs them server-side.
func Error(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"Status": status, "Message": message})
}
