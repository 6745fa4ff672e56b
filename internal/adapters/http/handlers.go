package web

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"folio/internal/adapters/http/middleware"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

// TemplatesDir overrides the template root. Tests set it when the working
// directory is not the repo root.
var TemplatesDir = templatesDir

func templateFuncs(r *http.Request) template.FuncMap {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	username := ""
	superuser := false
	if ok {
		username = sess.Username
		superuser = sess.IsSuperuser
	}
	return template.FuncMap{
		"currentUsername": func() string { return username },
		"isLoggedIn":      func() bool { return username != "" },
		"isSuperuser":     func() bool { return superuser },
		"csrfToken":       func() string { return csrf.Token(r) },
		"csrfField":       func() template.HTML { return csrf.TemplateField(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return "Present"
			}
			return t.Format("Jan 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("2 Jan 2006 15:04")
		},
		"dateValue": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// renderTemplate renders a full page inside the shared layout.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	layoutPath := filepath.Join(TemplatesDir, "layout.html")
	pagePath := filepath.Join(TemplatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(templateFuncs(r)).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	// Pages may include fragment templates, like the contact form on the
	// public page.
	if _, err := tpl.ParseGlob(filepath.Join(TemplatesDir, "partials", "*.html")); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// renderPartial renders a fragment template with no surrounding layout.
// Used for the dashboard's swap targets.
func renderPartial(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	pagePath := filepath.Join(TemplatesDir, "partials", templateName)
	tpl, err := template.New(templateName).Funcs(templateFuncs(r)).ParseFiles(pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// signalChanged answers a mutation with no body and one or more change
// markers in the HX-Trigger header. The client refreshes whichever panels
// listen for those markers.
func signalChanged(w http.ResponseWriter, markers ...string) {
	w.Header().Set("HX-Trigger", strings.Join(markers, ", "))
	w.WriteHeader(http.StatusNoContent)
}

// formError answers a failed mutation by re-rendering the originating form
// with the message in its error slot, so the caller gets the form back with
// its values instead of a bare error. The 422 status keeps failure visible
// on the wire; layout.html tells htmx to swap 422 bodies.
func formError(w http.ResponseWriter, r *http.Request, formTemplate string, data map[string]any, err error) {
	if data == nil {
		data = map[string]any{}
	}
	data["Error"] = err.Error()

	pagePath := filepath.Join(TemplatesDir, "partials", formTemplate)
	tpl, terr := template.New(formTemplate).Funcs(templateFuncs(r)).ParseFiles(pagePath)
	if terr != nil {
		http.Error(w, "Template error: "+terr.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if terr := tpl.Execute(w, data); terr != nil {
		slog.Error("form_render_failed", "template", formTemplate, "error", terr.Error())
	}
}

// maxUploadBytes limits multipart form memory and upload size.
const maxUploadBytes = 10 << 20 // 10 MiB

// errNoFile is returned by saveUpload when the field carried no file.
var errNoFile = errors.New("no file in field")

// saveUpload stores a multipart file field under the media root and returns
// the stored relative path.
// PRE: r.ParseMultipartForm has been called
// POST: Returns stored path, or errNoFile when the field is empty
func saveUpload(r *http.Request, field, subdir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		// A urlencoded submission has no file parts at all; treat it the
		// same as a multipart form with the field left empty.
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", errNoFile
		}
		return "", err
	}
	defer file.Close()
	return media.Save(subdir, header.Filename, file)
}

// uploadSet tracks files stored during one request so a later failure can
// discard all of them. A mutation either keeps every upload or none.
type uploadSet struct {
	paths []string
}

// add saves one optional upload field into the set.
// POST: Returns the stored path, or "" when the field was empty
func (u *uploadSet) add(r *http.Request, field, subdir string) (string, error) {
	path, err := saveUpload(r, field, subdir)
	if errors.Is(err, errNoFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	u.paths = append(u.paths, path)
	return path, nil
}

// discard removes every file stored in this set. Called when the mutation
// the uploads belonged to failed.
func (u *uploadSet) discard() {
	for _, p := range u.paths {
		if err := media.Remove(p); err != nil {
			slog.Error("upload_discard_failed", "path", p, "error", err)
		}
	}
	u.paths = nil
}

// parseUploadForm parses a multipart or urlencoded form with a size cap.
func parseUploadForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadBytes)
	}
	return r.ParseForm()
}
