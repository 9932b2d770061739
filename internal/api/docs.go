package api

import (
	_ "embed"
	"encoding/json"
	"net/http"
)

const docsPath = "/docs"

//go:embed openapi.yaml
var openAPIDocument []byte

// RegisterDocsRoutes mounts the interactive API reference and the raw OpenAPI
// document. The bare root redirects to the reference page.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.Handle("GET /{$}", http.RedirectHandler(docsPath, http.StatusMovedPermanently))
	mux.HandleFunc("GET "+docsPath, serveReferencePage)
	mux.HandleFunc("GET "+docsPath+"/openapi", serveDocumentJSON)
	mux.HandleFunc("GET "+docsPath+"/openapi.yaml", serveDocumentYAML)
}

// serveDocumentJSON renders the parsed document, which is what the
// reference page loads.
func serveDocumentJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}
	body, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}
	writeDoc(w, "application/json", body)
}

func serveDocumentYAML(w http.ResponseWriter, _ *http.Request) {
	writeDoc(w, "application/yaml", openAPIDocument)
}

func serveReferencePage(w http.ResponseWriter, _ *http.Request) {
	writeDoc(w, "text/html; charset=utf-8", []byte(referencePage))
}

func writeDoc(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(body) //nolint:errcheck // client may be gone
}

const referencePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Lead Market API reference</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin:0">
  <div id="reference"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '/docs/openapi', dom_id: '#reference', deepLinking: true });
  </script>
</body>
</html>`
