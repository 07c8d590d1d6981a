// Package docs registers the OpenAPI document of the HTTP surface with swag
// and serves it.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var OpenAPI []byte

type document struct{}

func (document) ReadDoc() string {
	return string(OpenAPI)
}

func init() {
	swag.Register(swag.Name, document{})
}

// RegisterRoutes serves the registered document at /docs/openapi.json.
func RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /docs/openapi.json", serveDocument)
}

func serveDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
