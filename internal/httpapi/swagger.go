package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	// Registers the OpenAPI document with swag.
	_ "github.com/MINT-SJTU/Evo-SOTA.io/docs"
)

// MountSwagger serves the API document and Swagger UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
