// Package api carries the service's OpenAPI contract so binaries can embed
// and serve it.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3 document describing the HTTP API.
//
//go:embed openapi.yml
var OpenAPISpec []byte
