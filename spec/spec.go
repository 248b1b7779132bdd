// Package spec holds the People API contract. internal/handler/gen is
// generated from openapi.yaml and the router serves it at /openapi.yaml.
package spec

import _ "embed"

// OpenAPI is openapi.yaml as shipped in the binary.
//
//go:embed openapi.yaml
var OpenAPI []byte
