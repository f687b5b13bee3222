//go:build dev

package api

// DefaultBaseURL points at a locally running backend in dev builds.
const DefaultBaseURL = "http://localhost:5000/api"
