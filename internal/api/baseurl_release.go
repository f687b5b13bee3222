//go:build !dev

package api

// DefaultBaseURL is the production backend endpoint. The endpoint is chosen at
// build time; build with -tags dev for the local development backend.
const DefaultBaseURL = "https://melmoskitchen-backend.onrender.com/api"
