// Package views holds the dashboard page the server renders into.
package views

import _ "embed"

// DashboardHTML is the unrendered dashboard page. Every stat card, the
// activity feed and the last-updated stamp carry the ids the renderer
// writes to.
//
//go:embed dashboard.html
var DashboardHTML []byte
