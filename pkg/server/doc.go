// Package server is liftlog's HTTP and WebSocket layer.
//
// The UI runs entirely on the server: each WebSocket connection owns a
// LiveSession with its own dom.Document, ui.Runtime, and mounted app
// root. Client events arrive as JSON frames, are dispatched into the
// server-side document, and the state hooks' setters synchronously
// rebuild the whole tree; the session then pushes the freshly serialized
// HTML (plus chart draw calls) back to the browser.
//
// # Routes
//
//   - GET /            server-rendered page shell
//   - GET /ws          live session endpoint
//   - GET /assets/*    versioned asset cache
//   - GET /export.csv  workout entries as CSV
//   - GET /metrics     Prometheus metrics
//   - GET /healthz     liveness probe
//
// # Event addressing
//
// The HTML serializer stamps data-eid on every element with listeners.
// The browser client echoes that id in its event frames; the session
// resolves it against the current tree, so ids from a discarded render
// simply miss and are dropped.
package server
