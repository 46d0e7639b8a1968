// Package http exposes the hub over plain HTTP with echo: a health check, the
// WebSocket upgrade endpoint, read-only ledger inspection and Prometheus metrics.
// The ledger routes are described by api/openapi.yml and bound through the
// generated servers.ServerInterface.
//
// Endpoints:
//   - GET /health
//   - GET /caps (WebSocket, path configurable)
//   - GET /api/v1/stores/:store/pending
//   - GET /api/v1/stores/:store/received
//   - GET /api/v1/ledger/stats
//   - GET /metrics
//   - GET /swagger/* (API docs, /swagger/doc.json serves the OpenAPI document)
package http
