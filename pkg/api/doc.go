// Package api serves the render pipeline over HTTP.
//
// # Routes
//
//	POST   /v1/render?format=svg&mode=xray    render an operator posted as JSON
//	POST   /v1/operators                      store an operator, returns its id
//	GET    /v1/operators                      list stored operators
//	GET    /v1/operators/{id}                 fetch a stored operator
//	DELETE /v1/operators/{id}                 remove a stored operator
//	GET    /v1/operators/{id}/render          render a stored operator
//	GET    /v1/catalog                        list gate types
//	GET    /v1/stats                          event counters since start
//	GET    /healthz                           liveness and build stamp
//
// Render endpoints accept the query parameters format, mode, style, seed,
// cell, margin, title and refresh. The response carries the artifact bytes
// with a matching Content-Type, plus X-Mode, X-Overlap, X-Cache and ETag
// headers.
//
// Errors are JSON objects {"code": ..., "message": ..., "request_id": ...}
// with an HTTP status derived from the error code.
package api
