// Package api implements the HTTP layer of the task service: request and
// response shapes, the registration/login and task CRUD handlers, and the
// mapping from internal errors to status codes and safe client messages.
// Handlers stay thin; authorization and cache behavior live in the service
// layer.
package api
