// Package service contains the application's orchestration layer. The
// TaskService coordinates the record store and the cache layer: reads are
// cache-aside, writes invalidate the affected cache scopes, and every
// operation enforces the ownership/role authorization policy in one place.
package service
