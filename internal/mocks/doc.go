// Package mocks provides hand-written mock implementations of the
// application's interfaces for testing. Each mock accepts optional
// function fields for custom behavior and falls back to a simple
// in-memory default implementation.
package mocks
