// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock exposes function fields so tests can
// override a single method, with map-backed defaults for the rest.
package mocks
