// Package domain contains the core business entities and rules of orient:
// coordinates, location contexts, extracted addresses, chat messages and the
// assembled orientation report. It has no dependencies on adapters or
// external services.
package domain
