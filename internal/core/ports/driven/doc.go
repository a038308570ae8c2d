// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the language-model provider, position
// sources, and configuration/prompt/session stores.
package driven
