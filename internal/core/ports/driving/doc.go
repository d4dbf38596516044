// Package driving defines the inbound ports of the extraction core:
// interfaces implemented by core services and consumed by driving
// adapters (the CLI, the watch mode).
package driving
