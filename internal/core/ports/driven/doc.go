// Package driven defines the outbound ports of the extraction core:
// interfaces implemented by infrastructure adapters (extractors, config
// storage) and consumed by core services.
package driven
