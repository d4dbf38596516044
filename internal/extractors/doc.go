// Package extractors provides implementations of the Extractor interface
// for the document formats Patent2SDG accepts, plus the registry that
// dispatches documents to them by MIME type.
//
// Extractors for the same MIME type form an ordered fallback chain: the
// registry tries them from highest to lowest priority until one produces
// text. Extractors are registered with the Registry at startup.
package extractors
