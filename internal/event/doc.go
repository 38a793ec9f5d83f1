// Package event defines the normalized event model of the engine: a closed set of event
// variants with their payloads, a category bit set for cheap filtering, and the per-frame
// queue the application loop hands to its layers.
//
// Surfaces produce events, layers observe and consume them, and the application inspects
// what is left for lifecycle events such as WindowClose.
package event
