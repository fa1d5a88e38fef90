// Package eloquent defines the cursor protocol shared by every lazy sequence of this module.
//
// # Summary
//
// A sequence is a pull based, restartable view over key/value pairs.
// Its length is not known until it is fully traversed, thus it can range from zero to infinity.
// Pipelines are built by wrapping a source and chaining adapters (filter, transform, limit, append, cycle),
// each adapter owning the cursor it wraps.
// Nothing is materialised until a terminal operation (ToArray, Size, First, ...) pulls the values through the chain.
//
// The implementations live in the sequences package,
// while the optional, preconditions and objects packages hold the small collaborators the sequences depend on.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package eloquent
