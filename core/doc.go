// Package core defines the shared types used across the seqlog module.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single admitted log message on its way to the
// logger's worker.
//
// Levels form a strict total order from OffLevel to AllLevel. The two
// endpoints are threshold-only values: a threshold of OffLevel admits
// nothing and a threshold of AllLevel admits everything, while messages
// themselves always carry one of ErrorLevel through DebugLevel.
//
// Entry objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get an Entry with GetEntry and the worker
// returns it with PutEntry once the message has been dispatched. An
// Entry carries either a ready message string or a deferred producer
// function; the producer runs on the worker, never on the caller.
package core
