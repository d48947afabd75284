// Package form holds the state of a single form instance: the current value
// of every field, the current validation message of every field, and the
// initial snapshot used by Reset.
//
// A Form is owned by one caller and is not safe for concurrent use. Every
// mutation is applied synchronously and then announced to subscribers, which
// lets a presentation layer re-render after each change, blur, submit or
// reset.
//
// Field names are fixed at construction. Operations that reference an
// unknown field are ignored and reported through the configured logger at
// warn level.
package form
