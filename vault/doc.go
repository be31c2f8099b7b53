// Package vault is a typed facade over a query-based secure credential
// store. A [Handle] freezes the store identity (service, access group,
// accessibility policy) into an immutable query template at construction
// time; every operation derives a per-call query from that template plus
// the caller's key.
//
// Raw access goes through [Handle.Read] and [Handle.Write], which return
// recoverable errors the caller must inspect. Typed access goes through the
// generic [Get]/[Set] helpers, parameterised by a [Codec]; their
// [MustGet]/[MustSet] variants panic on vault failure and exist for callers
// that treat a broken credential store as a programming-error-level fault.
//
// The store itself is an external collaborator behind the [Service]
// interface; the store package ships in-memory and SQL-backed
// implementations.
package vault
