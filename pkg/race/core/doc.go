// Package core contains the runtime primitives the timeout combinators are
// built from: Future (a single-assignment cell filled by a goroutine), Go
// (spawn an operation), Sleep (suspend for a duration on the clock carried by
// the context), and Race (left-biased first-completion of two futures). It
// does not define timeout semantics itself; see package solo.
package core
