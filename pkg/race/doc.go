// Package race holds the value types shared by the timeout combinators:
// Outcome (Completed or Expired), Either (the side-tagged result of a race),
// and Operation (the computation being raced).
//
// The combinators themselves live in subpackages:
// - core: the runtime primitives Go, Sleep, Ready, Never and Race
// - solo: WithTimeout, Within and Finally
// - mass: channel-lifted WithTimeout
package race
