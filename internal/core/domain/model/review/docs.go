// Package review models the two-phase review of executed routes: the
// route validation a production clerk performs after execution, and the
// supervisor review that follows it. The diff between a route's planned
// steps and a proposed adjustment draft is computed here as a pure
// function, so the review screens and the approval records agree on what
// changed.
package review
