// Package model defines domain data structures used across the app: resume
// submissions, the analysis report returned by the grading service, and status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
package model
