// Package grader implements the client side of the resume grading contract:
// a multipart upload to the grading service, schema validation of whatever
// JSON comes back, and a submission lifecycle surfaced to the UI through an
// update callback.
package grader
