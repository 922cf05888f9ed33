// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the grading service and renders
// the selected file, submission state, analysis report, and settings. All UI
// strings are localized via Localization.
package ui
