package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tosoham/ResumeGrader/internal/config"
	"github.com/tosoham/ResumeGrader/internal/export"
	"github.com/tosoham/ResumeGrader/internal/grader"
	"github.com/tosoham/ResumeGrader/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.tosoham.resume-grader")
	myWindow := myApp.NewWindow("Resume Grader")
	myWindow.Resize(fyne.NewSize(900, 700))

	// Initialize services
	settings := config.NewSettings(myApp)
	graderSvc := grader.NewService(grader.NewClient(settings.GetServerBaseURL(), settings.GetRequestTimeout()))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, graderSvc, export.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
