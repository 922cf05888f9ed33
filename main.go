package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/tosoham/ResumeGrader/internal/config"
	"github.com/tosoham/ResumeGrader/internal/export"
	"github.com/tosoham/ResumeGrader/internal/grader"
	"github.com/tosoham/ResumeGrader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tosoham.resume-grader"
	AppName = "Resume Grader"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("Resume Grader v%s starting...\n", version)

	// Load optional .env file so the grading service URL can be overridden
	// without touching stored preferences. A missing file is not an error.
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment overrides from .env")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	graderSvc := grader.NewService(grader.NewClient(settings.GetServerBaseURL(), settings.GetRequestTimeout()))
	exportSvc := export.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, graderSvc, exportSvc)

	// Show and run
	myWindow.ShowAndRun()
}
