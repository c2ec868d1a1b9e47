// Package guide holds the static content of the YouTube ad skipper setup
// guide. The embedded script is data: it is shown, copied and saved on
// request, never run.
package guide

import (
	_ "embed"

	"ytguide/pkg/models"
)

// ScriptName is the file name the guide tells users to save the script as.
const ScriptName = "yt_ad_skipper.py"

const (
	Title   = "YouTube Ad Skipper Guide"
	Tagline = "A simple, powerful Python script to automatically skip YouTube ads. This guide will walk you through the setup process."
	Section = "Setup Instructions"
	Footer  = "Enjoy an ad-free viewing experience!"
)

//go:embed assets/yt_ad_skipper.py
var script string

var steps = []models.Step{
	{
		Ordinal:     "1",
		Title:       "Install Prerequisites",
		Description: "This script requires Python 3, pip, and a few Python packages. Open your terminal and run the following command to install the necessary libraries:",
		Code:        "pip install --upgrade pip selenium loguru",
	},
	{
		Ordinal:     "2",
		Title:       "Launch a Debuggable Browser",
		Description: "Close all instances of Chrome or Chromium. Then, launch a new one from your terminal with the remote debugging port enabled. This allows the script to connect to it.",
		Code:        "chromium-browser --remote-debugging-port=9222 --user-data-dir=~/.config/chromium/RDP_Profile",
		Note:        "Note: On macOS, the path might be '/Applications/Google Chrome.app/Contents/MacOS/Google Chrome'. On Windows, it would be the path to 'chrome.exe'.",
	},
	{
		Ordinal:     "3",
		Title:       "Save the Python Script",
		Description: "Copy the Python script below and save it in a file named " + ScriptName + " in a convenient location on your computer.",
		Nested: &models.Content{
			Kind: models.ContentCode,
			Code: models.CodeSample{Text: script, Language: "python"},
		},
	},
	{
		Ordinal:     "4",
		Title:       "Run the Skipper Script",
		Description: "Navigate to a YouTube video in the browser you opened in step 2. Then, in a new terminal window, navigate to where you saved the script and run it:",
		Code:        "python3 " + ScriptName,
		Note:        "The script will attach to the browser and start monitoring for ads. Keep the terminal window open. To stop it, press Ctrl-C.",
	},
}

// Script returns the embedded automation script verbatim.
func Script() string {
	return script
}

// Steps returns the guide's steps in display order. The slice and nested
// content are copies; callers cannot alter the guide.
func Steps() []models.Step {
	out := make([]models.Step, len(steps))
	for i, s := range steps {
		if s.Nested != nil {
			nested := *s.Nested
			s.Nested = &nested
		}
		out[i] = s
	}
	return out
}

// Page returns the whole document.
func Page() models.Page {
	return models.Page{
		Title:   Title,
		Tagline: Tagline,
		Section: Section,
		Steps:   Steps(),
		Footer:  Footer,
	}
}

// Lookup finds a step by its ordinal label.
func Lookup(ordinal string) (models.Step, bool) {
	for _, s := range Steps() {
		if s.Ordinal == ordinal {
			return s, true
		}
	}
	return models.Step{}, false
}
