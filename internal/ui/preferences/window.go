package preferences

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	noticeSecs *widget.Entry
	exportDir  *widget.Entry
	directory  *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Timeclock Settings")

	noticeSecs := widget.NewEntry()
	exportDir := widget.NewEntry()
	directory := widget.NewEntry()
	directory.SetPlaceHolder("built-in employees")

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Hide notices after"), noticeSecs, widget.NewLabel("sec")),
		widget.NewLabel("Export folder"),
		exportDir,
		widget.NewLabel("Employee directory file (applies on restart)"),
		directory,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 300))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		noticeSecs: noticeSecs,
		exportDir:  exportDir,
		directory:  directory,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.noticeSecs.SetText(strconv.Itoa(int(settings.NoticeDuration / time.Second)))
	prefs.exportDir.SetText(settings.ExportDir)
	prefs.directory.SetText(settings.DirectoryFile)
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form, keeping the previous value for anything invalid.
func (prefs *Window) collect() Settings {
	settings := prefs.settings
	if seconds, ok := parsePositiveInt(prefs.noticeSecs.Text); ok {
		settings.NoticeDuration = time.Duration(seconds) * time.Second
	}
	if dir := strings.TrimSpace(prefs.exportDir.Text); dir != "" {
		settings.ExportDir = dir
	}
	settings.DirectoryFile = strings.TrimSpace(prefs.directory.Text)
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
