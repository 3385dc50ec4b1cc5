package timecard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"timeclock/internal/core/clock"
	"timeclock/internal/core/controller"
	"timeclock/internal/core/model"
	"timeclock/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const pickerPlaceholder = "Choose employee..."

// Options configures the timecard window.
type Options struct {
	NoticeDuration time.Duration
	ExportDir      string
	Clock          clock.Config
	// HideOnClose keeps the app running in the tray when the window is closed.
	HideOnClose bool
}

// Window is the main time clock screen.
type Window struct {
	window     fyne.Window
	controller *controller.Controller
	options    Options
	ticker     *clock.Ticker

	timeLabel    *widget.Label
	dateLabel    *widget.Label
	picker       *widget.Select
	pickerIDs    map[string]int
	buttons      map[model.Action]*widget.Button
	statusLabel  *widget.Label
	statusBadge  *canvas.Rectangle
	activityBox  *fyne.Container
	nameEntry    *widget.Entry
	emailEntry   *widget.Entry
	exportButton *widget.Button
	notices      *noticeArea
}

// New creates the timecard window for a controller whose directory is already loaded.
func New(app fyne.App, ctrl *controller.Controller, options Options) *Window {
	window := app.NewWindow("Employee Timecard")

	tc := &Window{
		window:     window,
		controller: ctrl,
		options:    options,
		ticker:     clock.New(options.Clock),
		buttons:    make(map[model.Action]*widget.Button, len(model.Actions)),
		notices:    newNoticeArea(options.NoticeDuration),
	}

	tc.timeLabel = widget.NewLabelWithStyle("--:--:--", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	tc.timeLabel.SizeName = theme.SizeNameHeadingText
	tc.dateLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	tc.picker = widget.NewSelect(nil, tc.handleEmployeeChange)
	tc.picker.PlaceHolder = pickerPlaceholder

	tc.statusLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	tc.statusBadge = canvas.NewRectangle(styleColor(""))
	tc.statusBadge.CornerRadius = theme.InputRadiusSize()

	actionRow := container.NewGridWithColumns(len(model.Actions))
	for _, action := range model.Actions {
		action := action
		button := widget.NewButton(action.Label(), func() {
			tc.perform(action)
		})
		button.Importance = buttonImportance(action)
		tc.buttons[action] = button
		actionRow.Add(button)
	}

	tc.activityBox = container.NewVBox()
	activityCard := widget.NewCard("Today's Activity", "", container.NewVScroll(tc.activityBox))

	tc.exportButton = widget.NewButtonWithIcon("Export activity", theme.DocumentSaveIcon(), tc.export)

	tc.nameEntry = widget.NewEntry()
	tc.nameEntry.SetPlaceHolder("Full name")
	tc.emailEntry = widget.NewEntry()
	tc.emailEntry.SetPlaceHolder("name@example.com")
	form := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Name", tc.nameEntry),
			widget.NewFormItem("Email", tc.emailEntry),
		},
		SubmitText: "Add Employee",
		OnSubmit:   tc.submitEmployee,
	}
	formCard := widget.NewCard("Add New Employee", "", form)

	top := container.NewVBox(
		tc.notices.box,
		tc.timeLabel,
		tc.dateLabel,
		tc.picker,
		container.NewStack(tc.statusBadge, container.NewPadded(tc.statusLabel)),
		actionRow,
	)
	bottom := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), tc.exportButton),
		formCard,
	)

	window.SetContent(container.NewBorder(top, bottom, nil, nil, activityCard))
	window.Resize(fyne.NewSize(560, 720))
	if options.HideOnClose {
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	}

	tc.setClock(tc.ticker.Now())
	tc.reloadPicker()
	tc.render()
	return tc
}

// Show displays the window.
func (tc *Window) Show() {
	tc.window.Show()
	tc.window.RequestFocus()
}

// Start begins refreshing the clock face.
func (tc *Window) Start() {
	ticks := tc.ticker.Subscribe(1)
	tc.ticker.Start()
	go func() {
		for tick := range ticks {
			at := tick.At
			fyne.Do(func() {
				tc.setClock(at)
			})
		}
	}()
}

// Stop halts the clock face.
func (tc *Window) Stop() {
	tc.ticker.Stop()
}

// UpdateOptions applies changed preferences.
func (tc *Window) UpdateOptions(options Options) {
	tc.options.ExportDir = options.ExportDir
	if options.NoticeDuration > 0 {
		tc.options.NoticeDuration = options.NoticeDuration
		tc.notices.duration = options.NoticeDuration
	}
}

func (tc *Window) setClock(at time.Time) {
	tc.timeLabel.SetText(clock.FormatTime(at))
	tc.dateLabel.SetText(clock.FormatDate(at))
}

func (tc *Window) handleEmployeeChange(label string) {
	employeeID, ok := tc.pickerIDs[label]
	if !ok {
		tc.controller.ClearSelection()
		tc.render()
		return
	}

	if err := tc.controller.SelectEmployee(context.Background(), employeeID); err != nil {
		log.Printf("select employee: %v", err)
		tc.notices.Show(NoticeDanger, fmt.Sprintf("Could not load employee: %v", err))
	}
	tc.render()
}

func (tc *Window) perform(action model.Action) {
	if _, err := tc.controller.Perform(context.Background(), action); err != nil {
		if !errors.Is(err, controller.ErrNoEmployeeSelected) {
			tc.notices.Show(NoticeDanger, fmt.Sprintf("%s rejected: %v", action.Label(), err))
		}
		tc.render()
		return
	}
	tc.notices.Show(NoticeSuccess, action.Notice())
	tc.render()
}

func (tc *Window) submitEmployee() {
	employee, err := tc.controller.AddEmployee(context.Background(), tc.nameEntry.Text, tc.emailEntry.Text)
	if err != nil {
		if errors.Is(err, controller.ErrMissingFields) {
			tc.notices.Show(NoticeDanger, "Please fill in all fields")
			return
		}
		tc.notices.Show(NoticeDanger, fmt.Sprintf("Could not add employee: %v", err))
		return
	}

	tc.notices.Show(NoticeSuccess, fmt.Sprintf("New employee %q added successfully!", employee.Name))
	tc.nameEntry.SetText("")
	tc.emailEntry.SetText("")
	tc.reloadPicker()
}

func (tc *Window) export() {
	snapshot := tc.controller.Snapshot()
	if snapshot.Selected == nil {
		return
	}

	now := tc.ticker.Now()
	path := filepath.Join(tc.options.ExportDir, storage.ExportFileName(*snapshot.Selected, now))
	if err := storage.ExportActivity(path, *snapshot.Selected, snapshot.Activity); err != nil {
		log.Printf("export activity: %v", err)
		tc.notices.Show(NoticeDanger, fmt.Sprintf("Export failed: %v", err))
		return
	}
	log.Printf("exported activity for %s to %s", snapshot.Selected.Name, path)
	tc.notices.Show(NoticeSuccess, "Activity exported to "+path)
}

// reloadPicker replaces the picker options without touching the selection.
func (tc *Window) reloadPicker() {
	snapshot := tc.controller.Snapshot()
	labels, ids := pickerOptions(snapshot)
	tc.picker.Options = labels
	tc.pickerIDs = ids
	// A new namesake can rename the current label; assigning Selected directly
	// does not fire OnChanged.
	if snapshot.Selected != nil {
		for label, id := range ids {
			if id == snapshot.Selected.ID {
				tc.picker.Selected = label
			}
		}
	}
	tc.picker.Refresh()
}

func (tc *Window) render() {
	snapshot := tc.controller.Snapshot()

	for action, button := range tc.buttons {
		if snapshot.Controls.Enabled(action) {
			button.Enable()
		} else {
			button.Disable()
		}
	}

	tc.statusLabel.TextStyle.Bold = snapshot.Highlight
	tc.statusLabel.SetText(snapshot.Display.Message)
	tc.statusBadge.FillColor = styleColor(snapshot.Display.Style)
	tc.statusBadge.Refresh()

	rows := activityRows(snapshot)
	objects := make([]fyne.CanvasObject, 0, len(rows))
	for _, row := range rows {
		objects = append(objects, widget.NewLabel(row))
	}
	tc.activityBox.Objects = objects
	tc.activityBox.Refresh()

	if snapshot.Selected == nil {
		tc.exportButton.Disable()
	} else {
		tc.exportButton.Enable()
	}
}

func buttonImportance(action model.Action) widget.Importance {
	switch action {
	case model.ActionClockIn:
		return widget.SuccessImportance
	case model.ActionBreakStart, model.ActionBreakEnd:
		return widget.WarningImportance
	default:
		return widget.DangerImportance
	}
}
