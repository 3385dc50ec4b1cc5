package timecard

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NoticeKind selects how a notice is drawn.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeDanger  NoticeKind = "danger"
)

type notice struct {
	kind  NoticeKind
	label *widget.Label
}

// noticeArea stacks transient messages above the clock.
type noticeArea struct {
	box      *fyne.Container
	duration time.Duration
	shown    []notice
}

func newNoticeArea(duration time.Duration) *noticeArea {
	if duration <= 0 {
		duration = 3 * time.Second
	}
	return &noticeArea{box: container.NewVBox(), duration: duration}
}

// Show adds a notice and schedules its removal.
func (area *noticeArea) Show(kind NoticeKind, message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.SuccessImportance
	if kind == NoticeDanger {
		label.Importance = widget.DangerImportance
	}

	area.shown = append(area.shown, notice{kind: kind, label: label})
	area.box.Add(label)

	time.AfterFunc(area.duration, func() {
		fyne.Do(func() {
			area.dismiss(label)
		})
	})
}

// Messages returns the visible notices of the given kind, oldest first.
func (area *noticeArea) Messages(kind NoticeKind) []string {
	var messages []string
	for _, shown := range area.shown {
		if shown.kind == kind {
			messages = append(messages, shown.label.Text)
		}
	}
	return messages
}

func (area *noticeArea) dismiss(label *widget.Label) {
	for i, shown := range area.shown {
		if shown.label == label {
			area.shown = append(area.shown[:i], area.shown[i+1:]...)
			break
		}
	}
	area.box.Remove(label)
}
