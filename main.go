package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"BF2SaveSwitcher/internal/config"
	"BF2SaveSwitcher/internal/logger"
	"BF2SaveSwitcher/internal/pin"
	"BF2SaveSwitcher/internal/savefile"
	"BF2SaveSwitcher/internal/session"
)

var (
	successColor = color.NRGBA{G: 128, A: 255}
	failureColor = color.NRGBA{R: 200, A: 255}
)

// fyneView adapts the widgets to session.View. Everything runs on the Fyne
// event loop except ClearStatus, which arrives from the status timer.
type fyneView struct {
	folderEntry *widget.Entry
	fileSelect  *widget.Select
	pinCheck    *widget.Check
	status      *canvas.Text
}

func (v *fyneView) SetFolderText(path string) {
	v.folderEntry.SetText(path)
}

func (v *fyneView) SetFiles(files []string, selected string) {
	v.fileSelect.SetOptions(files)
	if selected == "" {
		v.fileSelect.ClearSelected()
		return
	}
	v.fileSelect.SetSelected(selected)
}

func (v *fyneView) SetPin(on bool) {
	v.pinCheck.SetChecked(on)
}

func (v *fyneView) SetStatus(text string, ok bool) {
	if ok {
		v.status.Color = successColor
	} else {
		v.status.Color = failureColor
	}
	v.status.Text = text
	v.status.Refresh()
}

func (v *fyneView) ClearStatus() {
	fyne.Do(func() {
		v.status.Text = ""
		v.status.Refresh()
	})
}

func main() {
	log := logger.New()

	a := app.NewWithID("com.mawmz.bf2saveswitcher")
	w := a.NewWindow("BF2 Save Switcher")
	w.Resize(fyne.NewSize(540, 220))

	view := &fyneView{}
	var sess *session.Session

	view.folderEntry = widget.NewEntry()
	view.folderEntry.SetPlaceHolder("Save folder…")
	view.folderEntry.OnChanged = func(path string) {
		sess.Dispatch(session.FolderTyped{Path: path})
	}

	view.fileSelect = widget.NewSelect(nil, func(name string) {
		sess.Dispatch(session.FileSelected{Name: name})
	})
	view.fileSelect.PlaceHolder = "(no save files)"

	view.pinCheck = widget.NewCheck("Pin on top", func(on bool) {
		sess.Dispatch(session.PinToggled{On: on})
	})

	view.status = canvas.NewText("", successColor)
	view.status.TextStyle = fyne.TextStyle{Bold: true}
	view.status.Alignment = fyne.TextAlignCenter

	sess = session.New(view, savefile.New(log), config.NewStore(log),
		func(on bool) { pin.Apply(w, on) }, log)

	browseBtn := widget.NewButton("Browse…", func() {
		dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			sess.Dispatch(session.FolderPicked{Path: uri.Path()})
		}, w).Show()
	})

	overwriteBtn := widget.NewButtonWithIcon("Overwrite", theme.ConfirmIcon(), func() {
		sess.Dispatch(session.ConfirmPressed{})
	})

	root := container.NewVBox(
		widget.NewLabelWithStyle("Save folder", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, browseBtn, view.folderEntry),
		widget.NewLabelWithStyle("Save file", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.fileSelect,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, view.pinCheck, overwriteBtn, view.status),
	)
	w.SetContent(root)
	w.SetOnClosed(sess.Close)

	sess.Dispatch(session.Started{})

	w.ShowAndRun()
}
