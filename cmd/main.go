package main

import (
	"context"
	"log"

	"timeclock/internal/backend/mock"
	"timeclock/internal/core/controller"
	"timeclock/internal/platform"
	"timeclock/internal/storage"
	"timeclock/internal/ui/preferences"
	"timeclock/internal/ui/timecard"
	"timeclock/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "Timeclock"

func main() {
	settingsPath, err := storage.SettingsPath(appName)
	if err != nil {
		log.Fatalf("settings path: %v", err)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	backend := newBackend(settings.DirectoryFile)
	ctrl := controller.New(backend, controller.Options{})
	defer ctrl.Close()
	if _, err := ctrl.LoadEmployees(context.Background()); err != nil {
		log.Printf("load employees: %v", err)
	}

	fyneApp := app.NewWithID("com.timeclock.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	desktopApp, hasTray := fyneApp.(desktop.App)

	options := timecardOptions(settings)
	options.HideOnClose = hasTray
	window := timecard.New(fyneApp, ctrl, options)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		window.UpdateOptions(timecardOptions(settings))
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	if hasTray {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        window.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				window.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		trayManager.SetStatus("", ctrl.Snapshot().Display.Message)

		events := ctrl.Subscribe(8)
		go func() {
			for event := range events {
				if event.Type == controller.EventDirectory {
					continue
				}
				employee := ""
				if event.Employee != nil {
					employee = event.Employee.Name
				}
				message := event.Display.Message
				fyne.Do(func() {
					trayManager.SetStatus(employee, message)
				})
			}
		}()
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	window.Start()
	window.Show()
	fyneApp.Run()
	window.Stop()
}

func newBackend(directoryFile string) *mock.Backend {
	directory, found, err := storage.LoadDirectory(directoryFile)
	if err != nil {
		log.Printf("load directory %s: %v", directoryFile, err)
		return mock.NewDefault()
	}
	if !found {
		if directoryFile != "" {
			seed := storage.Directory{Employees: mock.DefaultEmployees(), Activity: mock.DefaultActivity()}
			if err := storage.SaveDirectory(directoryFile, seed); err != nil {
				log.Printf("seed directory %s: %v", directoryFile, err)
			} else {
				log.Printf("wrote built-in employees to %s", directoryFile)
			}
		}
		return mock.NewDefault()
	}
	log.Printf("loaded %d employees from %s", len(directory.Employees), directoryFile)
	return mock.New(directory.Employees, directory.Activity)
}

func timecardOptions(settings preferences.Settings) timecard.Options {
	return timecard.Options{
		NoticeDuration: settings.NoticeDuration,
		ExportDir:      settings.ExportDir,
		Clock:          settings.ClockConfig(),
	}
}
