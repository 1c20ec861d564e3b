// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"glazing-estimator/internal/app"
	"glazing-estimator/internal/photo"
	"glazing-estimator/internal/pricing"
	"glazing-estimator/internal/version"
	"glazing-estimator/ui/canvas"
	"glazing-estimator/ui/dialogs"
	"glazing-estimator/ui/panels"
	"glazing-estimator/ui/prefs"
)

const zoomStep = 1.25

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.PhotoCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Glazing Estimator")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(1100, 750))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewPhotoCanvas(mw.state)
	mw.sidePanel = panels.NewSidePanel(mw.state, mw.Window)
	mw.statusBar = widget.NewLabel("Open a photo to begin")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar,   // top
		nil,       // bottom
		nil,       // left
		nil,       // right
		mw.canvas, // center
	)

	split := container.NewHSplit(
		mw.sidePanel,
		canvasArea,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	resetBtn := widget.NewButton("Fit", mw.onResetView)

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		resetBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Photo...", mw.onOpenPhoto),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Copy Summary", mw.onCopySummary),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear Annotations", mw.onClearAnnotations),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Pricing Rates...", mw.onEditRates),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Reset View", mw.onResetView),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventPhotoLoaded, func(data interface{}) {
		if p, ok := data.(*photo.Photo); ok && p != nil {
			mw.SetTitle("Glazing Estimator - " + filepath.Base(p.Path))
			mw.updateStatus(fmt.Sprintf("Loaded %s (%dx%d)", filepath.Base(p.Path), p.Width, p.Height))
		}
		mw.canvas.Refresh()
	})

	mw.state.On(app.EventAnnotationsChanged, func(interface{}) {
		n := len(mw.state.Annotations().Measurements())
		if _, calibrated := mw.state.Annotations().Calibration(); !calibrated {
			mw.updateStatus("Draw the reference object to calibrate")
		} else if total, ok := mw.state.TotalArea(); ok {
			mw.updateStatus(fmt.Sprintf("%d windows, %.2f sq ft", n, total))
		}
	})

	mw.state.On(app.EventCalibrationChanged, func(interface{}) {
		preset, inches, useCustom := mw.state.CalibrationSelection()
		mw.prefs.SetString(prefs.KeyPreset, preset)
		mw.prefs.SetFloat(prefs.KeyCustomInches, inches)
		mw.prefs.SetBool(prefs.KeyUseCustom, useCustom)
		mw.savePrefs()
	})

	mw.state.On(app.EventPolicyChanged, func(interface{}) {
		policy := mw.state.Policy()
		mw.prefs.SetString(prefs.KeyPolicy, policy.Name())
		if rates, ok := policy.(pricing.Rates); ok {
			mw.prefs.SetFloat(prefs.KeyCostRate, rates.CostPerSqFt)
			mw.prefs.SetFloat(prefs.KeyRetailLowRate, rates.RetailLowPerSqFt)
			mw.prefs.SetFloat(prefs.KeyRetailHiRate, rates.RetailHighPerSqFt)
		}
		mw.savePrefs()
	})
}

func (mw *MainWindow) savePrefs() {
	if err := mw.prefs.Save(); err != nil {
		log.Printf("saving preferences: %v", err)
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDirectory)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDirectory, filepath.Dir(filePath))
	mw.savePrefs()
}

// Menu action handlers

func (mw *MainWindow) onOpenPhoto() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)

		p, err := photo.Load(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.state.SetPhoto(p)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".webp"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onCopySummary() {
	text, ok := mw.state.SummaryText()
	if !ok {
		mw.updateStatus("Nothing to copy: calibrate and mark at least one window")
		return
	}
	mw.Clipboard().SetContent(text)
	mw.updateStatus("Summary copied to clipboard")
}

func (mw *MainWindow) onClearAnnotations() {
	mw.state.Annotations().Clear()
	mw.state.Controller().Cancel()
	mw.state.Emit(app.EventAnnotationsChanged, nil)
}

func (mw *MainWindow) onEditRates() {
	rates, ok := mw.state.Policy().(pricing.Rates)
	if !ok {
		rates = pricing.DefaultRates()
	}
	dialogs.NewRatesDialog(rates, mw.Window, func(r pricing.Rates) {
		mw.state.SetPolicy(r)
	}).Show()
}

func (mw *MainWindow) onZoomIn() {
	mw.zoomAtCenter(zoomStep)
}

func (mw *MainWindow) onZoomOut() {
	mw.zoomAtCenter(1 / zoomStep)
}

func (mw *MainWindow) zoomAtCenter(factor float64) {
	size := mw.canvas.Size()
	mw.state.Controller().Zoom(factor, float64(size.Width)/2, float64(size.Height)/2)
	mw.canvas.Refresh()
}

func (mw *MainWindow) onResetView() {
	mw.state.Controller().ResetView()
	mw.canvas.Refresh()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Glazing Estimator",
		fmt.Sprintf("Glazing Estimator v%s\n\n"+
			"Estimate window glazing area and price from a photo.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
