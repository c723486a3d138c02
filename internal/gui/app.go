// Package gui provides a native desktop theme previewer using Fyne.
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/fsnotify/fsnotify"

	"tinct/pkg/api"
	"tinct/pkg/swatch"
)

// App represents the theme previewer application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	theme      *api.Theme
	scale      float64

	// Category navigation: index 0 shows the whole sheet, higher
	// indexes show one color category at a time.
	categories   []string
	currentIndex int

	// UI components
	sheetImage      *canvas.Image
	categoryLabel   *widget.Label
	prevButton      *widget.Button
	nextButton      *widget.Button
	zoomInBtn       *widget.Button
	zoomOutBtn      *widget.Button
	reloadBtn       *widget.Button
	scrollContainer *container.Scroll

	watcher *fsnotify.Watcher
}

// NewApp creates a new theme previewer application.
func NewApp() *App {
	a := &App{
		fyneApp: app.New(),
		scale:   1.0,
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("Tinct Theme Previewer")
	a.mainWindow.Resize(fyne.NewSize(900, 700))

	return a
}

// Run starts the application.
func (a *App) Run() {
	a.buildUI()
	a.mainWindow.ShowAndRun()
}

// RunWithFile starts the application with a theme already loaded.
func (a *App) RunWithFile(path string) {
	a.buildUI()

	// Load file after window is ready
	go func() {
		if err := a.loadFile(path); err != nil {
			dialog.ShowError(err, a.mainWindow)
		}
	}()

	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	// Create placeholder image
	a.sheetImage = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	a.sheetImage.FillMode = canvas.ImageFillContain
	a.sheetImage.ScaleMode = canvas.ImageScaleSmooth

	// Category label
	a.categoryLabel = widget.NewLabel("No theme loaded")
	a.categoryLabel.Alignment = fyne.TextAlignCenter

	// Navigation buttons
	a.prevButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.prevCategory)
	a.prevButton.Disable()

	a.nextButton = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.nextCategory)
	a.nextButton.Disable()

	// Zoom buttons
	a.zoomInBtn = widget.NewButtonWithIcon("", theme.ZoomInIcon(), a.zoomIn)
	a.zoomOutBtn = widget.NewButtonWithIcon("", theme.ZoomOutIcon(), a.zoomOut)

	// Reload button
	a.reloadBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.reloadTheme)
	a.reloadBtn.Disable()

	// Open button
	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), a.openFile)

	// Toolbar
	toolbar := container.NewHBox(
		openBtn,
		a.reloadBtn,
		widget.NewSeparator(),
		a.prevButton,
		a.categoryLabel,
		a.nextButton,
		widget.NewSeparator(),
		a.zoomOutBtn,
		widget.NewLabel("Zoom"),
		a.zoomInBtn,
	)

	// Scroll container for the sheet
	a.scrollContainer = container.NewScroll(a.sheetImage)

	// Main layout
	content := container.NewBorder(
		container.NewPadded(toolbar), // Top
		nil,                          // Bottom
		nil,                          // Left
		nil,                          // Right
		a.scrollContainer,            // Center
	)

	a.mainWindow.SetContent(content)

	// Set up keyboard shortcuts
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
	a.mainWindow.SetOnClosed(a.stopWatching)
}

// handleKey handles keyboard navigation.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyUp, fyne.KeyPageUp:
		a.prevCategory()
	case fyne.KeyRight, fyne.KeyDown, fyne.KeyPageDown, fyne.KeySpace:
		a.nextCategory()
	case fyne.KeyHome:
		a.goToCategory(0)
	case fyne.KeyEnd:
		a.goToCategory(len(a.categories))
	case fyne.KeyPlus, fyne.KeyEqual:
		a.zoomIn()
	case fyne.KeyMinus:
		a.zoomOut()
	case fyne.KeyR:
		a.reloadTheme()
	}
}

// openFile shows a file dialog and loads the selected theme.
func (a *App) openFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := a.loadFile(path); err != nil {
			dialog.ShowError(err, a.mainWindow)
		}
	}, a.mainWindow)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".toml"}))
	fd.Show()
}

// loadFile loads a theme file and starts watching it for changes.
func (a *App) loadFile(path string) error {
	th, err := api.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open theme: %w", err)
	}

	a.theme = th
	a.categories = th.ColorCategories()
	a.currentIndex = 0

	// Update window title
	title := th.Info().Name
	if title == "" {
		title = path
	}
	a.mainWindow.SetTitle(fmt.Sprintf("Tinct - %s", title))

	a.reloadBtn.Enable()
	a.updateNavigation()

	if err := a.watchFile(path); err != nil {
		// Live reload is best-effort; the theme is already loaded
		fmt.Printf("Warning: cannot watch %s: %v\n", path, err)
	}

	return a.renderCurrent()
}

// reloadTheme re-reads the theme from disk and re-renders.
func (a *App) reloadTheme() {
	if a.theme == nil {
		return
	}
	if err := a.theme.Reload(); err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	a.categories = a.theme.ColorCategories()
	if a.currentIndex > len(a.categories) {
		a.currentIndex = 0
	}
	a.updateNavigation()
	a.renderCurrent()
}

// watchFile replaces the active file watcher with one for path. Theme
// edits re-register the tokens and refresh the preview.
func (a *App) watchFile(path string) error {
	a.stopWatching()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	a.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					a.reloadTheme()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}

// stopWatching closes the active file watcher, if any.
func (a *App) stopWatching() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
}

// renderCurrent renders and displays the current view.
func (a *App) renderCurrent() error {
	if a.theme == nil {
		return nil
	}

	opts := []swatch.Option{swatch.Scale(a.scale)}

	var img *image.RGBA
	if a.currentIndex == 0 {
		img = a.theme.RenderSheet(opts...)
	} else {
		rendered, err := a.theme.RenderCategory(a.categories[a.currentIndex-1], opts...)
		if err != nil {
			return fmt.Errorf("failed to render category: %w", err)
		}
		img = rendered
	}

	// Update image
	a.sheetImage.Image = img
	a.sheetImage.SetMinSize(fyne.NewSize(float32(img.Bounds().Dx()), float32(img.Bounds().Dy())))
	a.sheetImage.Refresh()

	// Reset scroll position
	a.scrollContainer.ScrollToTop()

	return nil
}

// updateNavigation updates navigation buttons and the category label.
func (a *App) updateNavigation() {
	if a.theme == nil {
		a.categoryLabel.SetText("No theme loaded")
		a.prevButton.Disable()
		a.nextButton.Disable()
		return
	}

	if a.currentIndex == 0 {
		a.categoryLabel.SetText("All categories")
	} else {
		a.categoryLabel.SetText(fmt.Sprintf("%s (%d of %d)",
			a.categories[a.currentIndex-1], a.currentIndex, len(a.categories)))
	}

	if a.currentIndex > 0 {
		a.prevButton.Enable()
	} else {
		a.prevButton.Disable()
	}

	if a.currentIndex < len(a.categories) {
		a.nextButton.Enable()
	} else {
		a.nextButton.Disable()
	}
}

// prevCategory navigates to the previous view.
func (a *App) prevCategory() {
	if a.theme == nil || a.currentIndex <= 0 {
		return
	}
	a.currentIndex--
	a.updateNavigation()
	a.renderCurrent()
}

// nextCategory navigates to the next view.
func (a *App) nextCategory() {
	if a.theme == nil || a.currentIndex >= len(a.categories) {
		return
	}
	a.currentIndex++
	a.updateNavigation()
	a.renderCurrent()
}

// goToCategory navigates to a specific view index.
func (a *App) goToCategory(index int) {
	if a.theme == nil {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(a.categories) {
		index = len(a.categories)
	}
	if index != a.currentIndex {
		a.currentIndex = index
		a.updateNavigation()
		a.renderCurrent()
	}
}

// zoomIn increases the render scale.
func (a *App) zoomIn() {
	if a.scale < 4.0 {
		a.scale *= 1.25
		a.renderCurrent()
	}
}

// zoomOut decreases the render scale.
func (a *App) zoomOut() {
	if a.scale > 0.25 {
		a.scale /= 1.25
		a.renderCurrent()
	}
}
