package viewer

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"pdf-reader/internal/eventbus"
	"pdf-reader/internal/logger"
	"pdf-reader/internal/menu"
)

// Loader inspects an opened file and reports its page count, or zero when
// the count is unknown.
type Loader func(reader fyne.URIReadCloser) (int, error)

// UnknownPages is the default Loader.
func UnknownPages(fyne.URIReadCloser) (int, error) {
	return 0, nil
}

// ErrNotPDF rejects a dropped file that is not a PDF.
var ErrNotPDF = errors.New("only PDF files are supported")

// Commands the view runs for keys that have no menu entry.
const (
	cmdFirstPage = "first_page"
	cmdLastPage  = "last_page"
)

// keyCommands maps unmodified navigation keys to view commands.
var keyCommands = map[fyne.KeyName]string{
	fyne.KeyRight:    menu.IDNextPage,
	fyne.KeyPageDown: menu.IDNextPage,
	fyne.KeyLeft:     menu.IDPrevPage,
	fyne.KeyPageUp:   menu.IDPrevPage,
	fyne.KeyHome:     cmdFirstPage,
	fyne.KeyEnd:      cmdLastPage,
}

// View is the UI surface that reacts to menu commands.
type View struct {
	window   fyne.Window
	logger   logger.Logger
	loader   Loader
	version  string
	doc      *Document
	commands map[string]func()

	title         *widget.Label
	status        *widget.Label
	mainContainer *fyne.Container
}

func NewView(window fyne.Window, version string, log logger.Logger) *View {
	if log == nil {
		log = logger.NewNop()
	}
	view := &View{
		window:  window,
		logger:  log,
		loader:  UnknownPages,
		version: version,
		doc:     NewDocument(),
	}

	view.setupCommands()
	view.setupLayout()
	view.setupInput()
	view.refresh()

	return view
}

func (v *View) setupCommands() {
	v.commands = map[string]func(){
		menu.IDOpen:        v.showOpenDialog,
		menu.IDClose:       v.whenLoaded(v.doc.Close),
		menu.IDZoomIn:      v.doc.ZoomIn,
		menu.IDZoomOut:     v.doc.ZoomOut,
		menu.IDActualSize:  v.doc.ResetZoom,
		menu.IDNextPage:    v.whenLoaded(v.doc.NextPage),
		menu.IDPrevPage:    v.whenLoaded(v.doc.PrevPage),
		menu.IDPreferences: v.showPreferences,
		menu.IDAbout:       v.ShowAbout,
		cmdFirstPage:       v.whenLoaded(func() { v.doc.SetPage(1) }),
		cmdLastPage: v.whenLoaded(func() {
			if v.doc.Pages > 0 {
				v.doc.SetPage(v.doc.Pages)
			}
		}),
	}
}

// whenLoaded guards commands that only apply to an open document.
func (v *View) whenLoaded(cmd func()) func() {
	return func() {
		if !v.doc.Loaded() {
			return
		}
		cmd()
	}
}

func (v *View) setupInput() {
	v.window.Canvas().SetOnTypedKey(v.HandleKey)
	v.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if err := v.HandleDrop(uris); err != nil {
			v.showError(err)
		}
	})
}

func (v *View) setupLayout() {
	v.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.status = widget.NewLabel("")
	v.mainContainer = container.NewBorder(nil, v.status, nil, nil, container.NewCenter(v.title))
}

func (v *View) SetLoader(l Loader) {
	if l == nil {
		l = UnknownPages
	}
	v.loader = l
}

func (v *View) GetMainContainer() fyne.CanvasObject {
	return v.mainContainer
}

// Document returns a copy of the current presentation state.
func (v *View) Document() Document {
	return *v.doc
}

// Handle runs the command bound to id. It reports false for ids the view
// does not know, which are ignored.
func (v *View) Handle(id string) bool {
	cmd, ok := v.commands[id]
	if !ok {
		v.logger.Debug("Viewer", "ignoring unknown command", map[string]interface{}{
			"id": id,
		})
		return false
	}
	cmd()
	v.refresh()
	return true
}

// HandleKey runs the navigation command bound to an unmodified key press.
func (v *View) HandleKey(ev *fyne.KeyEvent) {
	if ev == nil {
		return
	}
	if id, ok := keyCommands[ev.Name]; ok {
		v.Handle(id)
	}
}

// HandleDrop opens the first dropped file. Anything but a .pdf is rejected
// with ErrNotPDF, which the error dialog shows as is.
func (v *View) HandleDrop(uris []fyne.URI) error {
	if len(uris) == 0 {
		return nil
	}
	uri := uris[0]
	if !strings.EqualFold(uri.Extension(), ".pdf") {
		v.logger.Warning("Viewer", "rejected dropped file", map[string]interface{}{
			"name": uri.Name(),
		})
		return ErrNotPDF
	}

	reader, err := storage.Reader(uri)
	if err != nil {
		return fmt.Errorf("open %s: %w", uri.Name(), err)
	}
	return v.OpenFile(reader)
}

// HandleEvent receives menu events from the bus worker and runs them on
// the UI goroutine.
func (v *View) HandleEvent(e eventbus.Event) {
	fyne.Do(func() {
		v.Handle(e.Payload)
	})
}

// Subscribe registers the view for menu events on bus.
func (v *View) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.MenuEvent, eventbus.NewHandlerFunc("viewer", v.HandleEvent))
}

// OpenFile loads reader as the current document and closes it.
func (v *View) OpenFile(reader fyne.URIReadCloser) error {
	defer reader.Close()

	pages, err := v.loader(reader)
	if err != nil {
		return fmt.Errorf("load %s: %w", reader.URI().Name(), err)
	}
	v.doc.Open(reader.URI().Name(), pages)
	v.refresh()

	v.logger.Info("Viewer", "document opened", map[string]interface{}{
		"name":  reader.URI().Name(),
		"pages": pages,
	})
	return nil
}

func (v *View) showOpenDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			v.showError(err)
			return
		}
		if reader == nil {
			return
		}
		if err := v.OpenFile(reader); err != nil {
			v.showError(err)
		}
	}, v.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}

func (v *View) showPreferences() {
	dialog.ShowInformation("Preferences", "There are no preferences to change yet.", v.window)
}

// ShowAbout is also used by the host for the predefined About entry.
func (v *View) ShowAbout() {
	dialog.ShowInformation("About "+menu.AppName, fmt.Sprintf("%s %s", menu.AppName, v.version), v.window)
}

func (v *View) showError(err error) {
	v.logger.Error("Viewer", err, nil)
	dialog.ShowError(err, v.window)
}

func (v *View) refresh() {
	if v.doc.Loaded() {
		v.title.SetText(v.doc.Name)
		v.window.SetTitle(v.doc.Name + " - " + menu.AppName)
	} else {
		v.title.SetText("Open a PDF to get started")
		v.window.SetTitle(menu.AppName)
	}
	v.status.SetText(v.doc.String())
}
