package app

import (
	"fmt"

	"pdf-reader/internal/config"
	"pdf-reader/internal/eventbus"
	"pdf-reader/internal/host"
	"pdf-reader/internal/logger"
	"pdf-reader/internal/menu"
	"pdf-reader/internal/router"
	"pdf-reader/internal/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.pdfreader.desktop"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	profile menu.PlatformProfile

	router    *router.Router
	bus       *eventbus.Bus
	view      *viewer.View
	host      *host.Host
	lifecycle *Lifecycle
}

// NewApplication builds and installs the menu before anything is shown. A
// menu that fails to build or install is fatal.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    menu.AppName,
		Version: AppVersion,
	})
	return newApplication(fyneApp, cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version": AppVersion,
		"profile": profile.String(),
	})

	tree, err := menu.Build(profile)
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}

	window := fyneApp.NewWindow(menu.AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	bus := eventbus.NewBus(cfg.Events.Buffer, log)
	view := viewer.NewView(window, AppVersion, log)
	view.Subscribe(bus)

	r := router.New(log)
	h := host.New(fyneApp, window, r.Activate, log)
	h.SetAboutHandler(view.ShowAbout)

	if err := h.Install(tree); err != nil {
		bus.Shutdown()
		return nil, err
	}

	window.SetContent(view.GetMainContainer())

	application := &Application{
		fyneApp:   fyneApp,
		window:    window,
		logger:    log,
		profile:   profile,
		router:    r,
		bus:       bus,
		view:      view,
		host:      h,
		lifecycle: NewLifecycle(r, bus, log),
	}

	application.lifecycle.AttachWindow(window)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	stop := a.lifecycle.ListenSignals(func() {
		fyne.Do(a.fyneApp.Quit)
	})
	defer stop()

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Router() *router.Router {
	return a.router
}

func (a *Application) View() *viewer.View {
	return a.view
}

func (a *Application) Profile() menu.PlatformProfile {
	return a.profile
}
