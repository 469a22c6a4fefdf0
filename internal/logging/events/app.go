package events

import "github.com/atomicstack/quickrun/internal/logging"

type AppTracer struct{}

type CatalogTracer struct{}

type LauncherTracer struct{}

var (
	App      = AppTracer{}
	Catalog  = CatalogTracer{}
	Launcher = LauncherTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (CatalogTracer) Loaded(path string, groups, items int) {
	logging.Trace("catalog.loaded", map[string]interface{}{
		"path":   path,
		"groups": groups,
		"items":  items,
	})
}

func (CatalogTracer) Missing(path string) {
	logging.Trace("catalog.missing", map[string]interface{}{"path": path})
}

func (LauncherTracer) Handoff(name, command string) {
	logging.Trace("launcher.handoff", map[string]interface{}{
		"name":    name,
		"command": command,
	})
}
