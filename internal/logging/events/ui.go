package events

import "github.com/atomicstack/quickrun/internal/logging"

type FilterTracer struct{}

type GridTracer struct{}

type SessionTracer struct{}

var (
	Filter  = FilterTracer{}
	Grid    = GridTracer{}
	Session = SessionTracer{}
)

func (FilterTracer) Changed(text string) {
	logging.Trace("filter.changed", map[string]interface{}{"text": text})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (GridTracer) Recompute(filter string, visible int) {
	logging.Trace("grid.recompute", map[string]interface{}{
		"filter":  filter,
		"visible": visible,
	})
}

func (GridTracer) Focus(group, name string) {
	logging.Trace("grid.focus", map[string]interface{}{
		"group": group,
		"name":  name,
	})
}

func (GridTracer) Resize(width, height, columns int) {
	logging.Trace("grid.resize", map[string]interface{}{
		"width":   width,
		"height":  height,
		"columns": columns,
	})
}

func (SessionTracer) Commit(name, command string) {
	logging.Trace("session.commit", map[string]interface{}{
		"name":    name,
		"command": command,
	})
}

func (SessionTracer) Cancel() {
	logging.Trace("session.cancel", nil)
}
