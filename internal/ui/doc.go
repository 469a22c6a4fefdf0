// Package ui contains the Bubble Tea program that powers the launcher
// grid. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own input, navigation, and
// rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled
//     by a focused function (key presses, window resizes).
//   - Key presses go to the filter editor first (internal/ui/input.go);
//     line-editing keys mutate the filter text and every mutation
//     recomputes the visible grid. Keys the editor declines are matched
//     against the KeyMap and drive grid focus, group cycling, commit,
//     and cancel (internal/ui/navigation.go).
//
// State ownership:
//   - The filter line lives in internal/ui/state.Editor, a readline-style
//     rune buffer with a change callback.
//   - Focus and visibility live in internal/ui/state.Grid, which filters
//     the immutable menu.Catalog and remembers the focused item by its
//     catalog coordinates so a focus survives refiltering whenever the
//     item is still visible.
//   - Grid geometry (column count, row shapes) is pure arithmetic in
//     internal/format/gridflow, shared between navigation and rendering.
//
// The session ends when commit stores the focused item on the model and
// quits the program; the caller retrieves it through Model.Selection and
// replaces the process with the selected command.
package ui
