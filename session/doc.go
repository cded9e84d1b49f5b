// Package session owns one maze generation at a time.
//
// A Manager turns a validated config.Config into a fresh grid, wall
// remover, random source and generator (Prepare), then drives the
// generator to completion with maze.Run (Generate). By default starting a
// new generation cancels the one in flight, so a caller that changes the
// settings mid-animation never sees two runs mutate state at once. A
// Concurrent manager lets independent runs overlap, as the HTTP server
// needs; each run still owns its grid.
//
// Every run is tagged with a uuid and logged through the injected
// *log.Logger. When the config asks for animation, each step is forwarded
// to an Observer and paced by Config.StepDelay; otherwise the run goes
// straight through and only the final Summary is produced.
//
// Errors:
//
//	config.ErrInvalidConfig  - rejected before any grid is built.
//	maze/grid sentinels      - wrapped from construction or a failed step.
//	observer errors          - returned as-is; the partial Summary is still filled.
package session
