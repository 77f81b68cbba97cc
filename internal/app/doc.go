// Package app wires configuration, the menu client and the renderer into a
// single ruoka run.
//
// # Flow
//
//	Run()
//	 ├─> config.LoadDotEnv()  .env overrides
//	 ├─> config.Load()        TOML config or defaults
//	 ├─> logging.Init()       zerolog on stderr
//	 ├─> filter.Parse()       -lang and keywords
//	 └─> for each restaurant, in order:
//	      ├─> FetchMenu()     one GET, no retry
//	      ├─> menu.Build()    arrange + filter
//	      └─> Renderer.Board()
//
// Restaurants are processed one at a time; nothing is fetched concurrently.
// The browse mode fetches every restaurant first and hands the results to
// ui.Run.
//
// # Error Handling
//
// By default the first failing restaurant aborts the run and its error is
// returned, leaving earlier output on screen. With continue_on_error the
// failure is logged at warn level and the next restaurant is processed.
// A restaurant whose payload is null is skipped silently in both modes.
package app
