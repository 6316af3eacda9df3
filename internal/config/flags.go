// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Flags are the global command-line flags. The struct is embedded into the
// kong command tree of cmd/devutils, so the tags below are kong tags.
//
// Flags:
//
//	-c/--config       json file path with configs
//	-d/--db           settings database path
//	--log-file        client log file path
//	--log-level       log level
//	--indent-width    initial JSON indent width
//	--no-highlight    disable JSON highlighting
//	--style           chroma highlight style
//	--show            show the window right after start
//	--lenient         accept JSONC input
type Flags struct {
	Config      string `short:"c" name:"config" help:"JSON config file path." type:"path"`
	DSN         string `short:"d" name:"db" help:"Settings database path." type:"path"`
	LogFile     string `name:"log-file" help:"Client log file path." type:"path"`
	LogLevel    string `name:"log-level" help:"Log level (trace, debug, info, warn, error)."`
	IndentWidth int    `name:"indent-width" help:"Initial JSON indent width."`
	NoHighlight bool   `name:"no-highlight" help:"Disable JSON syntax highlighting."`
	Style       string `name:"style" help:"Chroma highlight style."`
	Show        bool   `name:"show" help:"Show the window right after start."`
	Lenient     bool   `name:"lenient" help:"Accept comments and trailing commas in JSON input."`
}

// structured maps the flags onto a [StructuredConfig]. Unset flags stay zero
// so lower-priority sources can fill them.
func (f Flags) structured() *StructuredConfig {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: f.DSN}},
		Logger: Logger{
			File:  f.LogFile,
			Level: f.LogLevel,
		},
		UI: UI{
			IndentWidth:    f.IndentWidth,
			HighlightStyle: f.Style,
			ShowOnLaunch:   f.Show,
		},
		JSON:         JSON{Lenient: f.Lenient},
		JSONFilePath: f.Config,
	}

	if f.NoHighlight {
		off := false
		cfg.UI.Highlight = &off
	}

	return cfg
}
