package main

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/q3ui/uibridge/application/config"
)

func repl(ctx context.Context, cfg config.HostConfig, c *console) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
		AutoComplete:      completer(),
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()
	c.out = l.Stdout()
	if cfg.Color {
		c.out = colorWriter{w: c.out}
	}

	for {
		line, err := l.Readline()
		if stdErrors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if stdErrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := c.exec(ctx, line); err != nil {
			if stdErrors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(l.Stderr(), "error:", err)
		}
	}
}

func completer() *readline.PrefixCompleter {
	menus := readline.PcItem("menu",
		readline.PcItem("none"), readline.PcItem("main"), readline.PcItem("ingame"),
		readline.PcItem("need_cd"), readline.PcItem("bad_cd_key"), readline.PcItem("team"),
		readline.PcItem("postgame"),
	)
	return readline.NewPrefixCompleter(
		readline.PcItem("init", readline.PcItem("ingame")),
		readline.PcItem("shutdown"),
		readline.PcItem("key", readline.PcItem("13"), readline.PcItem("27")),
		readline.PcItem("mouse"),
		readline.PcItem("refresh"),
		readline.PcItem("fullscreen"),
		menus,
		readline.PcItem("cmd", readline.PcItem("ui_report"), readline.PcItem("ui_cache"), readline.PcItem("ui_menu")),
		readline.PcItem("connect", readline.PcItem("overlay")),
		readline.PcItem("cdkey"),
		readline.PcItem("version"),
		readline.PcItem("raw"),
		readline.PcItem("cvar"),
		readline.PcItem("condump"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
