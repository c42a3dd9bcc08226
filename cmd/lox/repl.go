package main

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"lox/internal"
)

// runPrompt reads one line at a time. Every line runs on the same
// interpreter, errors only end the current line.
func (r *rootEnv) runPrompt(interp *internal.Interpreter) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.cfg.Prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize readline")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading prompt")
		}

		state := interp.Run(line)
		r.logger.WithField("errors", len(state.Errors())).Trace("line done")
	}
}
