package repl

import (
	"context"

	"github.com/lmorg/readline"

	"github.com/tim-hardcastle/curly/source/hub"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/text"
)

// Start reads lines from the terminal and passes them to the hub until the user quits or
// closes the input.
func Start(ctx context.Context, hb *hub.Hub, prompt string) {
	if prompt == "" {
		prompt = text.PROMPT
	}
	hb.WriteString(text.Logo())
	rline := readline.NewInstance()
	rline.SetPrompt(prompt)
	for {
		line, e := rline.Readline()
		if e != nil {
			logging.Debugf("repl: %v", e)
			hb.WriteString("\n")
			return
		}
		if hb.Do(ctx, line) {
			return
		}
	}
}
