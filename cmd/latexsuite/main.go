// Command latexsuite is a small terminal harness around the snippet
// engine: a plain text buffer where typing exercises snippet expansion,
// tabstops, auto-fraction, matrix shortcuts, and tabout. It exists for
// poking at the engine interactively, not as a product surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/HerrChaos/obsidian-latex-suite/internal/config"
	"github.com/HerrChaos/obsidian-latex-suite/internal/dispatcher"
	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"
	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/cursor"
	"github.com/HerrChaos/obsidian-latex-suite/internal/input/key"
)

// defaultDefs is a starter snippet set used when no definitions file is
// given on the command line.
const defaultDefs = `[
	{"trigger": "mk", "replacement": "$$1$", "options": "tA"},
	{"trigger": "dm", "replacement": "$$\n$1\n$$", "options": "tA"},
	{"trigger": "sq", "replacement": "\\sqrt{$1}$0", "options": "mA"},
	{"trigger": "sr", "replacement": "^{2}", "options": "mA"},
	{"trigger": "te", "replacement": "\\text{$1}$0", "options": "m"},
	{"trigger": "sum", "replacement": "\\sum_{$1}^{$2}$0", "options": "m"},
	{"trigger": "pmat", "replacement": "\\begin{pmatrix}$1\\end{pmatrix}$0", "options": "m"},
	{"trigger": "=>", "replacement": "\\implies", "options": "mA"},
	{"trigger": "->", "replacement": "\\to", "options": "mA"},
	{"trigger": "([a-zA-Z])(\\d)", "replacement": "[[0]]_{[[1]]}", "options": "rmA"},
	{"trigger": "(${GREEK})", "replacement": "\\[[0]]", "options": "rmAw"},
	{"trigger": "bf", "replacement": "\\textbf{${VISUAL}}", "options": "m"}
]`

func main() {
	configPath := flag.String("config", "", "settings file (toml, yaml, or json)")
	snippetsPath := flag.String("snippets", "", "snippet definitions file (json)")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		s, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		settings = s
	}

	defs := defaultDefs
	if *snippetsPath != "" {
		data, err := os.ReadFile(*snippetsPath)
		if err != nil {
			log.Fatalf("load snippets: %v", err)
		}
		defs = string(data)
	}

	eng := dispatcher.New(buffer.NewBuffer(), dispatcher.WithSettings(settings))
	for _, err := range eng.Reload(defs) {
		log.Printf("snippet skipped: %v", err)
	}

	if err := run(eng); err != nil {
		log.Fatal(err)
	}
}

func run(eng *dispatcher.Engine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	for {
		draw(screen, eng)
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			handleKey(eng, key.FromTcell(tev))
		}
	}
}

// handleKey routes the event through the engine first and falls back to
// plain editing when no feature claims it.
func handleKey(eng *dispatcher.Engine, ev key.Event) {
	if res := eng.HandleKey(ev); res.Handled() || res.Status == dispatcher.StatusError {
		return
	}

	buf := eng.Buffer()
	pos := eng.Cursors().Primary().Head
	switch {
	case ev.IsChar():
		insert(eng, pos, string(ev.Rune))
	case ev.Key == key.KeyEnter:
		insert(eng, pos, "\n")
	case ev.Key == key.KeyTab:
		insert(eng, pos, "\t")
	case ev.Key == key.KeyBackspace:
		if pos > 0 {
			_ = eng.ApplyExternalEdit(buffer.NewDelete(pos-1, pos))
			eng.Cursors().Set(cursor.At(pos - 1))
			eng.CursorMoved()
		}
	case ev.Key == key.KeyLeft:
		if pos > 0 {
			moveTo(eng, pos-1)
		}
	case ev.Key == key.KeyRight:
		if pos < buf.Len() {
			moveTo(eng, pos+1)
		}
	case ev.Key == key.KeyHome:
		moveTo(eng, 0)
	case ev.Key == key.KeyEnd:
		moveTo(eng, buf.Len())
	}
}

func insert(eng *dispatcher.Engine, pos buffer.ByteOffset, text string) {
	if err := eng.ApplyExternalEdit(buffer.NewInsert(pos, text)); err != nil {
		return
	}
	eng.Cursors().Set(cursor.At(pos + buffer.ByteOffset(len(text))))
}

func moveTo(eng *dispatcher.Engine, pos buffer.ByteOffset) {
	eng.Cursors().Set(cursor.At(pos))
	eng.CursorMoved()
}

func draw(screen tcell.Screen, eng *dispatcher.Engine) {
	screen.Clear()
	style := tcell.StyleDefault

	buf := eng.Buffer()
	for line := uint32(0); line < buf.LineCount(); line++ {
		col := 0
		for _, r := range buf.LineText(line) {
			screen.SetContent(col, int(line), r, nil, style)
			col++
		}
	}

	_, height := screen.Size()
	status := "ctrl+c quits"
	if eng.Tabstops().Active() {
		status = fmt.Sprintf("tabstops live (%d) | %s", len(eng.Tabstops().Stops()), status)
	}
	col := 0
	for _, r := range status {
		screen.SetContent(col, height-1, r, nil, style.Reverse(true))
		col++
	}

	pt := buf.OffsetToPoint(eng.Cursors().Primary().Head)
	screen.ShowCursor(int(pt.Column), int(pt.Line))
	screen.Show()
}
