package view

import (
	"strings"

	"github.com/soocke/firescreen-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

const consoleMaxLines = 500

// Console is the read-only status log in the main window.
type Console interface {
	AppendLine(line string)
}

type console struct {
	text  *TextWidget
	lines int
}

// NewConsole places a read-only text area at row spanning span columns.
func NewConsole(row, span int) Console {
	p := theme.CurrentPalette()
	c := &console{text: Text(Height(10), Width(70), Wrap("word"), Background(p.Surface), Foreground(p.Text))}
	Grid(c.text, Row(row), Column(0), Columnspan(span), Sticky("nsew"), Padx("0.4m"), Pady("0.3m"))
	c.text.Configure(State("disabled"))
	return c
}

// AppendLine adds a line at the end and keeps the view scrolled to it. The
// oldest lines are dropped past consoleMaxLines.
func (c *console) AppendLine(line string) {
	if c == nil || c.text == nil {
		return
	}
	line = strings.TrimRight(line, "\n")
	c.text.Configure(State("normal"))
	c.text.Insert(END, line+"\n")
	c.lines++
	if c.lines > consoleMaxLines {
		c.text.Delete("1.0", "2.0")
		c.lines--
	}
	c.text.See(END)
	c.text.Configure(State("disabled"))
}
