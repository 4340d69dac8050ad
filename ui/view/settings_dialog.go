package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/firescreen-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsDialog is a Toplevel form for frame rate, cursor size, cursor
// colour and auto-minimise. Only one instance is open at a time.
type SettingsDialog struct {
	logger *slog.Logger
	top    *ToplevelWidget
}

func NewSettingsDialog(logger *slog.Logger) *SettingsDialog {
	return &SettingsDialog{logger: logger}
}

// ShowSettings opens the dialog. apply is called on "Apply"; an error is
// shown in a message box and the dialog stays open.
func (d *SettingsDialog) ShowSettings(form model.SettingsForm, apply func(model.SettingsForm) error) {
	if d == nil {
		return
	}
	if d.top != nil {
		return
	}
	top := App.Toplevel()
	d.top = top
	top.WmTitle("Settings")

	row := 0
	widgets := make(map[string]*TextWidget)
	makeRow := func(id, label, value string) {
		lbl := top.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := top.Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		widgets[id] = w
		row++
	}
	makeRow("frameRate", "Frame rate (fps)", form.FrameRate)
	makeRow("cursorRadius", "Cursor size (px)", form.CursorRadius)
	makeRow("autoMinimize", "Minimise for screenshot (true/false)", form.AutoMinimize)

	color := form.CursorColor
	colorLbl := top.Label(Txt("Cursor colour"), Anchor("w"))
	Grid(colorLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	swatch := top.Label(Txt(color), Background(color), Width(10))
	Grid(swatch, Row(row), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	chooseBtn := top.Button(Txt("Choose..."), Command(func() {
		picked := strings.TrimSpace(ChooseColor(Initialcolor(color), Title("Cursor colour")))
		if picked == "" {
			return
		}
		color = picked
		swatch.Configure(Txt(color), Background(color))
	}))
	Grid(chooseBtn, Row(row), Column(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	row++

	closeDialog := func() {
		if d.top != nil {
			Destroy(d.top)
			d.top = nil
		}
	}
	applyBtn := top.Button(Txt("Apply"), Command(func() {
		next := model.SettingsForm{
			FrameRate:    textOf(widgets["frameRate"]),
			CursorRadius: textOf(widgets["cursorRadius"]),
			AutoMinimize: textOf(widgets["autoMinimize"]),
			CursorColor:  color,
		}
		if err := apply(next); err != nil {
			if d.logger != nil {
				d.logger.Debug("settings rejected", "error", err)
			}
			MessageBox(Icon("error"), Title("Invalid settings"), Msg(err.Error()))
			return
		}
		closeDialog()
	}))
	Grid(applyBtn, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	cancelBtn := top.Button(Txt("Cancel"), Command(closeDialog))
	Grid(cancelBtn, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	WmProtocol(top.Window, "WM_DELETE_WINDOW", closeDialog)
}

func textOf(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}
