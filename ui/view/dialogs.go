package view

import (
	"strings"

	"github.com/soocke/firescreen-go/domain/encoder"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs wraps the Tk standard dialogs and main window state used by the
// presenters.
type Dialogs struct {
	// OutputDir returns the initial directory for save dialogs; may be nil.
	OutputDir func() string
}

// AskVideoPath shows a save dialog filtered to the supported containers.
func (d *Dialogs) AskVideoPath() (string, bool) {
	return d.askSave("Save recording", ".mp4", videoFileTypes())
}

// AskStillPath shows a save dialog for screenshots.
func (d *Dialogs) AskStillPath() (string, bool) {
	return d.askSave("Save screenshot", ".png", []FileType{
		{TypeName: "PNG files", Extensions: []string{".png"}},
		{TypeName: "JPEG files", Extensions: []string{".jpg", ".jpeg"}},
		{TypeName: "BMP files", Extensions: []string{".bmp"}},
		{TypeName: "TIFF files", Extensions: []string{".tif", ".tiff"}},
		{TypeName: "GIF files", Extensions: []string{".gif"}},
		{TypeName: "All files", Extensions: []string{"*"}},
	})
}

func (d *Dialogs) askSave(title, ext string, types []FileType) (string, bool) {
	opts := []Opt{Title(title), Filetypes(types), Defaultextension(ext)}
	if d != nil && d.OutputDir != nil {
		if dir := strings.TrimSpace(d.OutputDir()); dir != "" {
			opts = append(opts, Initialdir(dir))
		}
	}
	path := strings.TrimSpace(GetSaveFile(opts...))
	return path, path != ""
}

func videoFileTypes() []FileType {
	var types []FileType
	for _, ext := range encoder.Extensions() {
		types = append(types, FileType{
			TypeName:   encoder.ContainerName(ext) + " files",
			Extensions: []string{ext},
		})
	}
	return append(types, FileType{TypeName: "All files", Extensions: []string{"*"}})
}

// ShowError shows a modal error box.
func (d *Dialogs) ShowError(title, msg string) {
	MessageBox(Icon("error"), Title(title), Msg(msg))
}

// ShowAbout shows the about box.
func (d *Dialogs) ShowAbout(name, detail string) {
	MessageBox(Icon("info"), Title("About "+name), Msg(name), Detail(detail))
}

// Minimize iconifies the main window.
func (d *Dialogs) Minimize() { WmIconify(App) }

// Restore brings the main window back.
func (d *Dialogs) Restore() { WmDeiconify(App) }
