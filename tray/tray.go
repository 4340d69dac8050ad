// Package tray provides the system tray menu using getlantern/systray.
package tray

import (
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/getlantern/systray"
)

// Item is a menu entry. Callbacks run on the tray goroutine; callers marshal
// onto their own thread.
type Item struct {
	title    string
	callback func()
	item     *systray.MenuItem
	mu       sync.Mutex
}

// SetTitle updates the menu text. Safe before and after Start.
func (i *Item) SetTitle(title string) {
	if i == nil {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.title = title
	if i.item != nil {
		i.item.SetTitle(title)
	}
}

// Tray manages the tray icon and menu.
type Tray struct {
	tooltip string
	icon    []byte
	logger  *slog.Logger
	items   []*Item // nil entry is a separator
	quitCh  chan struct{}
	once    sync.Once
}

func New(tooltip string, icon []byte, logger *slog.Logger) *Tray {
	return &Tray{tooltip: tooltip, icon: icon, logger: logger, quitCh: make(chan struct{})}
}

// AddItem appends a menu item. Must be called before Start.
func (t *Tray) AddItem(title string, callback func()) *Item {
	it := &Item{title: title, callback: callback}
	t.items = append(t.items, it)
	return it
}

// AddSeparator adds a separator to the menu.
func (t *Tray) AddSeparator() { t.items = append(t.items, nil) }

// Start runs the tray loop on its own locked OS thread and returns
// immediately.
func (t *Tray) Start() {
	go func() {
		runtime.LockOSThread()
		defer t.recoverLog("tray loop panic")
		systray.Run(t.setupMenu, t.onExit)
	}()
}

func (t *Tray) setupMenu() {
	systray.SetTitle("FireScreen")
	systray.SetTooltip(t.tooltip)
	if len(t.icon) > 0 {
		systray.SetIcon(t.icon)
	}
	for _, it := range t.items {
		if it == nil {
			systray.AddSeparator()
			continue
		}
		it.mu.Lock()
		it.item = systray.AddMenuItem(it.title, "")
		it.mu.Unlock()
		if it.callback != nil {
			go t.watch(it)
		}
	}
}

func (t *Tray) watch(it *Item) {
	for {
		select {
		case <-it.item.ClickedCh:
			func() {
				defer t.recoverLog("tray callback panic")
				it.callback()
			}()
		case <-t.quitCh:
			return
		}
	}
}

func (t *Tray) onExit() { t.once.Do(func() { close(t.quitCh) }) }

// Stop quits the tray loop.
func (t *Tray) Stop() {
	if t == nil {
		return
	}
	systray.Quit()
	t.onExit()
}

func (t *Tray) recoverLog(msg string) {
	if r := recover(); r != nil && t.logger != nil {
		t.logger.Error(msg, "error", r, "stack", string(debug.Stack()))
	}
}

// RecordingItem keeps a tray item's label in sync with recording state.
type RecordingItem struct{ Item *Item }

func (r RecordingItem) SetRecording(recording bool) {
	if recording {
		r.Item.SetTitle("Stop Recording")
		return
	}
	r.Item.SetTitle("Start Recording")
}
