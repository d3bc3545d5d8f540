// input_translator.go - Raw backend events to engine events

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// InputTranslator drains backend events once per tick, filters them by
// engine state and posts normalized events.
type InputTranslator struct {
	sys     *VideoSubsystem
	altDown bool
}

// PollEvents drains every pending raw event without blocking.
func (in *InputTranslator) PollEvents() {
	for {
		ev, ok := in.sys.backend.PollEvent()
		if !ok {
			return
		}
		in.handle(ev)
	}
}

func (in *InputTranslator) handle(ev RawEvent) {
	s := in.sys
	switch ev.Kind {
	case RawKeyDown:
		in.keyDown(ev)

	case RawKeyUp:
		in.altDown = ev.Mods&ModAlt != 0
		s.hooks.ClearKeyRepeat()
		if key, ok := s.keys.Lookup(ev.Scancode); ok && key != 0 {
			s.events.PostEvent(Event{Type: EventKeyUp, Data1: int(key), Data2: printableSym(ev.Sym)})
		}

	case RawMouseButtonDown, RawMouseButtonUp:
		if !in.mouseEnabled() {
			return
		}
		if ev.Kind == RawMouseButtonDown {
			s.hooks.ClearCheatEntry()
			if s.state.RevealActive() {
				s.hooks.EndReveal()
			}
		}
		s.mouse.setButton(ev.Button, ev.Kind == RawMouseButtonDown)
		s.events.PostEvent(Event{Type: EventMouseButton, Data1: s.mouse.buttons})

	case RawMouseWheel:
		if !in.mouseEnabled() || ev.WheelY == 0 {
			return
		}
		s.events.PostEvent(Event{Type: EventMouseWheel, Data1: ev.WheelY})

	case RawQuit:
		if !s.state.Quitting() && !s.state.SplashScreen() {
			s.hooks.ClearKeyRepeat()
			if s.state.Paused() {
				s.hooks.ResumeForQuit()
			}
			s.quitRequested = true
		}

	case RawFocusGained, RawFocusLost:
		s.updateFocus()

	case RawExposed:
		s.display.palette.MarkDirty()

	case RawResized:
		if s.display.geometry.Fullscreen {
			return
		}
		s.pendingResize = &resizeRequest{width: ev.Width, height: ev.Height}

	case RawPaste:
		in.paste(ev.Text)
	}
}

// keyDown gates a key press. Cheat entry and the reveal overlay see every
// press, including unmapped keys and the swallowed Alt+Tab.
func (in *InputTranslator) keyDown(ev RawEvent) {
	s := in.sys
	if s.state.InputSuppressed() {
		return
	}
	in.altDown = ev.Mods&ModAlt != 0
	key, ok := s.keys.Lookup(ev.Scancode)
	ch := printableSym(ev.Sym)
	if ok && key == KeyTab && in.altDown {
		key, ch = 0, 0
	}
	if ch < '0' || ch > '9' {
		s.hooks.ClearCheatEntry()
	}
	if s.state.RevealActive() && revealDismisses(ch) {
		s.hooks.EndReveal()
	}
	if !ok || key == 0 {
		return
	}
	s.events.PostEvent(Event{Type: EventKeyDown, Data1: int(key), Data2: ch})
}

func (in *InputTranslator) mouseEnabled() bool {
	return in.sys.state.MouseLookEnabled() || in.sys.state.MenuActive()
}

// revealDismisses reports whether a typed character ends the reveal
// overlay. The letters of the reveal cheat itself keep it open.
func revealDismisses(ch int) bool {
	switch ch {
	case 'v', 's', 'i', 'r', 'a', 'l':
		return false
	}
	return true
}

// paste types clipboard text into the console as key presses.
func (in *InputTranslator) paste(text string) {
	s := in.sys
	if !s.state.ConsoleActive() || text == "" {
		return
	}
	data := capPasteText(normalizePasteText([]byte(text)), PASTE_LIMIT)
	for _, b := range data {
		key, ok := s.keys.KeyForChar(b)
		if !ok {
			continue
		}
		ch := printableSym(rune(b))
		s.events.PostEvent(Event{Type: EventKeyDown, Data1: int(key), Data2: ch})
		s.events.PostEvent(Event{Type: EventKeyUp, Data1: int(key), Data2: ch})
	}
}

func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

func capPasteText(raw []byte, max int) []byte {
	if len(raw) <= max {
		return raw
	}
	return raw[:max]
}
