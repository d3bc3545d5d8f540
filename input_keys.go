// input_keys.go - Scancode to engine key translation tables

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

// Scancode is a physical key position, numbered by USB HID usage ID.
type Scancode uint16

const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = iota + 3
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ
	Scancode1
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	Scancode0
	ScancodeReturn
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeSpace
	ScancodeMinus
	ScancodeEquals
	ScancodeLeftBracket
	ScancodeRightBracket
	ScancodeBackslash
	ScancodeNonUSHash
	ScancodeSemicolon
	ScancodeApostrophe
	ScancodeGrave
	ScancodeComma
	ScancodePeriod
	ScancodeSlash
	ScancodeCapsLock
	ScancodeF1
	ScancodeF2
	ScancodeF3
	ScancodeF4
	ScancodeF5
	ScancodeF6
	ScancodeF7
	ScancodeF8
	ScancodeF9
	ScancodeF10
	ScancodeF11
	ScancodeF12
	ScancodePrintScreen
	ScancodeScrollLock
	ScancodePause
	ScancodeInsert
	ScancodeHome
	ScancodePageUp
	ScancodeDelete
	ScancodeEnd
	ScancodePageDown
	ScancodeRight
	ScancodeLeft
	ScancodeDown
	ScancodeUp
	ScancodeNumLock
	ScancodeKPDivide
	ScancodeKPMultiply
	ScancodeKPMinus
	ScancodeKPPlus
	ScancodeKPEnter
	ScancodeKP1
	ScancodeKP2
	ScancodeKP3
	ScancodeKP4
	ScancodeKP5
	ScancodeKP6
	ScancodeKP7
	ScancodeKP8
	ScancodeKP9
	ScancodeKP0
	ScancodeKPPeriod
	ScancodeNonUSBackslash
	ScancodeApplication
	ScancodePower
	ScancodeKPEquals
)

const (
	ScancodeLCtrl Scancode = 224 + iota
	ScancodeLShift
	ScancodeLAlt
	ScancodeLGUI
	ScancodeRCtrl
	ScancodeRShift
	ScancodeRAlt
	ScancodeRGUI
)

// Key is an engine keycode. Printable keys use their ASCII value; special
// keys live above 0x7f.
type Key int

const (
	KeyTab        Key = 9
	KeyEnter      Key = 13
	KeyEscape     Key = 27
	KeyMinus      Key = 0x2d
	KeyEquals     Key = 0x3d
	KeyBackspace  Key = 0x7f
	KeyRCtrl      Key = 0x80 + 0x1d
	KeyRShift     Key = 0x80 + 0x36
	KeyRAlt       Key = 0x80 + 0x38
	KeyCapsLock   Key = 0x80 + 0x3a
	KeyF1         Key = 0x80 + 0x3b
	KeyF2         Key = 0x80 + 0x3c
	KeyF3         Key = 0x80 + 0x3d
	KeyF4         Key = 0x80 + 0x3e
	KeyF5         Key = 0x80 + 0x3f
	KeyF6         Key = 0x80 + 0x40
	KeyF7         Key = 0x80 + 0x41
	KeyF8         Key = 0x80 + 0x42
	KeyF9         Key = 0x80 + 0x43
	KeyF10        Key = 0x80 + 0x44
	KeyNumLock    Key = 0x80 + 0x45
	KeyScrollLock Key = 0x80 + 0x46
	KeyHome       Key = 0x80 + 0x47
	KeyPgUp       Key = 0x80 + 0x49
	KeyEnd        Key = 0x80 + 0x4f
	KeyPgDn       Key = 0x80 + 0x51
	KeyIns        Key = 0x80 + 0x52
	KeyDel        Key = 0x80 + 0x53
	KeyF11        Key = 0x80 + 0x57
	KeyF12        Key = 0x80 + 0x58
	KeyLeftArrow  Key = 0xac
	KeyUpArrow    Key = 0xad
	KeyRightArrow Key = 0xae
	KeyDownArrow  Key = 0xaf
	KeyPause      Key = 0xff

	KeyPad0        Key = 0xe0
	KeyPad1        Key = 0xe1
	KeyPad2        Key = 0xe2
	KeyPad3        Key = 0xe3
	KeyPad4        Key = 0xe4
	KeyPad5        Key = 0xe5
	KeyPad6        Key = 0xe6
	KeyPad7        Key = 0xe7
	KeyPad8        Key = 0xe8
	KeyPad9        Key = 0xe9
	KeyPadPeriod   Key = 0xea
	KeyPadDivide   Key = 0xeb
	KeyPadMultiply Key = 0xec
	KeyPadMinus    Key = 0xed
	KeyPadPlus     Key = 0xee
	KeyPadEnter    Key = 0xef
	KeyPadEquals   Key = 0xf0
)

type scancodeKey struct {
	sc  Scancode
	key Key
}

var scancodeKeys = []scancodeKey{
	{ScancodeReturn, KeyEnter},
	{ScancodeEscape, KeyEscape},
	{ScancodeBackspace, KeyBackspace},
	{ScancodeTab, KeyTab},
	{ScancodeSpace, ' '},
	{ScancodeMinus, KeyMinus},
	{ScancodeEquals, KeyEquals},
	{ScancodeLeftBracket, '['},
	{ScancodeRightBracket, ']'},
	{ScancodeBackslash, '\\'},
	{ScancodeNonUSHash, '\\'},
	{ScancodeSemicolon, ';'},
	{ScancodeApostrophe, '\''},
	{ScancodeGrave, '`'},
	{ScancodeComma, ','},
	{ScancodePeriod, '.'},
	{ScancodeSlash, '/'},
	{ScancodeCapsLock, KeyCapsLock},
	{ScancodeF1, KeyF1},
	{ScancodeF2, KeyF2},
	{ScancodeF3, KeyF3},
	{ScancodeF4, KeyF4},
	{ScancodeF5, KeyF5},
	{ScancodeF6, KeyF6},
	{ScancodeF7, KeyF7},
	{ScancodeF8, KeyF8},
	{ScancodeF9, KeyF9},
	{ScancodeF10, KeyF10},
	{ScancodeF11, KeyF11},
	{ScancodeF12, KeyF12},
	{ScancodeScrollLock, KeyScrollLock},
	{ScancodePause, KeyPause},
	{ScancodeInsert, KeyIns},
	{ScancodeHome, KeyHome},
	{ScancodePageUp, KeyPgUp},
	{ScancodeDelete, KeyDel},
	{ScancodeEnd, KeyEnd},
	{ScancodePageDown, KeyPgDn},
	{ScancodeRight, KeyRightArrow},
	{ScancodeLeft, KeyLeftArrow},
	{ScancodeDown, KeyDownArrow},
	{ScancodeUp, KeyUpArrow},
	{ScancodeNumLock, KeyNumLock},
	{ScancodeKPDivide, KeyPadDivide},
	{ScancodeKPMultiply, KeyPadMultiply},
	{ScancodeKPMinus, KeyPadMinus},
	{ScancodeKPPlus, KeyPadPlus},
	{ScancodeKPEnter, KeyPadEnter},
	{ScancodeKP1, KeyPad1},
	{ScancodeKP2, KeyPad2},
	{ScancodeKP3, KeyPad3},
	{ScancodeKP4, KeyPad4},
	{ScancodeKP5, KeyPad5},
	{ScancodeKP6, KeyPad6},
	{ScancodeKP7, KeyPad7},
	{ScancodeKP8, KeyPad8},
	{ScancodeKP9, KeyPad9},
	{ScancodeKP0, KeyPad0},
	{ScancodeKPPeriod, KeyPadPeriod},
	{ScancodeKPEquals, KeyPadEquals},
	// Both sides of each modifier report the right-hand key.
	{ScancodeLCtrl, KeyRCtrl},
	{ScancodeLShift, KeyRShift},
	{ScancodeLAlt, KeyRAlt},
	{ScancodeRCtrl, KeyRCtrl},
	{ScancodeRShift, KeyRShift},
	{ScancodeRAlt, KeyRAlt},
}

// remappableKeys are the keys the game may bind and then query with KeyDown;
// only these have an inverse mapping.
var remappableKeys = []scancodeKey{
	{ScancodeLeft, KeyLeftArrow},
	{ScancodeRight, KeyRightArrow},
	{ScancodeDown, KeyDownArrow},
	{ScancodeUp, KeyUpArrow},
	{ScancodeEscape, KeyEscape},
	{ScancodeReturn, KeyEnter},
	{ScancodeTab, KeyTab},
	{ScancodeF1, KeyF1},
	{ScancodeF2, KeyF2},
	{ScancodeF3, KeyF3},
	{ScancodeF4, KeyF4},
	{ScancodeF5, KeyF5},
	{ScancodeF6, KeyF6},
	{ScancodeF7, KeyF7},
	{ScancodeF8, KeyF8},
	{ScancodeF9, KeyF9},
	{ScancodeF10, KeyF10},
	{ScancodeF11, KeyF11},
	{ScancodeF12, KeyF12},
	{ScancodeBackspace, KeyBackspace},
	{ScancodeDelete, KeyDel},
	{ScancodePause, KeyPause},
	{ScancodeEquals, KeyEquals},
	{ScancodeMinus, KeyMinus},
	{ScancodeRShift, KeyRShift},
	{ScancodeRCtrl, KeyRCtrl},
	{ScancodeRAlt, KeyRAlt},
	{ScancodeCapsLock, KeyCapsLock},
	{ScancodeScrollLock, KeyScrollLock},
	{ScancodeKP0, KeyPad0},
	{ScancodeKP1, KeyPad1},
	{ScancodeKP3, KeyPad3},
	{ScancodeKP5, KeyPad5},
	{ScancodeKP7, KeyPad7},
	{ScancodeKP9, KeyPad9},
	{ScancodeKPPeriod, KeyPadPeriod},
	{ScancodeKPMultiply, KeyPadMultiply},
	{ScancodeKPDivide, KeyPadDivide},
	{ScancodeInsert, KeyIns},
	{ScancodeNumLock, KeyNumLock},
}

// KeyTable is the immutable scancode/key mapping. Lookups report absence
// explicitly instead of returning a zero key.
type KeyTable struct {
	toKey      map[Scancode]Key
	toScancode map[Key]Scancode
	charKeys   map[byte]Key
}

func NewKeyTable() *KeyTable {
	t := &KeyTable{
		toKey:      make(map[Scancode]Key, 128),
		toScancode: make(map[Key]Scancode, len(remappableKeys)),
		charKeys:   make(map[byte]Key, 96),
	}
	for i := 0; i < 26; i++ {
		t.toKey[ScancodeA+Scancode(i)] = Key('a' + i)
	}
	for i := 0; i < 9; i++ {
		t.toKey[Scancode1+Scancode(i)] = Key('1' + i)
	}
	t.toKey[Scancode0] = '0'
	for _, e := range scancodeKeys {
		t.toKey[e.sc] = e.key
	}
	for _, e := range remappableKeys {
		t.toScancode[e.key] = e.sc
	}
	for _, key := range t.toKey {
		if key >= ' ' && key < 0x7f {
			t.charKeys[byte(key)] = key
		}
	}
	t.charKeys['\n'] = KeyEnter
	t.charKeys['\t'] = KeyTab
	t.charKeys['\b'] = KeyBackspace
	return t
}

// Lookup translates a scancode; ok is false for unmapped codes.
func (t *KeyTable) Lookup(sc Scancode) (Key, bool) {
	key, ok := t.toKey[sc]
	return key, ok
}

// ScancodeFor is the inverse mapping for the remappable subset.
func (t *KeyTable) ScancodeFor(key Key) (Scancode, bool) {
	sc, ok := t.toScancode[key]
	return sc, ok
}

// KeyForChar maps a typed character to the key that produces it on a US layout.
func (t *KeyTable) KeyForChar(c byte) (Key, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	key, ok := t.charKeys[c]
	return key, ok
}

// usSymFor returns the US-layout symbol for a scancode, or 0.
func usSymFor(t *KeyTable, sc Scancode) rune {
	key, ok := t.Lookup(sc)
	if !ok || key < ' ' || key >= 0x7f {
		return 0
	}
	return rune(key)
}

// printableSym keeps only symbols in the printable range ' '..'z'.
func printableSym(sym rune) int {
	if sym < ' ' || sym > 'z' {
		return 0
	}
	return int(sym)
}
