package tui

import (
	"github.com/bnema/vcalc/internal/domain"
	"github.com/charmbracelet/bubbles/key"
)

type tokenBinding struct {
	binding    key.Binding
	token      domain.Token
	scientific bool
}

type keyMap struct {
	Digits   key.Binding
	Decimal  key.Binding
	Operator key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Random   key.Binding
	Hold     key.Binding
	Mode     key.Binding
	Help     key.Binding
	Quit     key.Binding

	tokens []tokenBinding
}

func newKeyMap() keyMap {
	km := keyMap{
		Digits:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digits")),
		Decimal:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "point")),
		Operator: key.NewBinding(key.WithKeys("+", "-", "*", "/", "x"), key.WithHelp("+-*/", "operator")),
		Equals:   key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
		Clear:    key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc/c", "clear")),
		Random:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random")),
		Hold:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hold random")),
		Mode:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
	}

	km.tokens = []tokenBinding{
		{binding: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "mc")), token: domain.TokenMemoryClear},
		{binding: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "m+")), token: domain.TokenMemoryAdd},
		{binding: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "m-")), token: domain.TokenMemorySubtract},
		{binding: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "mr")), token: domain.TokenMemoryRecall},
		{binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sin")), token: domain.TokenSin, scientific: true},
		{binding: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "cos")), token: domain.TokenCos, scientific: true},
		{binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tan")), token: domain.TokenTan, scientific: true},
		{binding: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")), token: domain.TokenLog, scientific: true},
		{binding: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "√")), token: domain.TokenSqrt, scientific: true},
		{binding: key.NewBinding(key.WithKeys("^"), key.WithHelp("^", "x²")), token: domain.TokenSquare, scientific: true},
		{binding: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "π")), token: domain.TokenPi, scientific: true},
		{binding: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "e")), token: domain.TokenE, scientific: true},
	}

	return km
}

// setMode enables the function keys that belong to mode.
func (k *keyMap) setMode(mode domain.Mode) {
	for i := range k.tokens {
		if k.tokens[i].scientific {
			k.tokens[i].binding.SetEnabled(mode == domain.ModeScientific)
		}
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Random, k.Hold, k.Mode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	memory := make([]key.Binding, 0, 4)
	functions := make([]key.Binding, 0, len(k.tokens))
	for _, tb := range k.tokens {
		if tb.scientific {
			functions = append(functions, tb.binding)
		} else {
			memory = append(memory, tb.binding)
		}
	}

	return [][]key.Binding{
		{k.Digits, k.Decimal, k.Operator, k.Equals, k.Clear},
		memory,
		functions,
		{k.Random, k.Hold, k.Mode, k.Help, k.Quit},
	}
}
