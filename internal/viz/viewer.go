package viz

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/astroviz/internal/field"
	"github.com/san-kum/astroviz/internal/render"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Viewer is an interactive terminal browser for a stack of fields.
type Viewer struct {
	stack  field.Stack
	titles []string
	cmaps  []string

	index  int
	cmap   int
	width  int
	height int
}

// NewViewer validates inputs and positions the viewer on the first panel.
func NewViewer(stack field.Stack, titles []string, colormap string) (*Viewer, error) {
	if len(stack) == 0 {
		return nil, render.ErrEmptyStack
	}
	if len(titles) > 1 && len(titles) != len(stack) {
		return nil, fmt.Errorf("%w (%d titles for %d panels)", render.ErrTitleCount, len(titles), len(stack))
	}

	names := render.ColormapNames()
	cmap := 0
	found := false
	for i, name := range names {
		if name == colormap {
			cmap, found = i, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", render.ErrUnknownColormap, colormap)
	}

	return &Viewer{
		stack:  stack,
		titles: titles,
		cmaps:  names,
		cmap:   cmap,
		width:  80,
		height: 24,
	}, nil
}

func (v Viewer) title(i int) string {
	switch len(v.titles) {
	case 0:
		return ""
	case 1:
		return v.titles[0]
	}
	return v.titles[i]
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "right", "l", "n":
			if v.index < len(v.stack)-1 {
				v.index++
			}
		case "left", "h", "p":
			if v.index > 0 {
				v.index--
			}
		case "c":
			v.cmap = (v.cmap + 1) % len(v.cmaps)
		}
	}
	return v, nil
}

func (v Viewer) View() string {
	f := v.stack[v.index]
	min, max := f.MinMax()

	// Known name, lookup cannot fail.
	cm, _ := render.ColormapByName(v.cmaps[v.cmap])

	header := cyan.Render(fmt.Sprintf("%s  max:%.4f  min:%.4f", v.title(v.index), max, min))

	mapH := v.height - 4
	if mapH < 1 {
		mapH = 1
	}
	mapW := v.width
	if mapW < 1 {
		mapW = 1
	}
	heat := Heatmap(f, mapW, mapH, cm, math.NaN(), math.NaN())

	status := fmt.Sprintf("%s  %s  %s",
		white.Render(fmt.Sprintf("panel %d/%d", v.index+1, len(v.stack))),
		yellow.Render("cmap:"+v.cmaps[v.cmap]),
		dim.Render("←/→ panel  c colormap  q quit"),
	)

	return header + "\n" + heat + status
}

// Run shows the viewer full screen and blocks until the user quits.
func Run(stack field.Stack, titles []string, colormap string) error {
	v, err := NewViewer(stack, titles, colormap)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}
