// Package render draws a compiled metadata grid in the terminal so the
// derived collision, mount and reaction data can be checked against the
// painted level without loading the game.
package render

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/voskhod/go-tilesmith/tilesmith/worldmap"
)

// Previewer renders one metadata grid, one terminal cell per map cell,
// with arrow-key scrolling for maps larger than the screen.
type Previewer struct {
	screen tcell.Screen
	grid   *worldmap.Grid
	offX   int
	offY   int
}

// NewPreviewer initializes the terminal screen.
func NewPreviewer(grid *worldmap.Grid) (*Previewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}
	return &Previewer{screen: screen, grid: grid}, nil
}

// Run draws the grid and blocks until q, ESC or Ctrl-C.
func (p *Previewer) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		p.screen.Fini()
	}()

	p.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	p.draw()

	for {
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				p.scroll(0, -1)
			case tcell.KeyDown:
				p.scroll(0, 1)
			case tcell.KeyLeft:
				p.scroll(-1, 0)
			case tcell.KeyRight:
				p.scroll(1, 0)
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			}
		case *tcell.EventResize:
			p.screen.Sync()
			p.draw()
		}
	}
}

func (p *Previewer) scroll(dx, dy int) {
	p.offX = clamp(p.offX+dx*4, 0, p.grid.Width()-1)
	p.offY = clamp(p.offY+dy*4, 0, p.grid.Height()-1)
	p.draw()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *Previewer) draw() {
	p.screen.Clear()
	screenW, screenH := p.screen.Size()
	for sy := 0; sy < screenH; sy++ {
		for sx := 0; sx < screenW; sx++ {
			x := p.offX + sx
			y := p.offY + sy
			if !p.grid.InBounds(x, y) {
				continue
			}
			ch, style := tileGlyph(*p.grid.At(x, y))
			p.screen.SetContent(sx, sy, ch, nil, style)
		}
	}
	p.screen.Show()
}

// tileGlyph picks a rune and color for one cell.  Mounted walls render
// brighter than plain ones so unmountable stretches stand out.
func tileGlyph(t worldmap.Tile) (rune, tcell.Style) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	switch {
	case t.Collectible != 0:
		return '*', style.Foreground(tcell.ColorGreen)
	case t.Reaction == worldmap.ReactionChain:
		return '▓', style.Foreground(tcell.ColorAqua)
	case t.Reaction == worldmap.ReactionTerminal:
		return '▓', style.Foreground(tcell.ColorFuchsia)
	case t.Breakable:
		return '▒', style.Foreground(tcell.ColorRed)
	}

	if t.Mount != 0 {
		style = style.Foreground(tcell.ColorYellow)
	}
	switch t.Shape {
	case worldmap.ShapeSquare:
		return '█', style
	case worldmap.ShapeUpLeft:
		return '◢', style
	case worldmap.ShapeUpRight:
		return '◣', style
	case worldmap.ShapeDownLeft:
		return '◥', style
	case worldmap.ShapeDownRight:
		return '◤', style
	}
	return ' ', style
}
