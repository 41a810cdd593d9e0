package main

import (
	"sort"

	"tunnel-server/pkg/api"

	"github.com/gdamore/tcell/v2"
)

// Поле 64x64 тайла рисуется в 64x32 знакоместа: одна клетка экрана - два тайла по вертикали.
const (
	tilesPerRow = 2
	statusRows  = 2
)

var (
	styleEarth  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x8B5A2B)).Background(tcell.NewHexColor(0x3B2410))
	styleTunnel = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleLog    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

type cell struct {
	ch    rune
	color string // "#RRGGBB", пусто - грунт или тоннель
	earth bool
}

// frame - кадр без привязки к экрану, строки сверху вниз.
type frame struct {
	width, height int
	cells         [][]cell
	status        string
}

// composeFrame раскладывает снимок по знакоместам. Ближние к зрителю сущности рисуются последними.
func composeFrame(state api.ServerResponse) frame {
	width, height := 64, 64
	if state.Grid != nil {
		width, height = state.Grid.Width, state.Grid.Height
	}
	unit := 4
	if state.Grid != nil && state.Grid.UnitSize > 0 {
		unit = state.Grid.UnitSize
	}

	rows := (height + tilesPerRow - 1) / tilesPerRow
	f := frame{width: width, height: rows, status: state.Status}
	f.cells = make([][]cell, rows)
	for r := range f.cells {
		f.cells[r] = make([]cell, width)
		for x := range f.cells[r] {
			f.cells[r][x] = cell{ch: ' '}
		}
	}

	// Terrain приходит сверху вниз: строка 0 - это y = height-1
	for i, line := range state.Terrain {
		y := height - 1 - i
		r := screenRow(y, height)
		for x := 0; x < len(line) && x < width; x++ {
			if line[x] == '#' {
				f.cells[r][x] = cell{ch: '░', earth: true}
			}
		}
	}

	ents := append([]api.EntityView(nil), state.Entities...)
	sort.SliceStable(ents, func(i, j int) bool {
		return ents[i].Render.Depth > ents[j].Render.Depth
	})
	for _, e := range ents {
		ch := '?'
		if e.Render.Symbol != "" {
			ch = []rune(e.Render.Symbol)[0]
		}
		for dy := 0; dy < unit; dy++ {
			for dx := 0; dx < unit; dx++ {
				x, y := e.Pos.X+dx, e.Pos.Y+dy
				if x < 0 || x >= width || y < 0 || y >= height {
					continue
				}
				f.cells[screenRow(y, height)][x] = cell{ch: ch, color: e.Render.Color}
			}
		}
	}
	return f
}

func screenRow(y, height int) int {
	return (height - 1 - y) / tilesPerRow
}

// draw выводит кадр и последние сообщения на экран.
func draw(s tcell.Screen, f frame, logs []string) {
	s.Clear()
	for r, line := range f.cells {
		for x, c := range line {
			style := styleTunnel
			switch {
			case c.earth:
				style = styleEarth
			case c.color != "":
				style = styleTunnel.Foreground(tcell.GetColor(c.color))
			}
			s.SetContent(x, r, c.ch, nil, style)
		}
	}
	drawText(s, 0, f.height, f.status, styleStatus)
	for i, l := range logs {
		drawText(s, 0, f.height+statusRows+i, l, styleLog)
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
