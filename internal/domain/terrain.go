package domain

// Terrain — сетка выкапываемого грунта, адресуется абсолютными координатами тайла.
// Единственный источник правды о наличии грунта: визуал строится из нее же.
type Terrain struct {
	cells [FieldWidth][FieldHeight]bool
}

// Шахта посередине поля, вырезанная при заполнении.
const (
	terrainTopRow    = 59
	shaftLeftColumn  = 30
	shaftRightColumn = 33
	shaftBottomRow   = 4
)

// FillDefault заполняет стартовый рельеф: строки 0..59, кроме шахты 30..33 от строки 4.
func (t *Terrain) FillDefault() {
	for x := 0; x < FieldWidth; x++ {
		for y := 0; y < FieldHeight; y++ {
			inShaft := x >= shaftLeftColumn && x <= shaftRightColumn && y >= shaftBottomRow
			t.cells[x][y] = y <= terrainTopRow && !inShaft
		}
	}
}

// At — наличие грунта в одном тайле. Вне поля грунта нет.
func (t *Terrain) At(x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	return t.cells[x][y]
}

// Set ставит/убирает грунт в одном тайле (для тестов и отладки).
func (t *Terrain) Set(x, y int, present bool) {
	if InBounds(x, y) {
		t.cells[x][y] = present
	}
}

// HasTerrainAt — есть ли грунт хотя бы в одной клетке квадрата с якорем (x,y).
func (t *Terrain) HasTerrainAt(x, y int) bool {
	for i := x; i < x+UnitSize; i++ {
		for j := y; j < y+UnitSize; j++ {
			if t.At(i, j) {
				return true
			}
		}
	}
	return false
}

// ClearTerrain убирает грунт под квадратом. Возвращает true, если что-то было выкопано.
func (t *Terrain) ClearTerrain(x, y int) bool {
	removed := false
	for i := x; i < x+UnitSize; i++ {
		for j := y; j < y+UnitSize; j++ {
			if t.At(i, j) {
				t.cells[i][j] = false
				removed = true
			}
		}
	}
	return removed
}

// Count — сколько тайлов грунта осталось.
func (t *Terrain) Count() int {
	n := 0
	for x := 0; x < FieldWidth; x++ {
		for y := 0; y < FieldHeight; y++ {
			if t.cells[x][y] {
				n++
			}
		}
	}
	return n
}

// Rows возвращает грунт построчно сверху вниз ('#' — грунт, '.' — пусто).
func (t *Terrain) Rows() []string {
	rows := make([]string, 0, FieldHeight)
	for y := FieldHeight - 1; y >= 0; y-- {
		row := make([]byte, FieldWidth)
		for x := 0; x < FieldWidth; x++ {
			if t.cells[x][y] {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}
