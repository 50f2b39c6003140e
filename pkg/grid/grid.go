// Package grid models a fixed-size character screen for the desktop console.
package grid

// GetGridCoords maps a linear cell index to column and row.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Screen is a Cols x Rows buffer of runes with a write cursor. Text past
// the last row scrolls the screen up by one row.
type Screen struct {
	Cols, Rows int
	cells      []rune
	cursor     int
	wrapped    bool // last write filled a row, cursor already on the next one
}

func NewScreen(cols, rows int) *Screen {
	return &Screen{Cols: cols, Rows: rows, cells: make([]rune, cols*rows)}
}

// Cells returns the backing buffer; zero means an empty cell.
func (s *Screen) Cells() []rune { return s.cells }

// Cursor returns the cursor position as column and row.
func (s *Screen) Cursor() (x, y int) { return GetGridCoords(s.cursor, s.Cols) }

// WriteString writes str at the cursor. '\n' moves to the start of the next
// row and long lines wrap.
func (s *Screen) WriteString(str string) {
	for _, r := range str {
		if r == '\n' {
			s.newline()
			continue
		}
		if r == '\t' {
			r = ' '
		}
		if s.cursor >= len(s.cells) {
			s.scroll()
		}
		s.cells[s.cursor] = r
		s.cursor++
		s.wrapped = s.cursor%s.Cols == 0
	}
}

// Backspace erases the cell before the cursor, staying on the current row.
func (s *Screen) Backspace() {
	x, _ := s.Cursor()
	if s.cursor == 0 || (x == 0 && !s.wrapped) {
		return
	}
	s.wrapped = false
	s.cursor--
	s.cells[s.cursor] = 0
}

// Clear empties the screen and homes the cursor.
func (s *Screen) Clear() {
	clear(s.cells)
	s.cursor = 0
	s.wrapped = false
}

// Row returns row y as a string with empty cells as spaces.
func (s *Screen) Row(y int) string {
	row := make([]rune, s.Cols)
	for x := range row {
		r := s.cells[y*s.Cols+x]
		if r == 0 {
			r = ' '
		}
		row[x] = r
	}
	return string(row)
}

func (s *Screen) newline() {
	if s.wrapped {
		s.wrapped = false
		if s.cursor >= len(s.cells) {
			s.scroll()
		}
		return
	}
	_, y := GetGridCoords(s.cursor, s.Cols)
	if y+1 >= s.Rows {
		s.scroll()
		return
	}
	s.cursor = (y + 1) * s.Cols
}

// scroll drops the top row and puts the cursor at the start of the bottom row.
func (s *Screen) scroll() {
	copy(s.cells, s.cells[s.Cols:])
	clear(s.cells[len(s.cells)-s.Cols:])
	s.cursor = len(s.cells) - s.Cols
}
