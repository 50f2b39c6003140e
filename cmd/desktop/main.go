package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"golet/pkg/config"
	"golet/pkg/grid"
	"golet/pkg/lang"
	"golet/pkg/repl"
)

// Cell size and baseline of basicfont.Face7x13.
const (
	charWidth  = 7
	charHeight = 13
	charAscent = 11
	statusBar  = 16
)

// console is the window-independent part of the desktop REPL: the driver,
// the character screen and the line being typed.
type console struct {
	driver *repl.Driver
	screen *grid.Screen
	line   []rune
}

func newConsole(d *repl.Driver, cols, rows int) *console {
	c := &console{driver: d, screen: grid.NewScreen(cols, rows)}
	c.screen.WriteString("golet desktop. Esc drops a pending unit, :quit exits.\n")
	c.screen.WriteString(d.Prompt())
	return c
}

func (c *console) typeRunes(rs []rune) {
	for _, r := range rs {
		if r < ' ' {
			continue
		}
		c.line = append(c.line, r)
		c.screen.WriteString(string(r))
	}
}

func (c *console) backspace() {
	if len(c.line) == 0 {
		return
	}
	c.line = c.line[:len(c.line)-1]
	c.screen.Backspace()
}

// enter submits the typed line and reports whether the REPL should exit.
func (c *console) enter() bool {
	line := string(c.line)
	c.line = c.line[:0]
	c.screen.WriteString("\n")

	reply := c.driver.Submit(line)
	if reply.Quit {
		return true
	}
	if reply.Output != "" {
		c.screen.WriteString(reply.Output + "\n")
	}
	c.screen.WriteString(c.driver.Prompt())
	return false
}

func (c *console) cancel() {
	c.driver.Cancel()
	c.line = c.line[:0]
	c.screen.WriteString("\n" + c.driver.Prompt())
}

func (c *console) status() string {
	if c.driver.Pending() {
		return "pending unit"
	}
	return "ready"
}

// render paints the screen cells and the cursor into canvas, which must
// be Cols*charWidth x Rows*charHeight.
func render(canvas *image.RGBA, s *grid.Screen) {
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: canvas, Src: image.White, Face: basicfont.Face7x13}
	glyph := func(r rune, x, y int) {
		d.Dot = fixed.P(x*charWidth, y*charHeight+charAscent)
		d.DrawString(string(r))
	}

	for i, r := range s.Cells() {
		if r == 0 || r == ' ' {
			continue
		}
		x, y := grid.GetGridCoords(i, s.Cols)
		glyph(r, x, y)
	}
	if x, y := s.Cursor(); y < s.Rows {
		glyph('_', x, y)
	}
}

type Game struct {
	con    *console
	canvas *image.RGBA   // CPU-side text layer
	img    *ebiten.Image // reused GPU copy of canvas
}

func newGame(con *console) *Game {
	s := con.screen
	return &Game{
		con:    con,
		canvas: image.NewRGBA(image.Rect(0, 0, s.Cols*charWidth, s.Rows*charHeight)),
	}
}

func (g *Game) Update() error {
	g.con.typeRunes(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.con.backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.con.cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if g.con.enter() {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		b := g.canvas.Bounds()
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	render(g.canvas, g.con.screen)
	g.img.WritePixels(g.canvas.Pix)
	screen.DrawImage(g.img, &ebiten.DrawImageOptions{})

	ebitenutil.DebugPrintAt(screen, g.con.status(), 0, g.con.screen.Rows*charHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.con.screen
	return s.Cols * charWidth, s.Rows*charHeight + statusBar
}

func main() {
	configPath := flag.String("config", config.DefaultFile, "YAML settings file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	dc := cfg.Desktop

	game := newGame(newConsole(repl.NewDriver(lang.NewSession(), cfg.REPL), dc.Columns, dc.Rows))

	w, h := game.Layout(0, 0)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(float64(w)*dc.Scale), int(float64(h)*dc.Scale))
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%dx%d)", dc.Title, dc.Columns, dc.Rows))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
