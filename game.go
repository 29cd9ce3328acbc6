package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/luka333z/snake/client"
	"github.com/luka333z/snake/config"
	"github.com/luka333z/snake/model"
	"github.com/luka333z/snake/monitor"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
)

// header is the strip above the game surface that carries the code label.
const header = 48

var (
	colorChrome = color.RGBA{0x18, 0x15, 0x16, 0xff}
	colorText   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colorMuted  = color.RGBA{0x8a, 0x85, 0x86, 0xff}
	colorField  = color.RGBA{0x2e, 0x29, 0x2a, 0xff}
)

// inbound is the part of the connection the game loop reads from.
type inbound interface {
	Inbound() <-chan model.Inbound
}

type Game struct {
	client  *client.Client
	conn    inbound
	monitor *monitor.Server
	colors  config.Colors

	size     int
	surface  *ebiten.Image
	uploaded image.Image

	strokes map[*Stroke]struct{}
	buttons []*Button
	field   image.Rectangle
	Panel   *Nine
	Tweens  map[*gween.Tween]Action

	notices     []client.Notice
	noticeAlpha float64
	cursorAlpha float64

	disconnected bool
	codes        []int
	chars        []rune
}

// connection is both directions of the game server link.
type connection interface {
	client.Sender
	inbound
}

func NewGame(cfg *config.Config, colors config.Colors, conn connection, mon *monitor.Server) *Game {
	g := &Game{
		conn:    conn,
		monitor: mon,
		colors:  colors,
		size:    cfg.SurfaceSize,
		surface: ebiten.NewImage(cfg.SurfaceSize, cfg.SurfaceSize),
		strokes: map[*Stroke]struct{}{},
		Panel:   newPanel(),
		Tweens:  make(map[*gween.Tween]Action),
	}
	g.client = client.New(conn,
		client.NewPainter(cfg.SurfaceSize, colors),
		client.NotifierFunc(g.pushNotice),
		log.WithField("component", "client"))

	field, rects := lobbyLayout(g.size)
	g.field = field
	g.buttons = []*Button{
		{Label: "New Game", Rect: rects[0], OnClick: g.client.StartNew},
		{Label: "Join Game", Rect: rects[1], OnClick: func() {
			g.client.JoinExisting(g.client.Session.CodeInput)
		}},
	}
	g.blinkCursor()
	return g
}

func (g *Game) Update() error {
	g.updateTweens(1 / float32(ebiten.TPS()))
	g.drainInbound()
	clicks := g.updateStrokes()

	if len(g.notices) > 0 {
		g.updateNotice(clicks)
	} else {
		g.codes = firedKeyCodes(g.codes[:0])
		for _, code := range g.codes {
			g.client.KeyDown(code)
		}
		if g.client.Session.LobbyVisible() {
			g.updateLobby(clicks)
		}
	}

	if g.monitor != nil {
		g.monitor.Publish(g.client.Status(), nil)
	}
	return nil
}

// drainInbound hands every queued message to the client, in arrival order.
func (g *Game) drainInbound() {
	if g.disconnected {
		return
	}
	for {
		select {
		case m, ok := <-g.conn.Inbound():
			if !ok {
				g.disconnected = true
				g.client.ConnectionLost()
				return
			}
			g.client.Handle(m)
		default:
			return
		}
	}
}

func (g *Game) updateStrokes() []image.Point {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}

	var clicks []image.Point
	for s := range g.strokes {
		s.Update()
		if !s.IsReleased() {
			continue
		}
		if p, ok := s.Click(); ok {
			clicks = append(clicks, p)
		}
		delete(g.strokes, s)
	}
	return clicks
}

func (g *Game) updateLobby(clicks []image.Point) {
	s := g.client.Session
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	s.TypeCode(string(g.chars))
	if repeating(ebiten.KeyBackspace) {
		s.EraseCode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.client.JoinExisting(s.CodeInput)
		return
	}
	for _, p := range clicks {
		for _, b := range g.buttons {
			if b.Contains(p) {
				b.OnClick()
				return
			}
		}
	}
}

func (g *Game) pushNotice(n client.Notice) {
	g.notices = append(g.notices, n)
	if len(g.notices) == 1 {
		g.fadeNotice()
	}
}

// updateNotice is modal: nothing else sees input while a notice is up.
func (g *Game) updateNotice(clicks []image.Point) {
	if len(clicks) == 0 &&
		!inpututil.IsKeyJustPressed(ebiten.KeyEnter) &&
		!inpututil.IsKeyJustPressed(ebiten.KeySpace) &&
		!inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return
	}
	n := g.notices[0]
	g.notices = g.notices[1:]
	if n.EndsGame() {
		g.client.Reset()
	}
	if len(g.notices) > 0 {
		g.fadeNotice()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorChrome)
	if g.client.Session.LobbyVisible() {
		g.drawLobby(screen)
	} else {
		g.drawGame(screen)
	}
	g.drawNotice(screen)

	ebitenutil.DebugPrintAt(screen, g.client.Session.Screen.Name(), g.size-60, 4)
}

func (g *Game) drawGame(screen *ebiten.Image) {
	painted := g.client.Refresh()
	// a new game acquires a new surface, upload it even before the first paint
	if img := g.client.Painter().Image(); img != nil && (painted || img != g.uploaded) {
		g.upload(img)
		g.uploaded = img
		if g.monitor != nil {
			g.monitor.Publish(g.client.Status(), img)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, header)
	screen.DrawImage(g.surface, op)

	if label := g.client.Session.CodeLabel; label != "" {
		text.Draw(screen, "Your game code: "+label, Font, 12, header-16, colorText)
	}
}

func (g *Game) upload(img image.Image) {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect == g.surface.Bounds() {
		g.surface.WritePixels(rgba.Pix)
		return
	}
	g.surface = ebiten.NewImageFromImage(img)
}

func (g *Game) drawLobby(screen *ebiten.Image) {
	title := image.Rect(0, header, g.size, g.field.Min.Y-40)
	x, y := centered(TitleFont, "Multiplayer Snake", title)
	text.Draw(screen, "Multiplayer Snake", TitleFont, x, y, g.colors.Food)

	f := g.field
	vector.DrawFilledRect(screen, float32(f.Min.X), float32(f.Min.Y), float32(f.Dx()), float32(f.Dy()), colorField, false)
	vector.StrokeRect(screen, float32(f.Min.X), float32(f.Min.Y), float32(f.Dx()), float32(f.Dy()), 2, g.colors.Snake, false)
	input := g.client.Session.CodeInput
	if input == "" {
		text.Draw(screen, "Enter game code", Font, f.Min.X+12, f.Min.Y+31, colorMuted)
	} else {
		text.Draw(screen, input, Font, f.Min.X+12, f.Min.Y+31, colorText)
	}
	cursorX := f.Min.X + 14 + text.BoundString(Font, input).Dx()
	vector.DrawFilledRect(screen, float32(cursorX), float32(f.Min.Y+12), 2, float32(f.Dy()-24),
		fade(colorText, g.cursorAlpha), false)

	for _, b := range g.buttons {
		g.Panel.R, g.Panel.G, g.Panel.B = unit(g.colors.Snake)
		g.Panel.alpha = 1
		g.Panel.SetBounds(b.Rect)
		g.Panel.Draw(screen)
		x, y := centered(Font, b.Label, b.Rect)
		text.Draw(screen, b.Label, Font, x, y, g.colors.Background)
	}
}

func (g *Game) drawNotice(screen *ebiten.Image) {
	if len(g.notices) == 0 {
		return
	}
	n := g.notices[0]
	const w, h = 420, 140
	box := image.Rect((g.size-w)/2, header+(g.size-h)/2, (g.size+w)/2, header+(g.size+h)/2)

	vector.DrawFilledRect(screen, 0, 0, float32(g.size), float32(g.size+header),
		color.NRGBA{0, 0, 0, uint8(0x90 * g.noticeAlpha)}, false)
	g.Panel.R, g.Panel.G, g.Panel.B = unit(colorText)
	g.Panel.alpha = g.noticeAlpha
	g.Panel.SetBounds(box)
	g.Panel.Draw(screen)

	msg := box
	msg.Max.Y -= 30
	x, y := centered(Font, n.Text(), msg)
	text.Draw(screen, n.Text(), Font, x, y, fade(g.colors.Background, g.noticeAlpha))
	hint := image.Rect(box.Min.X, box.Max.Y-44, box.Max.X, box.Max.Y-12)
	x, y = centered(Font, "OK", hint)
	text.Draw(screen, "OK", Font, x, y, fade(g.colors.Food, g.noticeAlpha))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size + header
}

func unit(c color.RGBA) (r, g, b float64) {
	return float64(c.R) / 0xff, float64(c.G) / 0xff, float64(c.B) / 0xff
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(float64(c.A) * alpha)}
}
