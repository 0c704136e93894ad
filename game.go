package main

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skystrike/common"
	"github.com/milk9111/skystrike/component"
	"github.com/milk9111/skystrike/event"
	"github.com/milk9111/skystrike/manager"
	"github.com/milk9111/skystrike/prefabs"
	"github.com/milk9111/skystrike/system"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var keyBindings = map[ebiten.Key]system.Action{
	ebiten.KeyArrowUp:    system.ActionUp,
	ebiten.KeyW:          system.ActionUp,
	ebiten.KeyArrowDown:  system.ActionDown,
	ebiten.KeyS:          system.ActionDown,
	ebiten.KeyArrowLeft:  system.ActionLeft,
	ebiten.KeyA:          system.ActionLeft,
	ebiten.KeyArrowRight: system.ActionRight,
	ebiten.KeyD:          system.ActionRight,
	ebiten.KeySpace:      system.ActionFire,
	ebiten.KeyEscape:     system.ActionPause,
	ebiten.KeyP:          system.ActionPause,
	ebiten.KeyM:          system.ActionToggleMusic,
	ebiten.KeyN:          system.ActionToggleEffects,
}

type Game struct {
	campaign *system.Campaign
	scene    *sceneGraph
	sound    *toneSound
	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI
	face     ebtext.Face
	debug    bool

	pending        []system.InputEvent
	restartPending bool
	report         event.FrameReport
	clipboardOK    bool
}

func NewGame(c *system.Campaign, scene *sceneGraph, sound *toneSound, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		campaign: c,
		scene:    scene,
		sound:    sound,
		watcher:  watcher,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		debug:    debug,
	}
	g.pauseUI = NewPauseUI(g)
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: disabled: %v", err)
	} else {
		g.clipboardOK = true
	}
	return g
}

func (g *Game) queue(ev system.InputEvent) {
	g.pending = append(g.pending, ev)
}

func (g *Game) Update() error {
	g.reloadPrefabs()

	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.queue(system.Press(action))
		}
		if inpututil.IsKeyJustReleased(key) {
			g.queue(system.Release(action))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		g.copyReport()
	}

	state := g.campaign.Session().State()
	if state.CurrentState() == manager.StatePaused {
		g.pauseUI.Update()
	}
	if state.IsTerminal() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.restartPending = true
	}
	if state.CurrentState() == manager.StateInitializing && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.campaign.Level().Start()
	}

	if g.restartPending {
		g.restartPending = false
		g.pending = nil
		if err := g.campaign.Restart(); err != nil {
			return err
		}
	}

	for _, ev := range g.pending {
		g.campaign.HandleInput(ev)
	}
	g.pending = g.pending[:0]

	r, err := g.campaign.Tick()
	if err != nil {
		return err
	}
	g.report = r
	if g.debug {
		for _, e := range r.Events {
			log.Printf("frame %d: %s actor=%s other=%s amount=%d %s", e.Frame, e.Kind, e.Actor, e.Other, e.Amount, e.Detail)
		}
	}
	return nil
}

// reloadPrefabs rebuilds the catalog after an edit and restarts the level
// so every actor picks up the new tuning.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		log.Printf("prefabs: reload after %v: %v", changed, err)
		return
	}
	log.Printf("prefabs: reloaded after %v", changed)
	g.campaign.SetCatalog(cat)
	g.restartPending = true
}

func (g *Game) copyReport() {
	if !g.clipboardOK {
		return
	}
	out, err := g.report.YAML()
	if err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	log.Printf("clipboard: copied frame %d report", g.report.Frame)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x10, G: 0x14, B: 0x28, A: 0xff})

	g.scene.Each(func(n component.Node) {
		b := n.Bounds()
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), imageColor(n.Image()), false)
		if g.debug {
			hb := n.HitBounds()
			vector.StrokeRect(screen, float32(hb.X), float32(hb.Y), float32(hb.Width), float32(hb.Height), 1, color.White, false)
		}
	})

	g.drawHUD(screen)

	switch g.campaign.Session().State().CurrentState() {
	case manager.StatePaused:
		g.pauseUI.Draw(screen)
	case manager.StateInitializing:
		g.drawBanner(screen, g.campaign.Session().Definition().Title+"  (Enter to start)")
	case manager.StateWin:
		g.drawBanner(screen, "YOU WIN  (Enter to play again)")
	case manager.StateGameOver:
		g.drawBanner(screen, "GAME OVER  (Enter to retry)")
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  nodes: %d", ebiten.ActualTPS(), g.scene.Len()), 8, common.BaseHeight-20)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	r := g.report
	line := fmt.Sprintf("%s   HP %d/%d   kills %d   score %d   spread %d", r.Level, r.Health, r.MaxHealth, r.Kills, r.Score, r.Charges)
	if r.BossHealth > 0 {
		line += fmt.Sprintf("   boss %d", r.BossHealth)
		if r.BossShielded {
			line += " (shielded)"
		}
	}
	if g.sound.MusicMuted() {
		line += "   [music off]"
	}
	if g.sound.EffectsMuted() {
		line += "   [sfx off]"
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, line, g.face, op)

	if r.MaxHealth > 0 {
		w := float32(common.Lerp(0, 200, float64(r.Health)/float64(r.MaxHealth)))
		vector.DrawFilledRect(screen, 8, 26, w, 6, color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}, false)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	w, _ := ebtext.Measure(msg, g.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate((common.BaseWidth-w)/2, common.BaseHeight/2)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, msg, g.face, op)
}

// imageColor derives a stable placeholder color from an image key.
func imageColor(image string) color.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(image))
	v := h.Sum32()
	return color.NRGBA{R: uint8(v>>16) | 0x40, G: uint8(v>>8) | 0x40, B: uint8(v) | 0x40, A: 0xff}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
