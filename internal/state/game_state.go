// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"time"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
	"go-castle-defense/internal/ui"
	"go-castle-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"go.uber.org/zap"
)

// NewSession создаёт новую сессию, например для перезапуска после поражения.
type NewSession func() *app.Game

// GameState — состояние игры
type GameState struct {
	sm         *StateMachine
	game       *app.Game
	newSession NewSession
	interval   time.Duration
	clock      *Clock
	log        *zap.Logger

	renderer        *render.BoardRenderer
	fontFace        font.Face
	indicator       *ui.StateIndicator
	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.CastleHealthIndicator
	pauseButton     *ui.PauseButton
	speedButton     *ui.SpeedButton
	infoPanel       *ui.InfoPanel

	buildKind     defs.TowerKind
	selected      types.EntityID
	message       string
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, newSession NewSession, tickInterval time.Duration, log *zap.Logger) *GameState {
	game := newSession()
	snap := game.Snapshot()
	face := basicfont.Face7x13

	colors := &render.BoardColors{
		BackgroundColor: config.BackgroundColor,
		LandscapeColor:  config.LandscapeColor,
		PlaceColor:      config.PlaceColor,
		RoadColor:       config.RoadColor,
		DecorColor:      config.DecorColor,
		CastleColor:     config.CastleColor,
		GridColor:       config.GridColor,
		EnemyColor:      config.EnemyColor,
		WarriorColor:    config.WarriorColor,
		ArcherColor:     config.ArcherColor,
		WizardColor:     config.WizardColor,
		AttackColor:     config.AttackColor,
		CursorColor:     config.CursorColor,
		TextColor:       config.TextLightColor,
		StrokeWidth:     config.StrokeWidth,
		AttackWidth:     config.AttackWidth,
	}
	renderer := render.NewBoardRenderer(snap.Width, snap.Height, config.CellSize, config.BoardOffsetX, config.BoardOffsetY, face, colors)
	renderer.RenderMapImage(snap.Tiles, snap.Castle.Position)

	return &GameState{
		sm:              sm,
		game:            game,
		newSession:      newSession,
		interval:        tickInterval,
		clock:           NewClock(tickInterval),
		log:             log,
		renderer:        renderer,
		fontFace:        face,
		indicator:       ui.NewStateIndicator(float32(config.ScreenWidth-config.IndicatorOffsetX), float32(config.IndicatorOffsetX), config.IndicatorRadius),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2, 40, face),
		healthIndicator: ui.NewCastleHealthIndicator(config.BoardOffsetX, 60, face),
		pauseButton:     ui.NewPauseButton(float32(config.ScreenWidth-110), float32(config.IndicatorOffsetX), 10, config.PausedStateColor, config.RunningStateColor),
		speedButton:     ui.NewSpeedButton(float32(config.ScreenWidth-170), float32(config.IndicatorOffsetX), 10, config.SpeedButtonColors),
		infoPanel:       ui.NewInfoPanel(face),
		buildKind:       defs.TowerArcher,
		lastClickTime:   time.Now(),
	}
}

// Game возвращает текущую сессию.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.clock.Reset()
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.buildKind = defs.TowerArcher
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.buildKind = defs.TowerWizard
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.levelUpSelected()
	}
	if g.game.Lost() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.log.Info("restarting session", zap.Uint64("tick", g.game.CurrentTick()))
		g.sm.SetState(NewGameState(g.sm, g.newSession, g.interval, g.log))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleBoardClick(x, y)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selected = 0
		g.infoPanel.Hide()
	}

	ticks := g.clock.Advance(deltaTime) * g.speedButton.Multiplier()
	if ticks > 0 {
		g.game.Advance(ticks)
		g.refreshPanel()
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	return g.pauseButton.IsClicked(x, y) || g.speedButton.IsClicked(x, y) ||
		g.indicator.IsClicked(x, y) || g.infoPanel.Contains(x, y)
}

func (g *GameState) handleUIClick(x, y int) {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.pause()
		}
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.speedButton.ToggleState()
		}
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
	case g.infoPanel.UpgradeClicked(x, y):
		g.levelUpSelected()
	}
}

// handleBoardClick выбирает башню под курсором или ставит новую.
func (g *GameState) handleBoardClick(x, y int) {
	cell, ok := g.renderer.ScreenToCell(x, y)
	if !ok {
		return
	}
	if info, found := g.game.TowerAt(cell); found {
		g.selected = info.ID
		g.infoPanel.SetTarget(info)
		return
	}
	g.infoPanel.Hide()
	g.selected = 0
	if _, err := g.game.PlaceTower(g.buildKind, cell, 1); err != nil {
		g.message = err.Error()
		return
	}
	g.message = fmt.Sprintf("%s placed at %v", g.buildKind, cell)
}

func (g *GameState) levelUpSelected() {
	if g.selected == 0 {
		return
	}
	err := g.game.LevelUpTower(g.selected)
	switch {
	case errors.Is(err, app.ErrMaxLevel):
		g.message = "tower already at max level"
	case err != nil:
		g.message = err.Error()
	default:
		g.message = "tower upgraded"
	}
	g.refreshPanel()
}

func (g *GameState) refreshPanel() {
	if g.selected == 0 {
		return
	}
	if info, err := g.game.Tower(g.selected); err == nil {
		g.infoPanel.Target = info
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := g.game.Snapshot()

	var hover *types.Point
	if cell, ok := g.renderer.ScreenToCell(ebiten.CursorPosition()); ok {
		hover = &cell
	}
	g.renderer.Draw(screen, snap, hover)

	stateColor := config.RunningStateColor
	if snap.Castle.Health == 0 {
		stateColor = config.LostStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
	// WaveLevel — уровень следующей волны, на экране номер текущей
	g.waveIndicator.Draw(screen, snap.WaveLevel-1)
	g.healthIndicator.Draw(screen, snap.Castle.Health, snap.Castle.MaxHealth)
	g.infoPanel.Draw(screen)

	status := fmt.Sprintf("Tick: %d  Pending: %d  Build: %s (1/2)  Speed: x%d", snap.Tick, snap.Pending, g.buildKind, g.speedButton.Multiplier())
	if snap.Castle.Health == 0 {
		status += "  CASTLE FALLEN, press R to restart"
	} else if g.message != "" {
		status += "  " + g.message
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *GameState) Exit() {}
