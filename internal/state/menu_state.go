// internal/state/menu_state.go
package state

import (
	"time"

	"go-castle-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
	"go.uber.org/zap"
)

var menuLines = []string{
	config.WindowTitle,
	"",
	"left click: place tower / select tower",
	"1 / 2: archer / wizard",
	"U: upgrade selected tower",
	"P, F9: pause",
	"",
	"press SPACE to start",
}

// MenuState — стартовый экран с подсказкой по управлению.
type MenuState struct {
	sm           *StateMachine
	newSession   NewSession
	tickInterval time.Duration
	log          *zap.Logger
}

func NewMenuState(sm *StateMachine, newSession NewSession, tickInterval time.Duration, log *zap.Logger) *MenuState {
	return &MenuState{sm: sm, newSession: newSession, tickInterval: tickInterval, log: log}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.newSession, m.tickInterval, m.log))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*10
	for _, line := range menuLines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
