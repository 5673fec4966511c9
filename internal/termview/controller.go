package termview

import (
	"errors"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"

	"github.com/gdamore/tcell/v2"
)

// Controller превращает нажатия клавиш в команды сессии.
//
//	стрелки/hjkl  курсор
//	a, z          лучник, маг под курсором
//	u             повысить уровень башни под курсором
//	space         пауза
//	q, Esc        выход
type Controller struct {
	game    *app.Game
	Cursor  types.Point
	Paused  bool
	Message string
}

func NewController(game *app.Game) *Controller {
	snap := game.Snapshot()
	return &Controller{game: game, Cursor: types.Point{X: snap.Width / 2, Y: snap.Height / 2}}
}

// HandleKey обрабатывает событие клавиатуры. Возвращает false, когда пора выходить.
func (c *Controller) HandleKey(ev *tcell.EventKey) bool {
	return c.Press(ev.Key(), ev.Rune())
}

// Press применяет одну клавишу.
func (c *Controller) Press(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.moveCursor(0, -1)
	case tcell.KeyDown:
		c.moveCursor(0, 1)
	case tcell.KeyLeft:
		c.moveCursor(-1, 0)
	case tcell.KeyRight:
		c.moveCursor(1, 0)
	case tcell.KeyRune:
		return c.pressRune(r)
	}
	return true
}

func (c *Controller) pressRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'k':
		c.moveCursor(0, -1)
	case 'j':
		c.moveCursor(0, 1)
	case 'h':
		c.moveCursor(-1, 0)
	case 'l':
		c.moveCursor(1, 0)
	case 'a':
		c.place(defs.TowerArcher)
	case 'z':
		c.place(defs.TowerWizard)
	case 'u':
		c.levelUp()
	case ' ':
		c.Paused = !c.Paused
		c.Message = ""
		if c.Paused {
			c.Message = "paused"
		}
	}
	return true
}

func (c *Controller) moveCursor(dx, dy int) {
	snap := c.game.Snapshot()
	next := c.Cursor.Add(dx, dy)
	if next.Within(snap.Width, snap.Height) {
		c.Cursor = next
	}
}

func (c *Controller) place(kind defs.TowerKind) {
	if _, err := c.game.PlaceTower(kind, c.Cursor, 1); err != nil {
		c.Message = err.Error()
		return
	}
	c.Message = string(kind) + " placed at " + c.Cursor.String()
}

func (c *Controller) levelUp() {
	info, ok := c.game.TowerAt(c.Cursor)
	if !ok {
		c.Message = "no tower at " + c.Cursor.String()
		return
	}
	err := c.game.LevelUpTower(info.ID)
	switch {
	case errors.Is(err, app.ErrMaxLevel):
		c.Message = "tower already at max level"
	case err != nil:
		c.Message = err.Error()
	default:
		c.Message = "tower upgraded"
	}
}
