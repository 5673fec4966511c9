// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"strconv"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BoardRenderer рисует поле квадратными клетками. Статичная подложка
// рендерится один раз в mapImage, поверх каждый кадр идут юниты и атаки.
type BoardRenderer struct {
	width, height int
	cellSize      float32
	offsetX       float32
	offsetY       float32
	colors        *BoardColors
	fontFace      font.Face
	mapImage      *ebiten.Image
}

func NewBoardRenderer(width, height int, cellSize, offsetX, offsetY float32, fontFace font.Face, colors *BoardColors) *BoardRenderer {
	return &BoardRenderer{
		width:    width,
		height:   height,
		cellSize: cellSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		colors:   colors,
		fontFace: fontFace,
	}
}

// ScreenToCell переводит экранные координаты в клетку поля.
func (r *BoardRenderer) ScreenToCell(x, y int) (types.Point, bool) {
	fx := float32(x) - r.offsetX
	fy := float32(y) - r.offsetY
	if fx < 0 || fy < 0 {
		return types.Point{}, false
	}
	p := types.Point{X: int(fx / r.cellSize), Y: int(fy / r.cellSize)}
	return p, p.Within(r.width, r.height)
}

// CellCenter — центр клетки в экранных координатах.
func (r *BoardRenderer) CellCenter(p types.Point) (float32, float32) {
	return r.offsetX + (float32(p.X)+0.5)*r.cellSize, r.offsetY + (float32(p.Y)+0.5)*r.cellSize
}

// RenderMapImage pre-renders tiles and the castle into an offscreen image.
func (r *BoardRenderer) RenderMapImage(tiles []app.Sprite, castle types.Point) {
	w := int(float32(r.width) * r.cellSize)
	h := int(float32(r.height) * r.cellSize)
	r.mapImage = ebiten.NewImage(w, h)
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, tile := range tiles {
		x := float32(tile.Position.X) * r.cellSize
		y := float32(tile.Position.Y) * r.cellSize
		vector.DrawFilledRect(r.mapImage, x, y, r.cellSize, r.cellSize, r.colors.TileColor(string(tile.Visual)), false)
		vector.StrokeRect(r.mapImage, x, y, r.cellSize, r.cellSize, r.colors.StrokeWidth, r.colors.GridColor, false)
	}

	cx := (float32(castle.X) + 0.5) * r.cellSize
	cy := (float32(castle.Y) + 0.5) * r.cellSize
	half := r.cellSize * 0.4
	vector.DrawFilledRect(r.mapImage, cx-half, cy-half, half*2, half*2, r.colors.CastleColor, true)
	vector.StrokeRect(r.mapImage, cx-half, cy-half, half*2, half*2, r.colors.StrokeWidth, DarkenColor(r.colors.CastleColor), true)
}

// Draw рисует поле и динамические объекты снимка. cursor == nil — без подсветки.
func (r *BoardRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, cursor *types.Point) {
	if r.mapImage == nil {
		r.RenderMapImage(snap.Tiles, snap.Castle.Position)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.offsetX), float64(r.offsetY))
	screen.DrawImage(r.mapImage, op)

	for _, tower := range snap.Towers {
		r.drawTower(screen, tower)
	}
	for _, enemy := range snap.Enemies {
		r.drawUnit(screen, enemy)
	}
	for _, seg := range snap.Attacks {
		x0, y0 := r.CellCenter(seg.From)
		x1, y1 := r.CellCenter(seg.To)
		vector.StrokeLine(screen, x0, y0, x1, y1, r.colors.AttackWidth, r.colors.AttackColor, true)
	}
	if cursor != nil {
		x := r.offsetX + float32(cursor.X)*r.cellSize
		y := r.offsetY + float32(cursor.Y)*r.cellSize
		vector.StrokeRect(screen, x, y, r.cellSize, r.cellSize, r.colors.StrokeWidth*2, r.colors.CursorColor, false)
	}
}

func (r *BoardRenderer) drawTower(screen *ebiten.Image, s app.Sprite) {
	cx, cy := r.CellCenter(s.Position)
	clr := r.colors.SpriteColor(string(s.Visual))
	half := r.cellSize * 0.3
	vector.DrawFilledRect(screen, cx-half, cy-half, half*2, half*2, clr, true)
	vector.StrokeRect(screen, cx-half, cy-half, half*2, half*2, r.colors.StrokeWidth, DarkenColor(clr), true)
	r.drawLabel(screen, strconv.Itoa(s.Level), cx, cy, r.colors.BackgroundColor)
}

func (r *BoardRenderer) drawUnit(screen *ebiten.Image, s app.Sprite) {
	cx, cy := r.CellCenter(s.Position)
	clr := r.colors.SpriteColor(string(s.Visual))
	radius := r.cellSize * 0.3
	vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
	vector.StrokeCircle(screen, cx, cy, radius, r.colors.StrokeWidth, DarkenColor(clr), true)

	// полоска здоровья над юнитом
	if s.MaxHealth > 0 {
		barW := r.cellSize * 0.7
		ratio := float32(s.Health) / float32(s.MaxHealth)
		top := cy - radius - 6
		vector.DrawFilledRect(screen, cx-barW/2, top, barW, 3, DarkenColor(clr), false)
		vector.DrawFilledRect(screen, cx-barW/2, top, barW*ratio, 3, clr, false)
	}
	r.drawLabel(screen, strconv.Itoa(s.Level), cx, cy, r.colors.TextColor)
}

func (r *BoardRenderer) drawLabel(screen *ebiten.Image, label string, cx, cy float32, clr color.Color) {
	if r.fontFace == nil {
		return
	}
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(screen, label, r.fontFace, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, clr)
}
