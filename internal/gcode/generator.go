package gcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piwi3910/PatternCut/internal/model"
)

// mmPerCm converts plan units to machine units.
const mmPerCm = 10.0

// ErrEmptyLayout is returned when there is nothing to cut.
var ErrEmptyLayout = errors.New("no placements to cut")

// Generator produces cutting-table programs from a marker layout.
type Generator struct {
	Settings Settings
	profile  Profile
}

// New returns a generator for the settings' profile.
func New(settings Settings) *Generator {
	if settings.Segments < 1 {
		settings.Segments = DefaultSettings().Segments
	}
	return &Generator{
		Settings: settings,
		profile:  GetProfile(settings.Profile),
	}
}

// Profile returns the profile in use.
func (g *Generator) Profile() Profile {
	return g.profile
}

// Generate writes one program cutting every placement of the layout. X runs
// across the roll and Y along it, both in mm from the roll corner. Oversize
// placements are skipped with a warning comment.
func (g *Generator) Generate(plan model.CuttingPlan, layout model.MarkerLayout) (string, error) {
	if len(layout.Placements) == 0 {
		return "", ErrEmptyLayout
	}

	byID := make(map[string]model.CuttingPiece, len(plan.Pieces))
	for _, p := range plan.Pieces {
		byID[p.ID] = p
	}

	var b strings.Builder
	g.writeHeader(&b, layout)
	for i, pl := range layout.Placements {
		piece, ok := byID[pl.PieceID]
		if !ok {
			b.WriteString(g.comment(fmt.Sprintf("WARNING: unknown piece %s, skipping", pl.PieceID)))
			continue
		}
		g.writePiece(&b, piece, pl, i+1)
	}
	g.writeFooter(&b)
	return b.String(), nil
}

func (g *Generator) writeHeader(b *strings.Builder, layout model.MarkerLayout) {
	b.WriteString(g.comment("PatternCut cutting program"))
	b.WriteString(g.comment(fmt.Sprintf("Marker: %.1f x %.1f cm", layout.FabricWidth, layout.UsedLength)))
	b.WriteString(g.comment(fmt.Sprintf("Pieces: %d, Efficiency: %.1f%%", len(layout.Placements), layout.Efficiency())))
	b.WriteString(g.comment(fmt.Sprintf("Feed: %.0f mm/min, Profile: %s", g.Settings.FeedRate, g.profile.Name)))
	b.WriteString("\n")

	for _, code := range g.profile.StartCode {
		b.WriteString(code + "\n")
	}
	g.toolUp(b)
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove, g.format(0), g.format(0)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	b.WriteString(g.comment("=== Job complete ==="))
	for _, code := range g.profile.EndCode {
		b.WriteString(strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ)) + "\n")
	}
}

func (g *Generator) writePiece(b *strings.Builder, piece model.CuttingPiece, pl model.MarkerPlacement, num int) {
	b.WriteString(g.comment(fmt.Sprintf("--- Piece %d: %s copy %d (%.1f x %.1f cm)%s ---",
		num, piece.Name, pl.Copy, piece.Width, piece.Height, rotatedStr(pl.Rotated))))

	if pl.Oversize {
		b.WriteString(g.comment("WARNING: piece is wider than the roll, skipping"))
		b.WriteString("\n")
		return
	}

	outline := pl.PlaceOutline(piece.Outline.Flatten(g.Settings.Segments), piece.Height)
	if len(outline) < 3 {
		b.WriteString(g.comment("WARNING: outline has fewer than 3 points, skipping"))
		b.WriteString("\n")
		return
	}

	start := outline[0]
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove,
		g.format(start.X*mmPerCm), g.format(start.Y*mmPerCm)))
	g.toolDown(b)
	for _, pt := range outline[1:] {
		g.writeCut(b, pt)
	}
	g.writeCut(b, start)
	g.toolUp(b)
	b.WriteString("\n")
}

func (g *Generator) writeCut(b *strings.Builder, pt model.Point2D) {
	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
		g.format(pt.X*mmPerCm), g.format(pt.Y*mmPerCm), g.format(g.Settings.FeedRate)))
}

func (g *Generator) toolDown(b *strings.Builder) {
	if g.profile.UsesZ {
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", g.profile.FeedMove,
			g.format(g.Settings.CutZ), g.format(g.Settings.FeedRate)))
		return
	}
	on := g.profile.ToolOn
	if strings.Contains(on, "%d") {
		on = fmt.Sprintf(on, g.Settings.Power)
	}
	b.WriteString(on + "\n")
}

func (g *Generator) toolUp(b *strings.Builder) {
	if g.profile.UsesZ {
		b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(g.Settings.SafeZ)))
		return
	}
	b.WriteString(g.profile.ToolOff + "\n")
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	return fmt.Sprintf("%.*f", g.profile.DecimalPlaces, v)
}

func rotatedStr(r bool) string {
	if r {
		return " [rotated]"
	}
	return ""
}
