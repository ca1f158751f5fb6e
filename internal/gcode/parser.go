package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MoveType represents the type of cutting-table movement.
type MoveType int

const (
	MoveRapid    MoveType = iota // travel with the tool disengaged
	MoveCut                      // XY move with the tool engaged
	MoveToolDown                 // Z lowering into the fabric
	MoveToolUp                   // Z raising out of the fabric
)

// Move represents a single parsed movement.
type Move struct {
	Type     MoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
}

var wordRe = regexp.MustCompile(`([XYZF])(-?\d+\.?\d*)`)

// ParseGCode parses a program into structured moves. It tracks absolute
// position and whether the tool is engaged, either by Z below zero or by a
// switched tool (M3 on, M5 off).
func ParseGCode(code string) []Move {
	var moves []Move

	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0
	switchedOn := false

	for _, line := range strings.Split(code, "\n") {
		line = stripComments(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		fields := strings.Fields(upper)

		switch fields[0] {
		case "M3", "M03", "M4", "M04":
			switchedOn = true
			continue
		case "M5", "M05":
			switchedOn = false
			continue
		case "G0", "G00", "G1", "G01":
		default:
			continue
		}
		isRapid := fields[0] == "G0" || fields[0] == "G00"

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		for _, m := range wordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
			case "Y":
				newY = val
			case "Z":
				newZ = val
			case "F":
				newFeed = val
			}
		}

		moves = append(moves, Move{
			Type:     classifyMove(isRapid, switchedOn, curZ, newZ, curX != newX || curY != newY),
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
		})
		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}
	return moves
}

// stripComments removes ";" and parenthesised comments.
func stripComments(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	for {
		start := strings.Index(line, "(")
		if start < 0 {
			break
		}
		end := strings.Index(line[start:], ")")
		if end < 0 {
			line = line[:start]
			break
		}
		line = line[:start] + line[start+end+1:]
	}
	return strings.TrimSpace(line)
}

func classifyMove(isRapid, switchedOn bool, fromZ, toZ float64, hasXY bool) MoveType {
	zDelta := toZ - fromZ
	switch {
	case zDelta > 0.001 && !hasXY:
		return MoveToolUp
	case zDelta < -0.001 && !hasXY && !isRapid:
		return MoveToolDown
	case isRapid:
		return MoveRapid
	case switchedOn || toZ < 0:
		return MoveCut
	default:
		return MoveRapid
	}
}

// Stats summarises a parsed program. Lengths are in mm.
type Stats struct {
	Moves       int
	Cuts        int // number of tool engagements
	CutLength   float64
	RapidLength float64
	MinX, MaxX  float64 // extent of cutting moves across the roll
	MinY, MaxY  float64 // extent of cutting moves along the roll
}

// Summarize totals cut and travel distances of a program.
func Summarize(moves []Move) Stats {
	s := Stats{Moves: len(moves)}
	first := true
	engaged := false
	for _, m := range moves {
		dist := math.Hypot(m.ToX-m.FromX, m.ToY-m.FromY)
		switch m.Type {
		case MoveCut:
			if !engaged {
				s.Cuts++
				engaged = true
			}
			s.CutLength += dist
			if first {
				s.MinX, s.MaxX = math.Min(m.FromX, m.ToX), math.Max(m.FromX, m.ToX)
				s.MinY, s.MaxY = math.Min(m.FromY, m.ToY), math.Max(m.FromY, m.ToY)
				first = false
			}
			s.MinX = math.Min(s.MinX, math.Min(m.FromX, m.ToX))
			s.MaxX = math.Max(s.MaxX, math.Max(m.FromX, m.ToX))
			s.MinY = math.Min(s.MinY, math.Min(m.FromY, m.ToY))
			s.MaxY = math.Max(s.MaxY, math.Max(m.FromY, m.ToY))
		case MoveRapid:
			engaged = false
			s.RapidLength += dist
		case MoveToolUp:
			engaged = false
		}
	}
	return s
}

// WithinRoll reports whether every cutting move stays inside a roll of the
// given width in mm.
func (s Stats) WithinRoll(widthMM float64) bool {
	const eps = 1e-6
	if s.Cuts == 0 {
		return true
	}
	return s.MinX >= -eps && s.MaxX <= widthMM+eps && s.MinY >= -eps
}
