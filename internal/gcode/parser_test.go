package gcode

import (
	"math"
	"testing"
)

func TestParseGCode_Empty(t *testing.T) {
	moves := ParseGCode("")
	if len(moves) != 0 {
		t.Errorf("expected 0 moves for empty input, got %d", len(moves))
	}
}

func TestParseGCode_CommentsOnly(t *testing.T) {
	code := `; This is a comment
; Another comment
(parenthetical comment)
`
	moves := ParseGCode(code)
	if len(moves) != 0 {
		t.Errorf("expected 0 moves for comments-only input, got %d", len(moves))
	}
}

func TestParseGCode_RapidMove(t *testing.T) {
	moves := ParseGCode("G0 X10.000 Y20.000\n")
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d", len(moves))
	}
	m := moves[0]
	if m.Type != MoveRapid {
		t.Errorf("expected MoveRapid, got %d", m.Type)
	}
	if m.FromX != 0 || m.FromY != 0 {
		t.Errorf("expected from (0,0), got (%.3f, %.3f)", m.FromX, m.FromY)
	}
	if m.ToX != 10 || m.ToY != 20 {
		t.Errorf("expected to (10,20), got (%.3f, %.3f)", m.ToX, m.ToY)
	}
}

func TestParseGCode_KnifeSequence(t *testing.T) {
	code := "G0 Z5\nG0 X0 Y0\nG1 Z-1 F3000\nG1 X100 Y0 F6000 ; cut\nG0 Z5\n"
	moves := ParseGCode(code)
	want := []MoveType{MoveToolUp, MoveRapid, MoveToolDown, MoveCut, MoveToolUp}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(moves))
	}
	for i, w := range want {
		if moves[i].Type != w {
			t.Errorf("move %d: expected type %d, got %d", i, w, moves[i].Type)
		}
	}
	if moves[3].FeedRate != 6000 {
		t.Errorf("expected feed rate 6000, got %.1f", moves[3].FeedRate)
	}
}

func TestParseGCode_LaserSwitch(t *testing.T) {
	code := "M5\nG0 X10 Y10\nM3 S800\nG1 X20 Y10 F1000\nM5\nG1 X30 Y10\n"
	moves := ParseGCode(code)
	if len(moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(moves))
	}
	if moves[1].Type != MoveCut {
		t.Errorf("expected cut while the laser is on, got %d", moves[1].Type)
	}
	if moves[2].Type != MoveRapid {
		t.Errorf("expected travel once the laser is off, got %d", moves[2].Type)
	}
}

func TestParseGCode_InlineParenComment(t *testing.T) {
	moves := ParseGCode("G0 (travel) X5 Y6\n")
	if len(moves) != 1 || moves[0].ToX != 5 || moves[0].ToY != 6 {
		t.Errorf("expected a move to (5,6), got %+v", moves)
	}
}

func TestParseGCode_IgnoresOtherCommands(t *testing.T) {
	moves := ParseGCode("G90\nG21\nG64 P0.05\nM2\n")
	if len(moves) != 0 {
		t.Errorf("expected no moves, got %d", len(moves))
	}
}

func TestSummarize(t *testing.T) {
	code := "G0 X0 Y0\nG1 Z-1\nG1 X30 Y0\nG1 X30 Y40\nG0 Z5\nG0 X80 Y40\nG1 Z-1\nG1 X110 Y40\nG0 Z5\n"
	s := Summarize(ParseGCode(code))
	if s.Cuts != 2 {
		t.Errorf("expected 2 cuts, got %d", s.Cuts)
	}
	if math.Abs(s.CutLength-100) > 1e-9 {
		t.Errorf("expected cut length 100, got %.3f", s.CutLength)
	}
	if math.Abs(s.RapidLength-50) > 1e-9 {
		t.Errorf("expected rapid length 50, got %.3f", s.RapidLength)
	}
	if s.MinX != 0 || s.MaxX != 110 || s.MaxY != 40 {
		t.Errorf("unexpected extent X %.1f..%.1f Y ..%.1f", s.MinX, s.MaxX, s.MaxY)
	}
	if !s.WithinRoll(110) || s.WithinRoll(100) {
		t.Error("WithinRoll did not respect the roll width")
	}
}

func TestStats_WithinRollNoCuts(t *testing.T) {
	if !(Stats{}).WithinRoll(0) {
		t.Error("expected an empty program to fit any roll")
	}
}
