package game

import (
	"errors"
	"testing"
)

func rankedNames(scores []SongScore) []string {
	names := make([]string, len(scores))
	for i, s := range scores {
		names[i] = s.Name
	}
	return names
}

func TestRankOrdersByCombinedScore(t *testing.T) {
	s := Snapshot{Scores: []SongScore{
		{Position: 1, Name: "A", Total: 3, Current: 0},
		{Position: 2, Name: "B", Total: 1, Current: 9},
		{Position: 3, Name: "C", Total: 6, Current: 1},
	}}

	got := rankedNames(Rank(s))
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestRankIsStableOnTies(t *testing.T) {
	s := Snapshot{Scores: []SongScore{
		{Position: 1, Name: "first", Total: 4},
		{Position: 2, Name: "second", Total: 9},
		{Position: 3, Name: "third", Total: 1, Current: 3},
		{Position: 4, Name: "fourth", Current: 4},
		{Position: 5, Name: "fifth", Total: 9},
	}}

	got := rankedNames(Rank(s))
	want := []string{"second", "fifth", "first", "third", "fourth"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestRankDoesNotMutateSnapshot(t *testing.T) {
	e, err := New([]string{"A", "B", "C"}, []string{"P"}, DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.AssignPoint(3); err != nil {
		t.Fatal(err)
	}

	s := e.Snapshot()
	ranked := Rank(s)
	if ranked[0].Name != "C" {
		t.Errorf("Expected C first, got %q", ranked[0].Name)
	}
	for i, sc := range s.Scores {
		if sc.Position != i+1 {
			t.Errorf("Snapshot scores must stay in load order, got position %d at index %d", sc.Position, i)
		}
	}
}

func TestSnapshotFields(t *testing.T) {
	e, err := New([]string{"A", "B"}, []string{"P1", "P2"}, DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range []int{2, 1, 2, 1} {
		if _, err := e.AssignPoint(pos); err != nil {
			t.Fatal(err)
		}
	}

	s := e.Snapshot()
	if !s.TurnComplete || s.NextPoint != 0 || s.PointIndex != 4 {
		t.Errorf("Expected completed turn, got %+v", s)
	}
	if s.LastVoted != 1 {
		t.Errorf("Expected last voted 1, got %d", s.LastVoted)
	}
	if sc, ok := s.Score(2); !ok || sc.Current != 1+6 {
		t.Errorf("Expected B current 7, got %+v (ok=%v)", sc, ok)
	}
	if _, ok := s.Score(3); ok {
		t.Error("Expected no score for position 3")
	}
}

func TestDispatch(t *testing.T) {
	e, err := New([]string{"A", "B"}, []string{"P1", "P2"}, DefaultRules())
	if err != nil {
		t.Fatal(err)
	}

	change := Dispatch(e, Assign(2))
	if !change.Applied() || change.Points != 1 {
		t.Errorf("Expected applied assign of 1 point, got %+v", change)
	}
	if sc, _ := change.Snapshot.Score(2); sc.Current != 1 {
		t.Errorf("Expected snapshot to reflect the vote, got %+v", sc)
	}

	change = Dispatch(e, Finalize())
	if !errors.Is(change.Err, ErrTurnIncomplete) {
		t.Errorf("Expected ErrTurnIncomplete, got %v", change.Err)
	}

	change = Dispatch(e, Reset())
	if !change.Applied() || change.Snapshot.PointIndex != 0 {
		t.Errorf("Expected reset, got %+v", change)
	}

	change = Dispatch(e, Command{Kind: "undo"})
	if !errors.Is(change.Err, ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", change.Err)
	}
}
