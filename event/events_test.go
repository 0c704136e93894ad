package event

import (
	"strings"
	"testing"
)

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.SetFrame(7)
	q.Push(Event{Kind: KindShot})
	q.Push(Event{Kind: KindUserHit, Frame: 3})

	if q.Len() != 2 {
		t.Fatalf("len = %d, want 2", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Kind != KindShot || got[1].Kind != KindUserHit {
		t.Fatalf("drain order = %+v", got)
	}
	if got[0].Frame != 7 || got[1].Frame != 3 {
		t.Fatalf("frames = %d, %d", got[0].Frame, got[1].Frame)
	}
	if q.Drain() != nil || q.Len() != 0 {
		t.Fatalf("queue not cleared")
	}
}

func TestNilQueue(t *testing.T) {
	var q *Queue
	q.Push(Event{Kind: KindShot})
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("nil queue retained events")
	}
}

func TestFrameReportYAML(t *testing.T) {
	r := FrameReport{
		Frame:  12,
		Level:  "level1",
		State:  "PLAYING",
		Health: 4,
		Events: []Event{{Kind: KindEnemyKilled, Actor: 3}, {Kind: KindShot}, {Kind: KindEnemyKilled}},
	}
	if got := r.Count(KindEnemyKilled); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	out, err := r.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	for _, want := range []string{"level: level1", "state: PLAYING", "kind: enemy_killed"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(string(out), "next_level") {
		t.Fatalf("empty next_level rendered:\n%s", out)
	}
}
