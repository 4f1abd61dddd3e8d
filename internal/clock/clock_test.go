package clock

import (
	"testing"
	"time"
)

func TestFixedAdvance(t *testing.T) {
	start := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
	c := &Fixed{T: start}
	if got := c.Now(); !got.Equal(start) {
		t.Fatalf("Now = %v, want %v", got, start)
	}
	c.Advance(2 * time.Minute)
	if got := c.Now(); got.Day() != 19 {
		t.Fatalf("after advance day = %d, want 19", got.Day())
	}
}

func TestSystemUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	now := System{Location: loc}.Now()
	if now.Location() != loc {
		t.Fatalf("location = %v, want %v", now.Location(), loc)
	}
	if now.Nanosecond() != 0 {
		t.Fatalf("expected truncation to seconds, got %v", now)
	}
}

func TestLoadLocation(t *testing.T) {
	for _, name := range []string{"", "Local"} {
		loc, err := LoadLocation(name)
		if err != nil || loc != time.Local {
			t.Fatalf("LoadLocation(%q) = %v, %v", name, loc, err)
		}
	}
	loc, err := LoadLocation("UTC")
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("LoadLocation(UTC) = %v, %v", loc, err)
	}
	if _, err := LoadLocation("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
