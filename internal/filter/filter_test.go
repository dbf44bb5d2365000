package filter

import (
	"reflect"
	"testing"

	"github.com/pfrederiksen/nba-mvp/internal/player"
)

func testPlayers() []player.Player {
	return []player.Player{
		{Name: "LeBron King", Points: 28.9},
		{Name: "Stephen Curry", Points: 29.4},
		{Name: "Kevin Durant", Points: 29.1},
		{Name: "Jalen Brunson", Points: 24.0},
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	if _, err := New("([a-z"); err == nil {
		t.Error("New() expected error for invalid pattern, got nil")
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"empty pattern", "", true},
		{"whitespace pattern", "   ", true},
		{"substring", "king", false},
		{"expression", "^ste", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.pattern)
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.pattern, err)
			}
			if got := f.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply_EmptyIsIdentity(t *testing.T) {
	players := testPlayers()

	f, err := New("")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got := f.Apply(players)
	if !reflect.DeepEqual(got, players) {
		t.Errorf("Apply() = %v, want input unchanged", got)
	}
	if len(got) > 0 && &got[0] != &players[0] {
		t.Error("Apply() with empty filter should return the input slice itself")
	}

	var nilFilter *Filter
	if got := nilFilter.Apply(players); len(got) != len(players) {
		t.Errorf("nil Filter.Apply() returned %d players, want %d", len(got), len(players))
	}
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		player  string
		want    bool
	}{
		{"upper case pattern", "KING", "LeBron King", true},
		{"lower case pattern", "king", "LeBron King", true},
		{"matches anywhere", "bron", "LeBron King", true},
		{"anchored expression", "^king", "LeBron King", false},
		{"alternation", "curry|durant", "Kevin Durant", true},
		{"no match", "jokic", "Stephen Curry", false},
		{"default name", "n/a", player.DefaultName, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.pattern)
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.pattern, err)
			}
			if got := f.Matches(player.Player{Name: tt.player}); got != tt.want {
				t.Errorf("Filter(%q).Matches(%q) = %v, want %v", tt.pattern, tt.player, got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	f, err := New("an")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got := f.Apply(testPlayers())

	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	want := []string{"Kevin Durant"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Apply() names = %v, want %v", names, want)
	}
}

func TestFilter_Apply_NoMatches(t *testing.T) {
	f, err := New("zzz")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := f.Apply(testPlayers()); len(got) != 0 {
		t.Errorf("Apply() returned %d players, want 0", len(got))
	}
}

func TestFilter_String(t *testing.T) {
	empty, _ := New("")
	if got := empty.String(); got != "No active filters" {
		t.Errorf("String() = %q, want %q", got, "No active filters")
	}

	f, _ := New("curry")
	if got := f.String(); got != "Name matches: curry" {
		t.Errorf("String() = %q, want %q", got, "Name matches: curry")
	}
}
