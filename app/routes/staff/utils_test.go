package staff

import (
	"testing"

	"github.com/RobTisdell/robtisdell.git.io/app/config"
	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

func testRankings() *config.Rankings {
	return &config.Rankings{PositionOrder: map[string]int{
		"President":      1,
		"Vice President": 2,
		"Treasurer":      3,
	}}
}

func TestSortActiveStaff(t *testing.T) {
	all := []models.StaffMember{
		{Name: "Zoe", IsActive: true, CurrentPosition: "Vice President"},
		{Name: "Casey", IsActive: false, PastPositions: []string{"President"}},
		{Name: "Alex", IsActive: true, CurrentPosition: "President"},
		{Name: "Bert", IsActive: true, CurrentPosition: "Social Chair"}, // unranked
		{Name: "ana", IsActive: true, CurrentPosition: "Social Chair"},
	}

	active := SortActiveStaff(all, testRankings())
	wantOrder := []string{"Alex", "Zoe", "ana", "Bert"}
	if len(active) != len(wantOrder) {
		t.Fatalf("got %d active, want %d", len(active), len(wantOrder))
	}
	for i, want := range wantOrder {
		if active[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, active[i].Name, want)
		}
	}
}

func TestSortFormerStaff(t *testing.T) {
	all := []models.StaffMember{
		{Name: "Alex", IsActive: true, CurrentPosition: "President"},
		{Name: "Drew", IsActive: false, PastPositions: []string{"Treasurer"}},
		{Name: "Casey", IsActive: false, PastPositions: []string{"Vice President", "President"}},
		{Name: "Blake", IsActive: false},
	}

	former := SortFormerStaff(all, testRankings())
	// Casey held President, the best rank; Blake has no history so sorts last.
	wantOrder := []string{"Casey", "Drew", "Blake"}
	if len(former) != len(wantOrder) {
		t.Fatalf("got %d former, want %d", len(former), len(wantOrder))
	}
	for i, want := range wantOrder {
		if former[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, former[i].Name, want)
		}
	}
}

func TestNewFormerStaffView(t *testing.T) {
	v := newFormerStaffView(models.StaffMember{
		Name:          "Casey",
		PastPositions: []string{"President", "Vice President"},
	})
	if v.PastPositions != "President, Vice President" {
		t.Errorf("PastPositions = %q", v.PastPositions)
	}

	v = newFormerStaffView(models.StaffMember{Name: "Blake"})
	if v.PastPositions != "N/A" {
		t.Errorf("empty history = %q, want N/A", v.PastPositions)
	}
}
