package staff

import (
	"sort"
	"strings"

	"github.com/RobTisdell/robtisdell.git.io/app/config"
	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

// SortActiveStaff filters to active members and orders them by current
// position rank, then name.
func SortActiveStaff(all []models.StaffMember, rankings *config.Rankings) []models.StaffMember {
	var active []models.StaffMember
	for _, m := range all {
		if m.IsActive {
			active = append(active, m)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := rankings.Rank(active[i].CurrentPosition), rankings.Rank(active[j].CurrentPosition)
		if a != b {
			return a < b
		}
		return strings.ToLower(active[i].Name) < strings.ToLower(active[j].Name)
	})
	return active
}

// SortFormerStaff filters to inactive members and orders them by the
// highest-priority position they ever held, then name.
func SortFormerStaff(all []models.StaffMember, rankings *config.Rankings) []models.StaffMember {
	var former []models.StaffMember
	for _, m := range all {
		if !m.IsActive {
			former = append(former, m)
		}
	}
	sort.SliceStable(former, func(i, j int) bool {
		a, b := rankings.BestRank(former[i].PastPositions), rankings.BestRank(former[j].PastPositions)
		if a != b {
			return a < b
		}
		return strings.ToLower(former[i].Name) < strings.ToLower(former[j].Name)
	})
	return former
}

type formerStaffView struct {
	Name          string
	Image         string
	Description   string
	PastPositions string
}

func newFormerStaffView(m models.StaffMember) formerStaffView {
	past := "N/A"
	if len(m.PastPositions) > 0 {
		past = strings.Join(m.PastPositions, ", ")
	}
	return formerStaffView{
		Name:          m.Name,
		Image:         m.Image,
		Description:   m.Description,
		PastPositions: past,
	}
}
