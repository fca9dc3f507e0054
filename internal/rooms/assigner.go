// Package rooms implements the capacity-aware room-assignment pass:
// smallest-fit-first per slot, falling back to the largest free room, and
// marking over-capacity placements invalid.
package rooms

import (
	"sort"

	"examsched/internal/domain"
)

// Assign walks assignments in crn order, grouping merge-group members onto
// one shared room, and returns the room chosen per crn plus a validity
// flag (false when capacity was insufficient and the largest free room was
// used as a fallback).
func Assign(
	assignments map[string]domain.Slot,
	dataset *domain.SchedulingDataset,
	merges map[string]domain.MergeGroup,
	unscheduled map[string]struct{},
) (map[string]string, map[string]bool) {

	roomsByCap := append([]domain.Room(nil), dataset.Rooms...)
	sort.SliceStable(roomsByCap, func(i, j int) bool {
		if roomsByCap[i].Capacity != roomsByCap[j].Capacity {
			return roomsByCap[i].Capacity < roomsByCap[j].Capacity
		}
		return roomsByCap[i].Name < roomsByCap[j].Name
	})
	roomsByCapDesc := append([]domain.Room(nil), roomsByCap...)
	sort.SliceStable(roomsByCapDesc, func(i, j int) bool {
		if roomsByCapDesc[i].Capacity != roomsByCapDesc[j].Capacity {
			return roomsByCapDesc[i].Capacity > roomsByCapDesc[j].Capacity
		}
		return roomsByCapDesc[i].Name < roomsByCapDesc[j].Name
	})

	crnToGroup := make(map[string]string, len(merges))
	for id, g := range merges {
		if _, skip := unscheduled[id]; skip {
			continue
		}
		for _, crn := range g.Members {
			crnToGroup[crn] = id
		}
	}

	usedInSlot := make(map[domain.Slot]map[string]struct{})
	roomAssignments := make(map[string]string, len(assignments))
	valid := make(map[string]bool, len(assignments))

	groupRoom := make(map[string]string)
	groupValid := make(map[string]bool)

	crns := make([]string, 0, len(assignments))
	for crn := range assignments {
		crns = append(crns, crn)
	}
	sort.Strings(crns)

	for _, crn := range crns {
		slot := assignments[crn]
		groupID, inGroup := crnToGroup[crn]

		if inGroup {
			if room, done := groupRoom[groupID]; done {
				roomAssignments[crn] = room
				valid[crn] = groupValid[groupID]
				markUsed(usedInSlot, slot, room)
				continue
			}
			required := effectiveCapacity(groupID, merges, dataset)
			room, isValid := pick(roomsByCap, roomsByCapDesc, usedInSlot[slot], required)
			groupRoom[groupID] = room
			groupValid[groupID] = isValid
			roomAssignments[crn] = room
			valid[crn] = isValid
			markUsed(usedInSlot, slot, room)
			continue
		}

		required := dataset.Sections[crn].Enrollment
		room, isValid := pick(roomsByCap, roomsByCapDesc, usedInSlot[slot], required)
		roomAssignments[crn] = room
		valid[crn] = isValid
		markUsed(usedInSlot, slot, room)
	}

	return roomAssignments, valid
}

func effectiveCapacity(groupID string, merges map[string]domain.MergeGroup, dataset *domain.SchedulingDataset) int {
	total := 0
	for _, crn := range merges[groupID].Members {
		if sec, ok := dataset.Sections[crn]; ok {
			total += sec.Enrollment
		}
	}
	return total
}

// pick selects, in order: the smallest free room that fits required; else
// the largest free room (marked invalid); else the globally largest room
// (marked invalid), reused even though it is occupied.
func pick(byCapAsc, byCapDesc []domain.Room, used map[string]struct{}, required int) (string, bool) {
	for _, r := range byCapAsc {
		if r.Capacity < required {
			continue
		}
		if _, taken := used[r.Name]; taken {
			continue
		}
		return r.Name, true
	}
	for _, r := range byCapDesc {
		if _, taken := used[r.Name]; taken {
			continue
		}
		return r.Name, false
	}
	if len(byCapDesc) > 0 {
		return byCapDesc[0].Name, false
	}
	return "", false
}

func markUsed(usedInSlot map[domain.Slot]map[string]struct{}, slot domain.Slot, room string) {
	if room == "" {
		return
	}
	set := usedInSlot[slot]
	if set == nil {
		set = make(map[string]struct{})
		usedInSlot[slot] = set
	}
	set[room] = struct{}{}
}
