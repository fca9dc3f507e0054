// Package analyzer implements the post-hoc schedule analyzer: it
// independently re-derives hard and soft violations from the final
// assignment, never from the placement-time conflict log. Its output is
// the authoritative count of violations.
package analyzer

import (
	"sort"

	"examsched/internal/domain"
)

// Analyze recomputes a ScheduleAnalysis purely from result.Assignments and
// result.RoomAssignments, reading dataset for enrollment and membership
// lookups.
func Analyze(result *domain.ScheduleResult, dataset *domain.SchedulingDataset, merges map[string]domain.MergeGroup, params domain.SchedulingParams) domain.ScheduleAnalysis {
	var a domain.ScheduleAnalysis

	studentSlots := make(map[string]map[domain.Slot][]string)
	instructorSlots := make(map[string]map[domain.Slot][]string)
	studentDayCrns := make(map[string]map[int][]string)
	instructorDayCrns := make(map[string]map[int][]string)

	crns := sortedAssignedCrns(result.Assignments)
	for _, crn := range crns {
		slot := result.Assignments[crn]
		for studentID := range dataset.StudentsBySection[crn] {
			addSlot(studentSlots, studentID, slot, crn)
			addDay(studentDayCrns, studentID, slot.Day, crn)
		}
		for name := range dataset.InstructorsBySection[crn] {
			addSlot(instructorSlots, name, slot, crn)
			addDay(instructorDayCrns, name, slot.Day, crn)
		}
	}

	a.StudentDoubleBook = collectDoubleBook(studentSlots)
	a.InstructorDoubleBook = collectDoubleBook(instructorSlots)
	a.StudentGtMaxPerDay = collectOverCap(studentDayCrns, params.StudentMaxPerDay)
	a.InstructorGtMaxPerDay = collectOverCap(instructorDayCrns, params.InstructorMaxPerDay)

	a.BackToBackStudents = collectBackToBack(studentSlots)
	a.BackToBackInstructors = collectBackToBack(instructorSlots)

	for _, crn := range crns {
		sec, ok := dataset.Sections[crn]
		if !ok {
			continue
		}
		if sec.Enrollment >= domain.LargeCourseThreshold && result.Assignments[crn].Day >= domain.EarlyWeekCutoff {
			a.LargeCoursesNotEarly = append(a.LargeCoursesNotEarly, domain.LargeCourseLateRecord{
				Crn: crn,
				Day: result.Assignments[crn].Day,
			})
		}
	}

	a.NumClasses = len(result.Assignments)
	a.NumStudents = len(studentSlots)
	a.NumRooms = countDistinct(result.RoomAssignments)
	a.SlotsUsed = countDistinctSlots(result.Assignments)
	a.UnplacedExams = countUnplaced(result.UnscheduledMerges, merges)

	return a
}

func addSlot(m map[string]map[domain.Slot][]string, entity string, slot domain.Slot, crn string) {
	byes := m[entity]
	if byes == nil {
		byes = make(map[domain.Slot][]string)
		m[entity] = byes
	}
	byes[slot] = append(byes[slot], crn)
}

func addDay(m map[string]map[int][]string, entity string, day int, crn string) {
	byDay := m[entity]
	if byDay == nil {
		byDay = make(map[int][]string)
		m[entity] = byDay
	}
	byDay[day] = append(byDay[day], crn)
}

func collectDoubleBook(bySlot map[string]map[domain.Slot][]string) []domain.DoubleBookRecord {
	var out []domain.DoubleBookRecord
	for _, entity := range sortedStringKeys(bySlot) {
		slots := bySlot[entity]
		for _, slot := range sortedSlots(slots) {
			crns := append([]string(nil), slots[slot]...)
			sort.Strings(crns)
			for i := 0; i < len(crns); i++ {
				for j := i + 1; j < len(crns); j++ {
					out = append(out, domain.DoubleBookRecord{
						EntityID: entity,
						Day:      slot.Day,
						Block:    slot.Block,
						CrnA:     crns[i],
						CrnB:     crns[j],
					})
				}
			}
		}
	}
	return out
}

func collectOverCap(byDay map[string]map[int][]string, limit int) []domain.OverCapRecord {
	var out []domain.OverCapRecord
	for _, entity := range sortedStringKeys(byDay) {
		days := byDay[entity]
		dayKeys := make([]int, 0, len(days))
		for d := range days {
			dayKeys = append(dayKeys, d)
		}
		sort.Ints(dayKeys)
		for _, d := range dayKeys {
			if len(days[d]) > limit {
				crns := append([]string(nil), days[d]...)
				sort.Strings(crns)
				out = append(out, domain.OverCapRecord{EntityID: entity, Day: d, Crns: crns})
			}
		}
	}
	return out
}

func collectBackToBack(bySlot map[string]map[domain.Slot][]string) []domain.BackToBackRecord {
	var out []domain.BackToBackRecord
	for _, entity := range sortedStringKeys(bySlot) {
		byDay := make(map[int]map[int]struct{})
		for slot := range bySlot[entity] {
			blocks := byDay[slot.Day]
			if blocks == nil {
				blocks = make(map[int]struct{})
				byDay[slot.Day] = blocks
			}
			blocks[slot.Block] = struct{}{}
		}
		days := make([]int, 0, len(byDay))
		for d := range byDay {
			days = append(days, d)
		}
		sort.Ints(days)
		for _, d := range days {
			blocks := sortedBlockSet(byDay[d])
			if hasConsecutive(blocks) {
				out = append(out, domain.BackToBackRecord{EntityID: entity, Day: d, Blocks: blocks})
			}
		}
	}
	return out
}

func hasConsecutive(blocks []int) bool {
	for i := 1; i < len(blocks); i++ {
		if blocks[i] == blocks[i-1]+1 {
			return true
		}
	}
	return false
}

func sortedBlockSet(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

func sortedStringKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedSlots(m map[domain.Slot][]string) []domain.Slot {
	out := make([]domain.Slot, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Block < out[j].Block
	})
	return out
}

func sortedAssignedCrns(m map[string]domain.Slot) []string {
	out := make([]string, 0, len(m))
	for crn := range m {
		out = append(out, crn)
	}
	sort.Strings(out)
	return out
}

func countDistinct(m map[string]string) int {
	seen := make(map[string]struct{})
	for _, v := range m {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func countDistinctSlots(m map[string]domain.Slot) int {
	seen := make(map[domain.Slot]struct{})
	for _, s := range m {
		seen[s] = struct{}{}
	}
	return len(seen)
}

func countUnplaced(unscheduled map[string]struct{}, merges map[string]domain.MergeGroup) int {
	total := 0
	for id := range unscheduled {
		total += len(merges[id].Members)
	}
	return total
}
