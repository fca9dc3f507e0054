// Package merge implements the pre-scheduling MergeValidator gate: it sums
// enrollment per merge group and flags groups that exceed the largest
// available room as unschedulable.
package merge

import (
	"sort"

	"examsched/internal/coreerrors"
	"examsched/internal/domain"
)

// Report is the per-group validation outcome.
type Report struct {
	GroupID         string
	TotalEnrollment int
	MaxRoomCapacity int
	IsValid         bool
	CanProceed      bool
	Warning         string
}

// Validate checks one merge group against dataset. It returns an
// InvalidInput error for structural violations (empty group, single
// member, unknown crn); capacity overflow is not an error, it is recorded
// in the returned Report (IsValid=false, CanProceed=true).
func Validate(group domain.MergeGroup, dataset *domain.SchedulingDataset) (Report, error) {
	if len(group.Members) == 0 {
		return Report{}, coreerrors.InvalidInputf("empty_merge", "merge group %q is empty", group.ID)
	}
	if len(group.Members) < 2 {
		return Report{}, coreerrors.InvalidInputf("merge_too_small", "merge group %q needs at least two members", group.ID)
	}

	total := 0
	for _, crn := range group.Members {
		sec, ok := dataset.Sections[crn]
		if !ok {
			return Report{}, coreerrors.InvalidInputf("unknown_crn", "merge group %q references unknown crn %q", group.ID, crn)
		}
		total += sec.Enrollment
	}

	maxCap := dataset.MaxRoomCapacity()
	isValid := maxCap > 0 && total <= maxCap

	r := Report{
		GroupID:         group.ID,
		TotalEnrollment: total,
		MaxRoomCapacity: maxCap,
		IsValid:         isValid,
		CanProceed:      true,
	}
	if !isValid {
		r.Warning = "merge group exceeds capacity of every room and will be unscheduled"
	}
	return r, nil
}

// ValidateAll validates every group in merges, in sorted ID order,
// returning the set of group IDs
// that must be treated as unscheduled.
func ValidateAll(merges map[string]domain.MergeGroup, dataset *domain.SchedulingDataset) (map[string]struct{}, []Report, error) {
	unscheduled := make(map[string]struct{})
	reports := make([]Report, 0, len(merges))

	ids := sortedIDs(merges)
	for _, id := range ids {
		report, err := Validate(merges[id], dataset)
		if err != nil {
			return nil, nil, err
		}
		reports = append(reports, report)
		if !report.IsValid {
			unscheduled[id] = struct{}{}
		}
	}
	return unscheduled, reports, nil
}

func sortedIDs(merges map[string]domain.MergeGroup) []string {
	ids := make([]string, 0, len(merges))
	for id := range merges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
