package level

// PlacementResult is the outcome of a placement or movement attempt
type PlacementResult uint8

const (
	Ok PlacementResult = iota
	FailedObstacle
	FailedEntity
	FailedBounds
	FailedBadID
)

var placementNames = [...]string{"ok", "failed_obstacle", "failed_entity", "failed_bounds", "failed_bad_id"}

func (r PlacementResult) String() string {
	if int(r) < len(placementNames) {
		return placementNames[r]
	}
	return "placement?"
}

// MergeResult is the outcome of an item move between piles
type MergeResult uint8

const (
	MergedAll MergeResult = iota
	MergedSome
	MergedNone
	FailedBadSource
	FailedBadDestination
)

var mergeNames = [...]string{"merged_all", "merged_some", "merged_none", "failed_bad_source", "failed_bad_destination"}

func (r MergeResult) String() string {
	if int(r) < len(mergeNames) {
		return mergeNames[r]
	}
	return "merge?"
}

// Ok reports whether items could be considered at all
func (r MergeResult) Ok() bool { return r <= MergedNone }

// mergeResult classifies moved out of total candidates
func mergeResult(moved, total int) MergeResult {
	switch {
	case moved == 0:
		return MergedNone
	case moved == total:
		return MergedAll
	}
	return MergedSome
}
