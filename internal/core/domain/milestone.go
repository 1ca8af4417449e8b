package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// Milestone identifies a release train of the host product.
type Milestone int

// FeatureName returns the name of the feature toggle that unexpires flags of this milestone.
func (m Milestone) FeatureName() string {
	return FeatureNamePrefix + strconv.Itoa(int(m))
}

// FlagName returns the flag identifier bound to the unexpire feature of this milestone.
func (m Milestone) FlagName() string {
	return FlagNamePrefix + strconv.Itoa(int(m))
}

// MilestoneSet is an ascending run of consecutive milestones.
type MilestoneSet []Milestone

// Contains reports whether m is a member of the set.
func (s MilestoneSet) Contains(m Milestone) bool {
	for _, candidate := range s {
		if candidate == m {
			return true
		}
	}
	return false
}

// ShippingMilestone converts the MAJOR number of a version descriptor into the milestone
// unexpiry is computed from.
//
// The descriptor names the upcoming milestone. A flag's listed expiry milestone is the last
// one in which it is still present, so the most recent milestone whose flags may already be
// expired is the one before.
func ShippingMilestone(major int) Milestone {
	return Milestone(major - 1)
}

// CheckWindow verifies that the count most recent milestones ending at latest all number
// at least 1. It must pass before RecentMilestones is called with untrusted counts.
func CheckWindow(latest Milestone, count int) error {
	if latest < 1 || count > int(latest) {
		err := zerr.With(ErrMilestoneWindowInvalid, "milestones", count)
		return zerr.With(err, "latest", int(latest))
	}
	return nil
}

// RecentMilestones returns the count most recent milestones ending at latest, in ascending
// order. A count below one selects DefaultMilestoneCount.
func RecentMilestones(latest Milestone, count int) MilestoneSet {
	if count < 1 {
		count = DefaultMilestoneCount
	}

	set := make(MilestoneSet, 0, count)
	for m := latest - Milestone(count-1); m <= latest; m++ {
		set = append(set, m)
	}
	return set
}
