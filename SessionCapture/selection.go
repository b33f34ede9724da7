package SessionCapture

import "sort"

// Selection is the set of region keys currently chosen for the active client.
// Membership only, no ordering. It is owned by a single CaptureView and is
// mutated only by explicit toggle actions, submit, or cancel.
type Selection struct {
	members map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{members: make(map[string]struct{})}
}

// Toggle removes the region if it is selected, otherwise adds it.
func (s *Selection) Toggle(region string) {
	if _, ok := s.members[region]; ok {
		delete(s.members, region)
		return
	}
	s.members[region] = struct{}{}
}

func (s *Selection) Clear() {
	s.members = make(map[string]struct{})
}

// Replace swaps the whole membership, used to keep failed regions selected
// for retry after a partial submit.
func (s *Selection) Replace(regions []string) {
	s.members = make(map[string]struct{}, len(regions))
	for _, region := range regions {
		s.members[region] = struct{}{}
	}
}

func (s *Selection) Has(region string) bool {
	_, ok := s.members[region]
	return ok
}

func (s *Selection) Len() int {
	return len(s.members)
}

// Members returns a sorted copy so iteration is deterministic.
func (s *Selection) Members() []string {
	regions := make([]string, 0, len(s.members))
	for region := range s.members {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
