package search

// Filter is one of the dedicated page's orthogonal toggle filters.
type Filter string

const (
	FilterThisWeek     Filter = "This Week"
	FilterThisMonth    Filter = "This Month"
	FilterMyCollege    Filter = "My College"
	FilterVerifiedOnly Filter = "Verified Only"
)

// Filters tracks the dedicated page's toggle selection in selection
// order. The selection is deliberately not applied to the match
// predicates: the filters have never restricted results and completing
// them is a product decision, not an implementation detail.
type Filters struct {
	selected []Filter
}

// Toggle adds the filter to the selection, or removes it if present.
func (f *Filters) Toggle(filter Filter) {
	for i, sel := range f.selected {
		if sel == filter {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return
		}
	}
	f.selected = append(f.selected, filter)
}

// Active reports whether the filter is currently selected.
func (f *Filters) Active(filter Filter) bool {
	for _, sel := range f.selected {
		if sel == filter {
			return true
		}
	}
	return false
}

// Selected returns the selection in toggle order.
func (f *Filters) Selected() []Filter {
	out := make([]Filter, len(f.selected))
	copy(out, f.selected)
	return out
}

// TagCount pairs a tag with its display count on the dedicated page.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PopularTags is the fixed sidebar list for the dedicated search page.
func PopularTags() []TagCount {
	return []TagCount{
		{Name: "MachineLearning", Count: 245},
		{Name: "StudyGroup", Count: 189},
		{Name: "MIT", Count: 156},
		{Name: "AI", Count: 134},
		{Name: "Neuroscience", Count: 98},
		{Name: "Research", Count: 87},
		{Name: "Stanford", Count: 76},
		{Name: "Harvard", Count: 65},
	}
}
