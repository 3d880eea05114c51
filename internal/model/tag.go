package model

// Tag is an ordered (primary, secondary) category pair. The secondary half
// may be empty when a product carries no sub-category.
type Tag struct {
	Primary   string
	Secondary string
}

// Labels returns the distinct non-empty label strings this tag contributes.
// A pair whose halves are equal yields a single label, and an empty secondary
// is dropped unless keepEmpty is set.
func (t Tag) Labels(keepEmpty bool) []string {
	labels := make([]string, 0, 2)
	if t.Primary != "" {
		labels = append(labels, t.Primary)
	}
	if t.Secondary != t.Primary && (t.Secondary != "" || keepEmpty) {
		labels = append(labels, t.Secondary)
	}
	return labels
}
