package domain

// StrFromPtrWithDefault returns *p when p is non-nil, otherwise fallback.
// Patch structs use it to merge optional field edits.
func StrFromPtrWithDefault(fallback string, p *string) string {
	if p != nil {
		return *p
	}
	return fallback
}

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
