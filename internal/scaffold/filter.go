package scaffold

// DefaultReservedFields are the columns the service template manages itself.
var DefaultReservedFields = []string{"id", "delete_time", "update_time"}

// FilterFields returns fields without any element named in reserved.
// Order and duplicates of the remaining fields are kept. A nil reserved
// uses DefaultReservedFields.
func FilterFields(fields, reserved []string) []string {
	if reserved == nil {
		reserved = DefaultReservedFields
	}
	skip := make(map[string]struct{}, len(reserved))
	for _, r := range reserved {
		skip[r] = struct{}{}
	}

	filtered := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := skip[f]; ok {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}
