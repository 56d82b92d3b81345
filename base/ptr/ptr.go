package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// StringOrNil returns nil for an empty value, a pointer otherwise
func StringOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
