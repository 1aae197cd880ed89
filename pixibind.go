package pixibind

// Bool returns a pointer to v, for optional boolean arguments.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v, for optional numeric arguments.
func Float64(v float64) *float64 { return &v }
