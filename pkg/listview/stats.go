package listview

// activeStats partitions a list by its isActive flag.
func activeStats[T any](isActive func(T) bool) func([]T) Stats {
	return func(items []T) Stats {
		active := 0
		for _, item := range items {
			if isActive(item) {
				active++
			}
		}
		return Stats{
			"total":    float64(len(items)),
			"active":   float64(active),
			"inactive": float64(len(items) - active),
		}
	}
}
