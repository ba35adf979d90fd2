package query

// phones returns the sample dataset used throughout the package tests
func phones() *Dataset {
	return NewDataset(
		[]string{"name", "brand", "price", "rating"},
		[]Row{
			{"name": "redmi note 12", "brand": "xiaomi", "price": 199.0, "rating": 4.6},
			{"name": "poco x5 pro", "brand": "xiaomi", "price": 299.0, "rating": 4.4},
			{"name": "iphone 15 pro", "brand": "apple", "price": 999.0, "rating": 4.9},
			{"name": "galaxy s23 ultra", "brand": "samsung", "price": 1199.0, "rating": 4.8},
		},
	)
}

// names projects the name column of ds
func names(ds *Dataset) []string {
	out := make([]string, 0, ds.Len())
	for _, row := range ds.Rows {
		out = append(out, row["name"].(string))
	}
	return out
}
