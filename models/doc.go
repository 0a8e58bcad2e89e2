package models

import "time"

// Coercion helpers for values coming back from the document store. Firestore
// returns numbers as int64 or float64 depending on how they were written, so
// every codec in this package goes through these instead of type-asserting.

func docString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func docBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func docFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func docInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func docTime(v interface{}) time.Time {
	t, _ := v.(time.Time)
	return t
}
