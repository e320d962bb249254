package enums

import "fmt"

type ActivityType string

const (
	ActivityNewPost ActivityType = "new_post"
)

var validActivityTypes = []ActivityType{
	ActivityNewPost,
}

func (a ActivityType) IsValid() bool {
	for _, v := range validActivityTypes {
		if a == v {
			return true
		}
	}
	return false
}

func ParseActivityType(s string) (ActivityType, error) {
	a := ActivityType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid activity type: %q", s)
	}
	return a, nil
}
