package enums

import "fmt"

// MaterialType classifies a training material embedded in a group.
type MaterialType string

const (
	MaterialTypePDF   MaterialType = "pdf"
	MaterialTypeVideo MaterialType = "video"
	MaterialTypeLink  MaterialType = "link"
	MaterialTypeQuiz  MaterialType = "quiz"
	MaterialTypeImage MaterialType = "image"
)

var validMaterialTypes = []MaterialType{
	MaterialTypePDF,
	MaterialTypeVideo,
	MaterialTypeLink,
	MaterialTypeQuiz,
	MaterialTypeImage,
}

// IsValid reports whether the value matches the canonical material type enum.
func (m MaterialType) IsValid() bool {
	for _, candidate := range validMaterialTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMaterialType converts the raw string to MaterialType.
func ParseMaterialType(value string) (MaterialType, error) {
	for _, candidate := range validMaterialTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid material type %q", value)
}
