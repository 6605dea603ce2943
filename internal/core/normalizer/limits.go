package normalizer

// TextGroup - группа текстовых колонок с общим ограничением длины.
type TextGroup int

const (
	TextCode TextGroup = iota
	TextShort
	TextMedium
	TextLong
)

func (g TextGroup) String() string {
	switch g {
	case TextCode:
		return "code"
	case TextShort:
		return "short"
	case TextMedium:
		return "medium"
	case TextLong:
		return "long"
	}
	return "unknown"
}

// TextLimits задает максимальную длину (в символах) для каждой группы.
// Значение <= 0 снимает ограничение. Группа long всегда без ограничения.
type TextLimits struct {
	Code   int
	Short  int
	Medium int
}

// DefaultTextLimits соответствует текущей схеме таблицы listings.
func DefaultTextLimits() TextLimits {
	return TextLimits{Code: 10, Short: 50, Medium: 255}
}

// Limit возвращает ограничение длины для группы.
func (l TextLimits) Limit(group TextGroup) int {
	switch group {
	case TextCode:
		return l.Code
	case TextShort:
		return l.Short
	case TextMedium:
		return l.Medium
	}
	return 0
}
