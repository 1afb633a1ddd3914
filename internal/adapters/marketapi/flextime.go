package marketapi

import (
	"encoding/json"
	"time"
)

// flexTimeLayouts - известные кодировки дат на проводе, в порядке проверки.
// Бэкенд присылает даты с разной точностью: UTC с миллисекундами и без,
// локальное время без зоны, только дата.
var flexTimeLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// flexTimeCanonical - единственный формат, в котором даты кодируются обратно.
// Декодирование разрешающее, кодирование детерминированное: повторный проход
// через этот слой стабилен, даже если исходный провод - нет.
const flexTimeCanonical = "2006-01-02T15:04:05.000Z07:00"

// FlexTime - дата с гибким декодированием.
// Любое нераспознанное значение дает нулевое время, а не ошибку декодирования.
type FlexTime struct {
	time.Time
}

// ParseFlexTime перебирает известные форматы и возвращает первый успешный разбор.
// Исключений для control-flow нет: неудача - это просто нулевое значение.
func ParseFlexTime(s string) FlexTime {
	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FlexTime{t}
		}
	}
	return FlexTime{}
}

// UnmarshalJSON никогда не возвращает ошибку:
// null, не-строка и нераспознанная строка дают нулевое значение.
func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	ft.Time = time.Time{}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}

	*ft = ParseFlexTime(s)
	return nil
}

// MarshalJSON всегда кодирует в каноническом UTC-формате с миллисекундами
func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if ft.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ft.UTC().Format(flexTimeCanonical))
}

// Ptr возвращает *time.Time для доменной модели: nil вместо нулевого времени
func (ft FlexTime) Ptr() *time.Time {
	if ft.IsZero() {
		return nil
	}
	t := ft.Time
	return &t
}
