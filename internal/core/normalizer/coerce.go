package normalizer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"listing-service/internal/core/domain"
)

// Все функции этого файла тотальны: на любой вход возвращают значение или nil
// и никогда не паникуют.

// Границы float64, внутри которых значение гарантированно помещается в int64
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// ToInteger приводит значение к целому, отбрасывая дробную часть вниз (floor).
// Пустые, нечисловые, NaN/Inf и выходящие за int64 значения дают nil.
func ToInteger(v interface{}) *int64 {
	switch val := v.(type) {
	case nil:
		return nil
	case int:
		return int64Ptr(int64(val))
	case int8:
		return int64Ptr(int64(val))
	case int16:
		return int64Ptr(int64(val))
	case int32:
		return int64Ptr(int64(val))
	case int64:
		return int64Ptr(val)
	case uint8:
		return int64Ptr(int64(val))
	case uint16:
		return int64Ptr(int64(val))
	case uint32:
		return int64Ptr(int64(val))
	case uint:
		if uint64(val) > math.MaxInt64 {
			return nil
		}
		return int64Ptr(int64(val))
	case uint64:
		if val > math.MaxInt64 {
			return nil
		}
		return int64Ptr(int64(val))
	case json.Number:
		if i, err := strconv.ParseInt(string(val), 10, 64); err == nil {
			return int64Ptr(i)
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return int64Ptr(i)
		}
	}

	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	f = math.Floor(f)
	if f < minInt64Float || f >= maxInt64Float {
		return nil
	}
	return int64Ptr(int64(f))
}

// ToDecimal приводит значение к числу с плавающей точкой без округления.
func ToDecimal(v interface{}) *float64 {
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// toFloat - общий разбор числовых значений. Булевы значения числами не считаются.
func toFloat(v interface{}) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int8:
		f = float64(val)
	case int16:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint8:
		f = float64(val)
	case uint16:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case json.Number:
		parsed, err := strconv.ParseFloat(string(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToBoundedString возвращает строку длиной не более maxLen символов (рун).
// Второе значение сообщает, была ли строка обрезана. Числа и булевы значения
// переводятся в строку, объекты и массивы дают nil. maxLen <= 0 - без ограничения.
func ToBoundedString(v interface{}, maxLen int) (*string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		s = val
	case json.Number:
		s = val.String()
	case bool:
		s = strconv.FormatBool(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, false
		}
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		s = strconv.FormatFloat(f, 'f', -1, 32)
	case int:
		s = strconv.Itoa(val)
	case int32:
		s = strconv.FormatInt(int64(val), 10)
	case int64:
		s = strconv.FormatInt(val, 10)
	case uint64:
		s = strconv.FormatUint(val, 10)
	default:
		return nil, false
	}

	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return &s, false
	}

	// Режем по рунам, чтобы не разорвать многобайтовый символ
	runes := []rune(s)
	truncated := string(runes[:maxLen])
	return &truncated, true
}

// ToBool распознает булевы значения, строки вида "Y"/"No"/"true" и числа 0/1.
func ToBool(v interface{}) *bool {
	switch val := v.(type) {
	case bool:
		return &val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "t", "yes", "y", "1":
			return boolPtr(true)
		case "false", "f", "no", "n", "0":
			return boolPtr(false)
		}
		return nil
	}

	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	switch f {
	case 0:
		return boolPtr(false)
	case 1:
		return boolPtr(true)
	}
	return nil
}

// ToStringSlice приводит значение к срезу строк. Поддерживаются JSON-массивы,
// строка с JSON-массивом и строка со значениями через запятую.
// Пустой массив остается пустым срезом, а не nil.
func ToStringSlice(v interface{}) []string {
	switch val := v.(type) {
	case []string:
		result := make([]string, len(val))
		copy(result, val)
		return result
	case []interface{}:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s, _ := ToBoundedString(item, 0); s != nil {
				result = append(result, *s)
			}
		}
		return result
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var items []interface{}
			if err := decodeJSON([]byte(s), &items); err != nil {
				return nil
			}
			return ToStringSlice(items)
		}
		parts := strings.Split(s, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if p := strings.TrimSpace(part); p != "" {
				result = append(result, p)
			}
		}
		return result
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ToTimestamp разбирает дату или метку времени. Значения без зоны считаются UTC.
func ToTimestamp(v interface{}) *time.Time {
	switch val := v.(type) {
	case time.Time:
		t := val.UTC()
		return &t
	case *time.Time:
		if val == nil {
			return nil
		}
		t := val.UTC()
		return &t
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				t = t.UTC()
				return &t
			}
		}
	}
	return nil
}

// FirstNonNull возвращает первого кандидата, который не nil и не пустая строка.
func FirstNonNull(candidates ...interface{}) interface{} {
	for _, c := range candidates {
		if !isBlank(c) {
			return c
		}
	}
	return nil
}

// Lookup проходит по вложенным объектам по указанному пути. Промежуточный
// объект может быть строкой с JSON (так в фиде приходит raw_data).
func Lookup(root interface{}, path ...string) interface{} {
	current := root
	for _, key := range path {
		obj := asObject(current)
		if obj == nil {
			return nil
		}
		current = obj[key]
	}
	return current
}

func asObject(v interface{}) map[string]interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return val
	case domain.RawRecord:
		return val
	case string:
		s := strings.TrimSpace(val)
		if !strings.HasPrefix(s, "{") {
			return nil
		}
		var obj map[string]interface{}
		if err := decodeJSON([]byte(s), &obj); err != nil {
			return nil
		}
		return obj
	}
	return nil
}

func isBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	}
	return false
}

// decodeJSON декодирует с UseNumber, чтобы большие целые не теряли точность.
func decodeJSON(data []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool     { return &v }
