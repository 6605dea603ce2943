package domain

// DiagnosticKind - тип замечания, сделанного нормализатором по колонке.
type DiagnosticKind string

const (
	DiagnosticTruncated     DiagnosticKind = "truncated"
	DiagnosticCoercedToNull DiagnosticKind = "coerced_to_null"
)

// Diagnostic - некритичное замечание по одной колонке записи.
type Diagnostic struct {
	Column string         `json:"column"`
	Kind   DiagnosticKind `json:"kind"`
	Detail string         `json:"detail,omitempty"`
}

// IngestSummary - итог одного прогона загрузки фида.
type IngestSummary struct {
	RunID      string   `json:"run_id"`
	Processed  int      `json:"processed"`
	Created    int      `json:"created"`
	Updated    int      `json:"updated"`
	Failed     int      `json:"failed"`
	FailedKeys []string `json:"failed_keys"`
}

// RecordFailure описывает запись, которую не удалось сохранить.
type RecordFailure struct {
	Index      int
	ListingKey string
	Err        error
}
