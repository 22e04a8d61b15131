package telemetry

// Series written by the instrumentation in this module.
const (
	RequestDurationSeconds = "http_request_duration_seconds"
	ErrorsTotal            = "errors_total"

	DBQueryDurationSeconds = "db_query_duration_seconds"
	DBQueriesTotal         = "db_queries_total"
	DBQueryErrorsTotal     = "db_query_errors_total"
)

const (
	LabelEndpoint  = "endpoint"
	LabelStatus    = "status"
	LabelOperation = "operation"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
