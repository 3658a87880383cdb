package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldEntityID    = "entity_id"
	FieldCollection  = "collection"
	FieldKey         = "key"
	FieldDescription = "description"
	FieldAmountCents = "amount_cents"
	FieldCategoryID  = "category_id"
	FieldConfidence  = "confidence"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStore     = "store"
	ComponentPersist   = "persist"
	ComponentStorage   = "storage"
	ComponentSuggest   = "suggest"
	ComponentAMQP      = "amqp"
	ComponentScheduler = "scheduler"
	ComponentWorker    = "worker"
	ComponentBackend   = "backend"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpLoad     = "load"
	OpSave     = "save"
	OpSuggest  = "suggest"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
