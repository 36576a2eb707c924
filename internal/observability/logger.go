package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a key-value pair for observability.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField represents a key-value pair for logging metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields adds a set of observability fields to the context.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existingFields := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existingFields)+len(fields))
	merged = append(merged, existingFields...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

// Get observability fields from context.
func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// Merge fields from context and additional metric fields, avoiding duplicates.
func mergeFields(ctx context.Context, fields []MetricField) []zapcore.Field {
	fieldMap := make(map[string]zapcore.Field)

	for _, field := range getObservabilityFields(ctx) {
		fieldMap[field.Key] = zap.Any(field.Key, field.Value)
	}

	for _, field := range fields {
		fieldMap[field.Key] = zap.Any(field.Key, field.Value)
	}

	mergedFields := make([]zapcore.Field, 0, len(fieldMap))
	for _, field := range fieldMap {
		mergedFields = append(mergedFields, field)
	}

	return mergedFields
}

// GetRealClientIP returns the first address of X-Forwarded-For when the console
// sits behind a proxy, falling back to c.ClientIP().
func GetRealClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.ClientIP()
}

// Middleware adds request-scoped observability fields, recovers panics and
// records request metrics.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx = WithFields(ctx,
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)

		if c.Request.ContentLength > 0 {
			ctx = WithFields(ctx, Field{"content_length", c.Request.ContentLength})
		}

		if len(c.Request.URL.RawQuery) > 0 {
			ctx = WithFields(ctx, Field{"query_params", c.Request.URL.RawQuery})
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(500)
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			latency := time.Since(start)
			status := c.Writer.Status()
			RecordHTTPRequest(c.Request.Method, route, status, latency)

			if isQuietPath(c.Request.URL.Path) {
				return
			}
			ctx = WithFields(ctx, Field{"latency_ns", latency.Nanoseconds()})
			l.Info(ctx, "Request processed")

			l.Metrics(c.Request.Context(),
				MetricField{"method", c.Request.Method},
				MetricField{"route", route},
				MetricField{"status", status},
				MetricField{"latency", latency},
				MetricField{"request_id", requestID},
			)
		}()
		c.Next()
	}
}

// isQuietPath reports paths polled by load balancers and scrapers.
func isQuietPath(path string) bool {
	switch path {
	case "/health", "/api/health", "/metrics":
		return true
	}
	return false
}

// Logger wraps zap and adds the observability fields carried in ctx to
// every entry.
type Logger struct {
	zapLogger *zap.Logger
}

type loggerConfig struct {
	console bool
	level   zapcore.Level
}

type LoggerOption func(*loggerConfig)

// WithConsoleOutput switches to zap's human readable development encoder.
func WithConsoleOutput() LoggerOption {
	return func(c *loggerConfig) { c.console = true }
}

// WithLevel sets the minimum enabled level. The default is info.
func WithLevel(level zapcore.Level) LoggerOption {
	return func(c *loggerConfig) { c.level = level }
}

// NewLogger builds a JSON production logger unless options say otherwise.
func NewLogger(opts ...LoggerOption) *Logger {
	cfg := loggerConfig{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.console {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.level)

	zapLogger, err := zapCfg.Build(
		zap.AddCallerSkip(2),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// log writes one entry. Context fields are only built when level is enabled.
func (l *Logger) log(ctx context.Context, level zapcore.Level, msg string, extra ...zapcore.Field) {
	ce := l.zapLogger.Check(level, msg)
	if ce == nil {
		return
	}

	ctxFields := getObservabilityFields(ctx)
	fields := make([]zapcore.Field, 0, len(ctxFields)+len(extra))
	for _, f := range ctxFields {
		fields = append(fields, zap.Any(f.Key, f.Value))
	}
	ce.Write(append(fields, extra...)...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.log(ctx, zapcore.InfoLevel, msg)
}

// InfoWithError logs at info level for errors that are expected, such as a
// gateway that is down while the cache keeps serving.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.log(ctx, zapcore.InfoLevel, msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.log(ctx, zapcore.ErrorLevel, msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.log(ctx, zapcore.WarnLevel, msg)
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.log(ctx, zapcore.DebugLevel, msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.log(ctx, zapcore.FatalLevel, msg, zap.Error(err))
}

// Metrics logs one request summary. Metric fields win over context fields
// with the same key.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.log(context.Background(), zapcore.InfoLevel, "Metrics", mergeFields(ctx, fields)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}
