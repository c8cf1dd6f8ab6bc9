package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldJobID is the structured log field key for a job identifier.
	FieldJobID = "job_id"
	// FieldCandidateID is the structured log field key for a candidate identifier.
	FieldCandidateID = "candidate_id"
	// FieldAgentID is the structured log field key for an agent identifier.
	FieldAgentID = "agent_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CallFields returns the fields that identify a screening call. Empty values are
// ignored to keep log entries compact.
func CallFields(jobID, candidateID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldJobID, Value: jobID},
		StringField{Key: FieldCandidateID, Value: candidateID},
	)
}

// WithCall attaches the call fields to the provided logger.
func WithCall(logger *zap.Logger, jobID, candidateID string) *zap.Logger {
	return WithFields(logger, CallFields(jobID, candidateID)...)
}

// JobFields returns the fields that identify a job.
func JobFields(jobID string) []zap.Field {
	return StringFields(StringField{Key: FieldJobID, Value: jobID})
}

// CandidateFields returns the fields that identify a candidate.
func CandidateFields(candidateID string) []zap.Field {
	return StringFields(StringField{Key: FieldCandidateID, Value: candidateID})
}
