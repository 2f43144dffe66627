package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const maxJSONBody = 1 << 20

// errorResponse is the body of every failed request: an English error, an
// Arabic message for the client, the failing stage of an upload and the
// invalid fields of a validation error.
type errorResponse struct {
	Error  string          `json:"error"`
	Msg    string          `json:"msg"`
	Stage  string          `json:"stage,omitempty"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var stageMessages = map[domain.UploadStage]string{
	domain.StageValidate: "الملف ليس PDF صالحًا أو يتجاوز الحجم المسموح",
	domain.StageScan:     "تعذر فحص الملف أو أنه يحتوي على فيروس",
	domain.StageSanitize: "تعذر تنظيف الملف",
	domain.StageExtract:  "تعذر استخراج النص من الملف",
	domain.StagePersist:  "تعذر حفظ الملف",
	domain.StageForward:  "تعذر إرسال الملف إلى خدمة النموذج",
}

// handleError maps domain errors to a status code and a bilingual body.
// Unexpected errors are logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	resp, status := errorResponse{}, http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		resp.Error, resp.Msg = "validation error", "البيانات المدخلة غير صالحة"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
			}
		}
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
		resp.Error, resp.Msg = "unauthorized", "يرجى تسجيل الدخول"
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		resp.Error, resp.Msg = "forbidden", "ليس لديك صلاحية الوصول إلى هذا العنصر"
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Error, resp.Msg = "not found", "العنصر غير موجود"
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
		resp.Error, resp.Msg = "already exists", "العنصر موجود مسبقًا"
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		resp.Error, resp.Msg = "conflict", "لا يمكن تنفيذ العملية في الحالة الحالية"
	case errors.Is(err, domain.ErrUnprocessable):
		status = http.StatusUnprocessableEntity
		resp.Error, resp.Msg = "unprocessable", "تعذرت معالجة الطلب"
	case errors.Is(err, domain.ErrUnavailable):
		status = http.StatusServiceUnavailable
		resp.Error, resp.Msg = "service unavailable", "الخدمة غير متاحة حاليًا، حاول لاحقًا"
	default:
		resp.Error, resp.Msg = "internal server error", "حدث خطأ في الخادم"
	}

	var se *domain.StageError
	if errors.As(err, &se) {
		resp.Stage = se.Stage.String()
		if msg, ok := stageMessages[se.Stage]; ok {
			resp.Msg = msg
		}
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON reads a single JSON object. Unknown fields are ignored.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be empty.
func decodeOptionalJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

// pathUUID parses a path wildcard as a UUID. A malformed ID cannot name an
// existing resource, so it is reported as not found.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", name, r.PathValue(name), domain.ErrNotFound)
	}
	return id, nil
}

// queryInt returns the integer query parameter or 0 when it is absent.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// parseOptionalUUID parses a body field; an empty value is uuid.Nil and left
// to the service's required check.
func parseOptionalUUID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "must be a UUID")
	}
	return id, nil
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func includes(r *http.Request, what string) bool {
	return r.URL.Query().Get("include") == what
}
