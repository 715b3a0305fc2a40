// Package validate holds the declarative per-resource form rules shared by
// create and edit flows. A failing rule aborts the submit before any network
// call is made.
package validate

import (
	"regexp"
	"strings"

	"github.com/example/martadmin/pkg/api"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every failed rule for one submitted form.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Rule checks one aspect of a form of type F.
type Rule[F any] struct {
	Field   string
	Check   func(F) bool
	Message string
}

type Rules[F any] []Rule[F]

// Validate runs every rule; nil on success, *Error listing all failures
// otherwise.
func (rs Rules[F]) Validate(form F) error {
	var failed []FieldError
	for _, r := range rs {
		if !r.Check(form) {
			failed = append(failed, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &Error{Fields: failed}
}

var (
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func NotBlank(s string) bool { return strings.TrimSpace(s) != "" }

func Phone(s string) bool { return phoneRe.MatchString(s) }

func Pincode(s string) bool { return pincodeRe.MatchString(s) }

// EmailOrBlank accepts the empty string for optional email fields.
func EmailOrBlank(s string) bool { return s == "" || emailRe.MatchString(s) }

const maxImageBytes = 5 << 20

// ImageOK checks MIME type and the 5MB size cap for one upload.
func ImageOK(f *api.FileUpload) bool {
	if f == nil {
		return true
	}
	return strings.HasPrefix(f.ContentType, "image/") && f.Size() <= maxImageBytes
}

func ImagesOK(files []api.FileUpload) bool {
	for i := range files {
		if !ImageOK(&files[i]) {
			return false
		}
	}
	return true
}
