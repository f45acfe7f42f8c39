package binding

import (
	"mime"
	"net/http"
	"net/url"
)

const defaultMultipartMemory = 32 << 20

// Params returns the combined query and form parameter set of r.
//
// Query values come first, form values of url-encoded or multipart bodies
// are appended after them, so a repeated key keeps every value and lookups
// see the query value first. Other bodies are left unread. A form body over
// the body limit is a 413, like any other body read.
func Params(r *http.Request) (url.Values, error) {
	values := url.Values{}
	for k, vs := range r.URL.Query() {
		values[k] = append(values[k], vs...)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, readError(err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(defaultMultipartMemory); err != nil {
			return nil, readError(err)
		}
	default:
		return values, nil
	}

	for k, vs := range r.PostForm {
		values[k] = append(values[k], vs...)
	}

	return values, nil
}

// ToMap flattens values to the first value of every key.
func ToMap(values url.Values) map[string]string {
	m := make(map[string]string, len(values))
	for k := range values {
		m[k] = values.Get(k)
	}
	return m
}

// ToMultiMap copies values, keeping every value of every key.
func ToMultiMap(values url.Values) map[string][]string {
	m := make(map[string][]string, len(values))
	for k, vs := range values {
		m[k] = append([]string(nil), vs...)
	}
	return m
}
