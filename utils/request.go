// utils/request.go
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Credentials is the normalized login/registration identity pair. Mobile
// clients post JSON while the web form posts urlencoded bodies; both funnel
// through DecodeCredentials so handler logic sees one shape.
type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// IsJSON reports whether the request body is declared as JSON.
func IsJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.Contains(ct, "application/json")
}

// DecodeCredentials reads name and password from either a JSON or a
// form-encoded body.
func DecodeCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	if IsJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return creds, fmt.Errorf("decode credentials: %w", err)
		}
		return creds, nil
	}
	if err := r.ParseForm(); err != nil {
		return creds, fmt.Errorf("parse form: %w", err)
	}
	creds.Name = r.PostFormValue("name")
	creds.Password = r.PostFormValue("password")
	return creds, nil
}
