// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// chi calls it only when the path exists under other methods; it answers
// 404 Not Found, so callers cannot tell a wrong method from a missing
// operation.
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
