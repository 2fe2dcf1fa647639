package main

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/swaggo/swag"

	"github.com/MikeMC777/orders-payments/internal/docs"
)

var routerAnnotation = regexp.MustCompile(`(?m)^// @Router\s+(\S+)\s+\[(\w+)\]`)

// Every @Router annotation in handlers.go must be present in the registered
// document; rerun go generate when this fails.
func TestSwaggerDocMatchesAnnotations(t *testing.T) {
	src, err := os.ReadFile("handlers.go")
	if err != nil {
		t.Fatalf("leer handlers.go: %v", err)
	}
	raw, err := swag.ReadDoc(docs.SwaggerInfopayments.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("json inválido: %v", err)
	}

	routes := routerAnnotation.FindAllStringSubmatch(string(src), -1)
	if len(routes) == 0 {
		t.Fatalf("no se encontraron anotaciones @Router")
	}
	for _, m := range routes {
		path, method := m[1], strings.ToLower(m[2])
		if _, ok := doc.Paths[path][method]; !ok {
			t.Fatalf("%s %s anotado pero ausente del swagger", method, path)
		}
	}
	if len(doc.Paths)-1 != len(uniquePaths(routes)) { // -1: /health lives in healthz
		t.Fatalf("el swagger tiene %d rutas, las anotaciones %d", len(doc.Paths)-1, len(uniquePaths(routes)))
	}
}

func uniquePaths(routes [][]string) map[string]bool {
	out := map[string]bool{}
	for _, m := range routes {
		out[m[1]] = true
	}
	return out
}
