package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"eoapi/internal/models"
)

const (
	OpenAPIFeatureKey    = "openapi"
	OpenAPIExportAction  = "exportOpenAPI"
	OpenAPIExportFile    = "openapi.json"
	openAPIVersion       = "3.0.3"
	defaultMockStatusMsg = "Mock response"
)

var openAPIMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// OpenAPIFeature exports a project as an OpenAPI 3 document.
type OpenAPIFeature struct{}

func (OpenAPIFeature) Descriptor() Feature {
	return Feature{
		Key:         OpenAPIFeatureKey,
		Label:       "OpenAPI",
		Description: "OpenAPI 3 document",
		Action:      OpenAPIExportAction,
		Filename:    OpenAPIExportFile,
	}
}

func (OpenAPIFeature) Action() string {
	return OpenAPIExportAction
}

func (OpenAPIFeature) Invoke(input any) (any, error) {
	data, ok := input.(*models.ProjectExport)
	if !ok || data == nil {
		return nil, fmt.Errorf("openapi: unexpected input %T", input)
	}
	return BuildOpenAPI(data), nil
}

// BuildOpenAPI converts an exported project into an OpenAPI document.
func BuildOpenAPI(data *models.ProjectExport) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:       data.Project.Name,
			Description: data.Project.Description,
			Version:     data.Version,
		},
		Paths: openapi3.Paths{},
	}

	for _, env := range data.Environments {
		if env.HostURI == "" {
			continue
		}
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: env.HostURI, Description: env.Name})
	}

	for _, api := range data.APIData {
		path := openAPIPath(api.URI)
		item := doc.Paths[path]
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths[path] = item
		}
		method := strings.ToUpper(api.Method)
		if !openAPIMethods[method] {
			method = http.MethodGet
		}
		item.SetOperation(method, openAPIOperation(api))
	}
	return doc
}

func openAPIPath(uri string) string {
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	uri = "/" + strings.TrimLeft(uri, "/")
	return uri
}

func openAPIOperation(api models.ApiData) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = api.Name
	op.OperationID = api.UUID
	if api.GroupName != "" {
		op.Tags = []string{api.GroupName}
	}

	for _, p := range api.RestParams {
		op.AddParameter(describeParam(openapi3.NewPathParameter(p.Name), p))
	}
	for _, p := range api.QueryParams {
		op.AddParameter(describeParam(openapi3.NewQueryParameter(p.Name).WithRequired(p.Required), p))
	}
	for _, p := range api.RequestHeaders {
		op.AddParameter(describeParam(openapi3.NewHeaderParameter(p.Name).WithRequired(p.Required), p))
	}

	status := api.MockStatus
	if status == 0 {
		status = http.StatusOK
	}
	resp := openapi3.NewResponse().WithDescription(defaultMockStatusMsg)
	var example any
	if api.MockResponse != "" && json.Unmarshal([]byte(api.MockResponse), &example) == nil {
		resp.Content = openapi3.Content{
			"application/json": &openapi3.MediaType{Example: example},
		}
	}
	op.AddResponse(status, resp)
	return op
}

func describeParam(p *openapi3.Parameter, src models.ApiParam) *openapi3.Parameter {
	p = p.WithSchema(openapi3.NewStringSchema())
	if src.Description != "" {
		p = p.WithDescription(src.Description)
	}
	if src.Example != "" {
		p.Example = src.Example
	}
	return p
}
