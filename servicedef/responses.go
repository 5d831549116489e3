// Package servicedef describes the JSON resources returned by the file analyzer service.
//
// The analyzer is not part of this project, so its responses are treated as foreign data: each
// type wraps the parsed JSON value and exposes named accessors that return a zero value when a
// property is missing or has an unexpected type, rather than failing.
package servicedef

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	PathHealth          = "/api/"
	PathUploadSingle    = "/api/upload-single"
	PathUploadBatch     = "/api/upload-batch"
	PathAnalysisHistory = "/api/analysis-history"
	PathExportResults   = "/api/export-results/"

	FieldFile      = "file"
	FieldFiles     = "files"
	FieldBatchName = "batch_name"
)

// PIIItem is one detected piece of personally identifiable information.
type PIIItem struct {
	Type  string
	Value string
}

// UploadResponse is returned by the single-file upload endpoint.
type UploadResponse struct {
	raw ldvalue.Value
}

// BatchResponse is returned by the batch upload endpoint.
type BatchResponse struct {
	raw ldvalue.Value
}

// HistoryResponse is returned by the analysis history endpoint.
type HistoryResponse struct {
	raw ldvalue.Value
}

// parse never fails; malformed JSON is treated the same as an empty response.
func parse(data []byte) ldvalue.Value {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return ldvalue.Null()
	}
	return v
}

func ParseUploadResponse(data []byte) UploadResponse {
	return UploadResponse{raw: parse(data)}
}

func ParseBatchResponse(data []byte) BatchResponse {
	return BatchResponse{raw: parse(data)}
}

func ParseHistoryResponse(data []byte) HistoryResponse {
	return HistoryResponse{raw: parse(data)}
}

// PIIDetected returns the items in "pii_detected", or an empty slice.
func (r UploadResponse) PIIDetected() []PIIItem {
	list := r.raw.GetByKey("pii_detected")
	if list.Type() != ldvalue.ArrayType {
		return nil
	}
	ret := make([]PIIItem, 0, list.Count())
	for i := 0; i < list.Count(); i++ {
		item := list.GetByIndex(i)
		ret = append(ret, PIIItem{
			Type:  stringProperty(item, "type"),
			Value: stringProperty(item, "value"),
		})
	}
	return ret
}

// PIITypes returns the "type" of every detected item, in order, skipping items with no type.
func (r UploadResponse) PIITypes() []string {
	var ret []string
	for _, item := range r.PIIDetected() {
		if item.Type != "" {
			ret = append(ret, item.Type)
		}
	}
	return ret
}

func (r UploadResponse) FileType() string {
	return stringProperty(r.raw, "file_type")
}

// ID returns the server-assigned batch identifier, if there is one. A numeric ID is accepted
// and converted to its JSON representation.
func (r BatchResponse) ID() ldvalue.OptionalString {
	id := r.raw.GetByKey("id")
	switch id.Type() {
	case ldvalue.StringType:
		if id.StringValue() != "" {
			return ldvalue.NewOptionalString(id.StringValue())
		}
	case ldvalue.NumberType:
		return ldvalue.NewOptionalString(id.JSONString())
	}
	return ldvalue.OptionalString{}
}

func (r BatchResponse) FilesProcessed() int {
	return intProperty(r.raw, "files_processed")
}

func (r HistoryResponse) SingleFileCount() int {
	return arrayLength(r.raw, "single_files")
}

func (r HistoryResponse) BatchCount() int {
	return arrayLength(r.raw, "batches")
}

func stringProperty(v ldvalue.Value, key string) string {
	p := v.GetByKey(key)
	if p.Type() != ldvalue.StringType {
		return ""
	}
	return p.StringValue()
}

func intProperty(v ldvalue.Value, key string) int {
	p := v.GetByKey(key)
	if p.Type() != ldvalue.NumberType {
		return 0
	}
	return p.IntValue()
}

func arrayLength(v ldvalue.Value, key string) int {
	p := v.GetByKey(key)
	if p.Type() != ldvalue.ArrayType {
		return 0
	}
	return p.Count()
}
