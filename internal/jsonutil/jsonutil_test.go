package jsonutil

import (
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v record
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "object", data: `{"name":"Jack"}`},
		{name: "empty object", data: `{}`},
		{name: "array", data: `[1,2]`, wantErr: "user: expected JSON object, got array"},
		{name: "null", data: `null`, wantErr: "user: expected JSON object, got null"},
		{name: "string", data: `"x"`, wantErr: "user: expected JSON object, got string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := DecodeObject([]byte(tt.data), "user")
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("DecodeObject() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeObject() unexpected error: %v", err)
			}
			if obj == nil {
				t.Error("DecodeObject() returned nil map")
			}
		})
	}
}

func TestDecodeObject_InvalidJSONKeepsContext(t *testing.T) {
	_, err := DecodeObject([]byte(`{`), "decode user")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); len(got) < len("decode user: ") || got[:len("decode user: ")] != "decode user: " {
		t.Errorf("error %q should start with context", got)
	}
}

func TestGetString(t *testing.T) {
	m := map[string]any{
		"str":  "value",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"num", ""},
		{"bool", ""},
		{"nil", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(m, tt.key); got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hi", "hi"},
		{"whole float", 1.0, "1"},
		{"fraction", 1.5, "1.5"},
		{"bool", true, "true"},
		{"object", map[string]any{"city": "Gwenborough"}, `{"city":"Gwenborough"}`},
		{"array", []any{"a", 1.0}, `["a",1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
