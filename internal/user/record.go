// Package user fetches the single user record shown by the UI.
package user

import "hellotui/internal/jsonutil"

// DefaultEndpoint is the public test API the record is fetched from.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users/1"

// Record is one fetched user. Only Name and Email are read by the UI;
// every field the server sent is kept in Fields.
type Record struct {
	Name   string
	Email  string
	Fields map[string]any
}

// ParseRecord decodes a JSON object into a Record.
// Missing or non-string name/email yield empty strings.
func ParseRecord(data []byte) (Record, error) {
	obj, err := jsonutil.DecodeObject(data, "decode user")
	if err != nil {
		return Record{}, err
	}
	return Record{
		Name:   jsonutil.GetString(obj, "name"),
		Email:  jsonutil.GetString(obj, "email"),
		Fields: obj,
	}, nil
}

// Field returns a display string for any server-provided field.
func (r Record) Field(key string) string {
	return jsonutil.ToString(r.Fields[key])
}
