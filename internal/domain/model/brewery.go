package model

// Brewery is a directory object passed through verbatim. Its structure is
// owned by the external service, so it stays a decoded JSON object.
type Brewery map[string]any

// Field returns the named attribute as a string, or "" when absent or not
// a string. Templates use it for the handful of fields they render.
func (b Brewery) Field(name string) string {
	if v, ok := b[name].(string); ok {
		return v
	}
	return ""
}

// ID returns the directory identifier of the brewery.
func (b Brewery) ID() string {
	return b.Field("id")
}
