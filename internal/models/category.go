package models

// Category is a user-scoped spending category. The pipeline creates new
// categories through the resolver but does not own their lifecycle; the
// backing store does.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
	Type  string `json:"type" yaml:"type"`
}
