package schema

type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type Feature struct {
	ID         interface{}            `json:"id,omitempty"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// FeatureCollection is a boundary document whose features are keyed by
// `properties.name`
type FeatureCollection struct {
	Type         string    `json:"type"`
	Features     []Feature `json:"features"`
	UTF8Encoding bool      `json:"UTF8Encoding,omitempty"`
}

// Name returns the region name of a feature
func (f Feature) Name() string {
	name, _ := f.Properties["name"].(string)
	return name
}

// Names returns the region names of all features
func (c FeatureCollection) Names() []string {
	names := make([]string, 0, len(c.Features))
	for _, f := range c.Features {
		if n := f.Name(); n != "" {
			names = append(names, n)
		}
	}
	return names
}
