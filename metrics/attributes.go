package metrics

// Attribute is a single metric label key/value pair.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered label set. Order is preserved and defines the
// order of serialized data point attributes.
type Attributes []Attribute

// Get returns the value of the label with the given key.
func (attributes Attributes) Get(key string) (string, bool) {
	for _, attribute := range attributes {
		if attribute.Key == key {
			return attribute.Value, true
		}
	}
	return "", false
}

// Identity addresses one metric: a name plus an ordered label set.
// It is immutable once the metric is created.
type Identity struct {
	Name   string
	Labels Attributes
}
