package model

// ErrorDescriptor is a user facing error shown by the player.
type ErrorDescriptor struct {
	Code     string `toml:"code" json:"code"`
	Headline string `toml:"headline" json:"headline"`
	Message  string `toml:"message" json:"message"`
}

func (e ErrorDescriptor) Error() string {
	if e.Message == "" {
		return e.Code + ": " + e.Headline
	}
	return e.Code + ": " + e.Headline + " (" + e.Message + ")"
}

// Catalog maps error keys (see ErrorExpired and friends) to descriptors.
// Entries are stored by value, so lookups always hand out copies.
type Catalog map[string]ErrorDescriptor

// Get returns the descriptor for key. Unknown keys yield a descriptor
// carrying just the key as its code.
func (c Catalog) Get(key string) ErrorDescriptor {
	if d, ok := c[key]; ok {
		return d
	}
	return ErrorDescriptor{Code: key}
}

// Classify maps a provider authorization code to a descriptor.
func (c Catalog) Classify(code ProviderCode) ErrorDescriptor {
	switch code.Normalize() {
	case CodeExpired:
		return c.Get(ErrorExpired)
	case CodeGeoBlocked:
		return c.Get(ErrorBlocked)
	default:
		d := c.Get(ErrorGeneric)
		d.Code = d.Code + "_" + string(code)
		return d
	}
}

// Merge returns a copy of c with the non-empty fields of overrides applied
// on top, entry by entry.
func (c Catalog) Merge(overrides Catalog) Catalog {
	out := make(Catalog, len(c)+len(overrides))
	for key, d := range c {
		out[key] = d
	}

	for key, o := range overrides {
		d := out[key]
		if o.Code != "" {
			d.Code = o.Code
		}
		if o.Headline != "" {
			d.Headline = o.Headline
		}
		if o.Message != "" {
			d.Message = o.Message
		}
		if d.Code == "" {
			d.Code = key
		}
		out[key] = d
	}

	return out
}
