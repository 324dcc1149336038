package models

// Model is one selectable generation backend.
type Model struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the fixed, ordered set of models offered to the user.
// It is read-only after construction.
type Catalog struct {
	models []Model
	byID   map[string]string
}

// DefaultModels lists the backends the generation API accepts, in display order.
var DefaultModels = []Model{
	{ID: "meta-llama/llama-3.1-405b-instruct", Name: "Llama 3.1 405B"},
	{ID: "qwen/qwen-2.5-coder-32b-instruct", Name: "Qwen2.5 Coder 32B"},
	{ID: "qwen/qwen-2.5-72b-instruct", Name: "Qwen2.5 72B"},
	{ID: "qwen/qwen2.5-vl-32b-instruct", Name: "Qwen2.5 VL 32B"},
}

// NewCatalog copies ms into a new catalog. Later duplicates of an ID are ignored.
func NewCatalog(ms []Model) *Catalog {
	c := &Catalog{
		models: make([]Model, 0, len(ms)),
		byID:   make(map[string]string, len(ms)),
	}
	for _, m := range ms {
		if _, ok := c.byID[m.ID]; ok {
			continue
		}
		c.models = append(c.models, m)
		c.byID[m.ID] = m.Name
	}
	return c
}

// Default returns the catalog of DefaultModels.
func Default() *Catalog { return NewCatalog(DefaultModels) }

// DisplayName resolves id by exact match. Unknown ids are echoed unchanged.
func (c *Catalog) DisplayName(id string) string {
	if name, ok := c.byID[id]; ok {
		return name
	}
	return id
}

// Has reports whether id is a catalog entry.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Models returns a copy of the entries in display order.
func (c *Catalog) Models() []Model {
	out := make([]Model, len(c.models))
	copy(out, c.models)
	return out
}

// First returns the first model ID, or "" for an empty catalog.
func (c *Catalog) First() string {
	if len(c.models) == 0 {
		return ""
	}
	return c.models[0].ID
}
