package docstore

import (
	"encoding/json"
	"fmt"
)

// Ref is a pointer-like value identifying a document in another collection
// without embedding its data. Refs serialize as "collection/id" path strings
// and are never existence-checked when written.
type Ref struct {
	Collection string
	ID         string
}

// Path renders the reference as its stored form.
func (r Ref) Path() string {
	return fmt.Sprintf("%s/%s", r.Collection, r.ID)
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Path())
}
