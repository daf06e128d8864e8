package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression, such as "$.transactions[*].amount",
// against the wallet document.
//
// Numbers in the result are float64: the result is meant for display, not
// for arithmetic.
func Query(w *Wallet, path string) (any, error) {
	raw, err := w.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet %q: %w", w.name, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to read wallet %q: %w", w.name, err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	return v, nil
}
