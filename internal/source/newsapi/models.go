package newsapi

import (
	"encoding/json"
	"fmt"
)

// APIResponse is the per-source news API payload.
type APIResponse struct {
	Status string    `json:"status"`
	Items  []APIItem `json:"items"`
}

// APIItem is one raw item. ID stays a pointer so an absent id field is
// distinguishable from any present value.
type APIItem struct {
	ID    *ItemID `json:"id"`
	Title string  `json:"title"`
	URL   string  `json:"url"`
}

// ItemID normalizes the origin-supplied id, which shows up as a JSON number
// for some sources and a string (sometimes non-ASCII) for others. Numbers
// keep their literal form, so 101 and "101" compare equal downstream.
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ItemID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ItemID(n.String())
		return nil
	}

	return fmt.Errorf("item id is neither string nor number: %s", data)
}
