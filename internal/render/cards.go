package render

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CardInfo is one renderable card of a JSON page.
type CardInfo struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Content  string `json:"content"`
	Footnote string `json:"footnote"`
}

// CardGroups maps a group name to its cards. The ordered map keeps groups
// in the order they appear in the page's JSON, so rendered output is
// deterministic; card order within a group is the parsed array order.
type CardGroups = orderedmap.OrderedMap[string, []CardInfo]

// ParseCardGroups deserializes JSON page content into card groups.
func ParseCardGroups(content string) (*CardGroups, error) {
	groups := orderedmap.New[string, []CardInfo]()
	if err := json.Unmarshal([]byte(content), groups); err != nil {
		return nil, fmt.Errorf("parsing card groups: %w", err)
	}
	return groups, nil
}
