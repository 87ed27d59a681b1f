package list

import (
	"fmt"

	"github.com/qjpcpu/rlist/json"
)

// MarshalJSON encodes the list as an array in front-to-back order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Items())
}

// UnmarshalJSON replaces the list with the decoded array, pushing each element.
// It panics on a moved-from list like Push does.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	l.cell()
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("list: decode: %w", err)
	}
	l.root = empty[T]{}
	for _, x := range items {
		l.Push(x)
	}
	return nil
}
