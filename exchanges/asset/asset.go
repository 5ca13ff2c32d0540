package asset

import (
	"errors"
	"fmt"
	"strings"
)

// Item stores the asset type
type Item string

// Items stores a list of assets types
type Items []Item

// Supported asset types. Swap names the legacy perpetual swap product family,
// served by a separate API host from spot.
const (
	Empty Item = ""
	Spot  Item = "spot"
	Swap  Item = "swap"
)

var (
	// ErrNotSupported is an error for an unsupported asset type
	ErrNotSupported = errors.New("unsupported asset type")

	supportedList = Items{Spot, Swap}
)

// Supported returns a list of supported asset types
func Supported() Items {
	return append(Items(nil), supportedList...)
}

// String converts an Item to its string representation
func (a Item) String() string {
	return string(a)
}

// Strings converts an asset type array to a string array
func (a Items) Strings() []string {
	assets := make([]string, len(a))
	for x := range a {
		assets[x] = a[x].String()
	}
	return assets
}

// Contains returns whether or not the supplied asset exists
// in the list of Items
func (a Items) Contains(i Item) bool {
	for x := range a {
		if a[x] == i {
			return true
		}
	}
	return false
}

// JoinToString joins an asset type array and converts it to a string
// with the supplied separator
func (a Items) JoinToString(separator string) string {
	return strings.Join(a.Strings(), separator)
}

// IsValid returns whether or not the supplied asset type is valid or
// not
func (a Item) IsValid() bool {
	return supportedList.Contains(a)
}

// New takes an input matches to relevant package assets
func New(input string) (Item, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "spot":
		return Spot, nil
	case "swap", "perpetualswap":
		return Swap, nil
	}
	return Empty, fmt.Errorf("%w '%v', only supports %s", ErrNotSupported, input, supportedList.JoinToString(","))
}
