package vkcontext

import (
	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// MaxEnumerateAttempts bounds how many times Enumerate restarts when the
// driver reports vk.Incomplete on the fill call.
const MaxEnumerateAttempts = 3

// Query is a count-then-fill driver call. A nil out asks for the count only,
// otherwise at most *count elements are written and *count is updated to the
// number actually written.
type Query[T any] func(count *uint32, out []T) vk.Result

// Enumerate runs the two-call idiom: query the count, allocate exactly that
// many elements, query again to fill them. A count of zero yields an empty
// slice. If the array grew between the two calls the driver reports
// vk.Incomplete and the whole sequence is restarted.
func Enumerate[T any](what string, query Query[T]) ([]T, error) {
	for attempt := 0; attempt < MaxEnumerateAttempts; attempt++ {
		var count uint32
		if ret := query(&count, nil); ret != vk.Success && ret != vk.Incomplete {
			return nil, errors.Wrapf(NewError(what, ret), "counting %s", what)
		}
		list := make([]T, count)
		if count == 0 {
			return list, nil
		}
		ret := query(&count, list)
		switch {
		case ret == vk.Incomplete:
			continue
		case ret != vk.Success:
			return nil, errors.Wrapf(NewError(what, ret), "listing %s", what)
		}
		if int(count) < len(list) {
			list = list[:count]
		}
		return list, nil
	}
	return nil, errors.Wrapf(ErrIncomplete, "listing %s after %d attempts", what, MaxEnumerateAttempts)
}

// EnumerateVoid is Enumerate for driver queries that report no status,
// such as vkGetPhysicalDeviceQueueFamilyProperties.
func EnumerateVoid[T any](query func(count *uint32, out []T)) []T {
	list, _ := Enumerate[T]("", func(count *uint32, out []T) vk.Result {
		query(count, out)
		return vk.Success
	})
	return list
}
